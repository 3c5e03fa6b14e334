package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectConfigPath(t *testing.T) string {
	t.Helper()

	// Get the project root by going up from internal/config
	projectRoot, err := filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(projectConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.Webserver.Port == 0 {
		t.Error("Webserver.Port should not be 0")
	}

	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL should not be empty")
	}

	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "contact@nosytlabs.com", cfg.Contact.Email)
	assert.Equal(t, time.Minute, cfg.Contact.RateLimitWindow)
	assert.Equal(t, 12*time.Hour, cfg.Webserver.Session.ExpiryTime)
	assert.Len(t, cfg.Stream.Schedule, 3)
	assert.Equal(t, 3*time.Hour, cfg.Stream.Schedule[0].Duration)
	assert.Contains(t, cfg.PriceFeed.Coins, "basic-attention-token")
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name: "valid config",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
				Contact:   Contact{Email: "hi@example.com"},
			},
		},
		{
			name: "missing port",
			config: Config{
				Webserver: Webserver{Port: 0, URL: "http://localhost:8080"},
				Contact:   Contact{Email: "hi@example.com"},
			},
			wantErr: ErrWebServerPortCanNotBeZero,
		},
		{
			name: "missing URL",
			config: Config{
				Webserver: Webserver{Port: 8080},
				Contact:   Contact{Email: "hi@example.com"},
			},
			wantErr: ErrEmptyURL,
		},
		{
			name: "unknown db driver",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
				DB:        DB{Driver: "oracle"},
				Contact:   Contact{Email: "hi@example.com"},
			},
			wantErr: ErrUnsupportedDBDriver,
		},
		{
			name: "missing contact email",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
			},
			wantErr: ErrEmptyContactEmail,
		},
		{
			name: "bad timezone",
			config: Config{
				Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
				Contact:   Contact{Email: "hi@example.com"},
				Stream:    Stream{Timezone: "Mars/Olympus"},
			},
			wantErr: ErrInvalidStreamTimezone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Webserver: Webserver{Port: 8080, URL: "http://localhost:8080"},
		Contact:   Contact{Email: "hi@example.com"},
	}

	require.NoError(t, validate(&cfg))

	assert.Equal(t, "NosytLabs", cfg.Title)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "nosytlabs.db", cfg.DB.Path)
	assert.Equal(t, 5, cfg.Webserver.ShutDownTime)
	assert.Equal(t, "usd", cfg.PriceFeed.Currency)
	assert.Equal(t, "UTC", cfg.Stream.Timezone)
	assert.Equal(t, 1, cfg.Calculator.DefaultDevices)
	assert.Equal(t, 24, cfg.Calculator.DefaultHours)
}

func TestReadConfigWithJSONOverride(t *testing.T) {
	jsonOverride := `{"Title":"Test Override","Webserver":{"Port":9090}}`
	t.Setenv(EnvConfigJSON, jsonOverride)

	cfg, err := ReadConfig(projectConfigPath(t))
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if cfg.Title != "Test Override" {
		t.Errorf("Title = %v, want %v", cfg.Title, "Test Override")
	}

	if cfg.Webserver.Port != 9090 {
		t.Errorf("Webserver.Port = %v, want %v", cfg.Webserver.Port, 9090)
	}

	// untouched keys keep the TOML values
	assert.Equal(t, "http://localhost:8080", cfg.Webserver.URL)
}

func TestReadConfigBrokenJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":`)

	_, err := ReadConfig(projectConfigPath(t))
	require.Error(t, err)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir())
	require.Error(t, err)
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title:   "Test",
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	tomlStr, err := DumpConfig(&cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if !strings.Contains(tomlStr, "Test") {
		t.Error("DumpConfig() output should contain Title")
	}
}

func TestDumpConfigJSON(t *testing.T) {
	cfg := Config{
		Title: "Test",
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	jsonStr, err := DumpConfigJSON(&cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if !strings.Contains(jsonStr, `"Title": "Test"`) {
		t.Errorf("DumpConfigJSON() output should contain Title, got %s", jsonStr)
	}
}
