// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvConfigJSON is the environment variable holding a JSON config override.
const EnvConfigJSON = "NOSYTLABS_CONFIG_JSON"

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	// a .env next to the config dir may carry the JSON override
	_ = godotenv.Load(filepath.Join(path, ".env"))

	if _, err = toml.DecodeFile(filepath.Join(path, "main.toml"), &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the server can not start without
// and fills defaults for the optional ones.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.Driver {
	case "":
		c.DB.Driver = DriverSQLite
	case DriverSQLite, DriverMySQL, DriverPostgres:
	default:
		return errors.Wrap(ErrUnsupportedDBDriver, invalidErrMessage)
	}

	if c.DB.Driver == DriverSQLite && c.DB.Path == "" {
		c.DB.Path = "nosytlabs.db"
	}

	if c.Contact.Email == "" {
		return errors.Wrap(ErrEmptyContactEmail, invalidErrMessage)
	}

	if c.Stream.Timezone != "" {
		if _, err := time.LoadLocation(c.Stream.Timezone); err != nil {
			return errors.Wrap(ErrInvalidStreamTimezone, invalidErrMessage)
		}
	}

	setDefaults(c)

	return nil
}

func setDefaults(c *Config) {
	if c.Title == "" {
		c.Title = "NosytLabs"
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	if c.Webserver.Session.ExpiryTime == 0 {
		c.Webserver.Session.ExpiryTime = 12 * time.Hour
	}

	if c.Content.WatchDebounce == 0 {
		c.Content.WatchDebounce = 500 * time.Millisecond
	}

	if c.Contact.RateLimit == 0 {
		c.Contact.RateLimit = 5
	}

	if c.Contact.RateLimitWindow == 0 {
		c.Contact.RateLimitWindow = time.Minute
	}

	if c.PriceFeed.BaseURL == "" {
		c.PriceFeed.BaseURL = "https://api.coingecko.com/api/v3"
	}

	if len(c.PriceFeed.Coins) == 0 {
		c.PriceFeed.Coins = []string{"bitcoin", "ethereum", "basic-attention-token"}
	}

	if c.PriceFeed.Currency == "" {
		c.PriceFeed.Currency = "usd"
	}

	if c.PriceFeed.Timeout == 0 {
		c.PriceFeed.Timeout = 5 * time.Second
	}

	if c.PriceFeed.CacheTTL == 0 {
		c.PriceFeed.CacheTTL = time.Minute
	}

	if c.Stream.Timezone == "" {
		c.Stream.Timezone = "UTC"
	}

	if c.Calculator.DefaultDevices == 0 {
		c.Calculator.DefaultDevices = 1
	}

	if c.Calculator.DefaultHours == 0 {
		c.Calculator.DefaultHours = 24
	}
}
