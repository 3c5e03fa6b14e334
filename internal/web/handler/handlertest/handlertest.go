// Package handlertest provides the views engine, database and configuration
// the handler tests share.
package handlertest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/content"
	"github.com/nosytlabs/nosytlabs-site/internal/db/models"
	"github.com/nosytlabs/nosytlabs-site/internal/stream"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
)

// Render is one recorded call of Views.Render.
type Render struct {
	Name    string
	Layouts []string
	Data    fiber.Map
}

// Views is a fiber views engine that records renders instead of executing
// templates. It writes the template name, or the "Error" value when present,
// so tests can assert on the body.
type Views struct {
	mu      sync.Mutex
	renders []Render
}

// Load implements fiber.Views.
func (v *Views) Load() error { return nil }

// Render implements fiber.Views.
func (v *Views) Render(w io.Writer, name string, data any, layouts ...string) error {
	m, _ := data.(fiber.Map)

	v.mu.Lock()
	v.renders = append(v.renders, Render{Name: name, Layouts: layouts, Data: m})
	v.mu.Unlock()

	if e, ok := m["Error"].(string); ok && e != "" {
		_, err := io.WriteString(w, e)
		return err
	}

	_, err := io.WriteString(w, name)

	return err
}

// Last returns the most recent render.
func (v *Views) Last(t *testing.T) Render {
	t.Helper()

	v.mu.Lock()
	defer v.mu.Unlock()

	require.NotEmpty(t, v.renders, "nothing was rendered")

	return v.renders[len(v.renders)-1]
}

// NewApp returns a fiber app rendering into views, with locals passed to views.
func NewApp(views *Views) *fiber.App {
	return fiber.New(fiber.Config{
		Views:             views,
		PassLocalsToViews: true,
	})
}

// NewDB opens an in-memory sqlite database with all models migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Setting{}, &models.ContactMessage{}))

	return db
}

// NewConfig returns a valid configuration for handler tests.
func NewConfig() *config.Config {
	return &config.Config{
		Title: "NosytLabs",
		Webserver: config.Webserver{
			URL:     "http://localhost:8080",
			Port:    8080,
			Session: config.Session{ExpiryTime: time.Minute},
		},
		Contact: config.Contact{
			Email:           "contact@nosytlabs.com",
			RateLimit:       100,
			RateLimitWindow: time.Minute,
		},
		Stream: config.Stream{
			Channel:  "Tycen",
			URL:      "https://kick.com/Tycen",
			Timezone: "UTC",
			Schedule: []config.StreamSlot{
				{Weekday: "Tuesday", Start: "19:00", Duration: 3 * time.Hour, Title: "Build night"},
			},
		},
		Admin: config.Admin{Username: "admin", Password: "changeme"},
		Calculator: config.Calculator{
			DefaultDevices: 1,
			DefaultHours:   24,
		},
	}
}

// NewDeps returns dependencies backed by the default content, an in-memory
// database and memory storage. The price client is left nil.
func NewDeps(t *testing.T, cfg *config.Config) *handler.Deps {
	t.Helper()

	lib, err := content.NewLibrary(content.EmbeddedSource(), content.DefaultPosts())
	require.NoError(t, err)

	schedule, err := stream.NewSchedule(cfg.Stream)
	require.NoError(t, err)

	cache := memory.New()
	t.Cleanup(func() { _ = cache.Close() })

	return &handler.Deps{
		DB:      NewDB(t),
		Library: lib,
		Stream:  schedule,
		Cache:   cache,
	}
}

// Do runs a request against app and returns the response with its body read.
func Do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

// Get performs a GET request.
func Get(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()

	return Do(t, app, httptest.NewRequest(http.MethodGet, target, nil))
}

// PostForm performs a form encoded POST request.
func PostForm(t *testing.T, app *fiber.App, target, form string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	return Do(t, app, req)
}

// PostJSON performs a JSON POST request.
func PostJSON(t *testing.T, app *fiber.App, target, body string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return Do(t, app, req)
}
