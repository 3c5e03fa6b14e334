package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/admin/login"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/admin/logout"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/handlertest"
	"github.com/nosytlabs/nosytlabs-site/internal/web/session"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()

	storage := memory.New()
	t.Cleanup(func() { _ = storage.Close() })
	session.Init(storage)

	app := fiber.New()
	app.Use(handler.AdminPath, Middleware)

	ok := func(c *fiber.Ctx) error {
		if u, found := CurrentUser(c); found {
			return c.SendString("user:" + u.Username)
		}

		return c.SendString("anonymous")
	}

	app.Get(handler.AdminPath, ok)
	app.Get(handler.AdminPath+"/settings", ok)
	app.Get(login.Path, ok)
	app.Get(logout.Path, ok)
	app.Get("/about", ok)

	return app
}

func signIn(t *testing.T) string {
	t.Helper()

	id, err := session.GenerateSessionID()
	require.NoError(t, err)

	data := session.Data{UserID: 1, Username: "admin", LoginAt: time.Now()}
	require.NoError(t, data.Write(id, time.Minute))

	return id
}

func get(t *testing.T, app *fiber.App, target, sessionID string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: sessionID})
	}

	return handlertest.Do(t, app, req)
}

func TestAnonymous(t *testing.T) {
	app := newApp(t)

	for _, target := range []string{handler.AdminPath, handler.AdminPath + "/settings", handler.AdminPath + "/"} {
		resp, _ := get(t, app, target, "")
		assert.Equal(t, http.StatusFound, resp.StatusCode, target)
		assert.Equal(t, login.Path, resp.Header.Get("Location"), target)
	}

	resp, body := get(t, app, login.Path, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "anonymous", body)

	resp, _ = get(t, app, logout.Path, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = get(t, app, "/about", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestExpiredSession(t *testing.T) {
	app := newApp(t)

	resp, _ := get(t, app, handler.AdminPath, "not-a-session")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, login.Path, resp.Header.Get("Location"))
}

func TestSignedIn(t *testing.T) {
	app := newApp(t)
	id := signIn(t)

	resp, body := get(t, app, handler.AdminPath+"/settings", id)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "user:admin", body)

	resp, _ = get(t, app, login.Path, id)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.AdminPath, resp.Header.Get("Location"))

	require.NoError(t, session.Delete(id))

	resp, _ = get(t, app, handler.AdminPath, id)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}
