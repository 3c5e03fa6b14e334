package site

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nosytlabs/nosytlabs-site/internal/db/controller/setting"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/handlertest"
)

func newApp(t *testing.T) (*fiber.App, *handlertest.Views) {
	t.Helper()

	views := &handlertest.Views{}
	app := handlertest.NewApp(views)

	db := handlertest.NewDB(t)
	require.NoError(t, setting.SetString(db, setting.Announcement, "Now booking Q1 projects"))
	require.NoError(t, setting.SetString(db, setting.AnnouncementLevel, "bogus"))

	app.Use(New(handlertest.NewConfig(), db))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("home/index", fiber.Map{})
	})
	app.Get("/api/ping", func(c *fiber.Ctx) error {
		_, ok := c.Locals(handler.LocalsSite).(handler.Site)
		return c.JSON(fiber.Map{"site": ok})
	})

	return app, views
}

func TestLocalsPassedToViews(t *testing.T) {
	app, views := newApp(t)

	resp, _ := handlertest.Get(t, app, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := views.Last(t).Data
	site, ok := data[handler.LocalsSite].(handler.Site)
	require.True(t, ok)
	assert.Equal(t, "NosytLabs", site.Title)
	assert.NotEmpty(t, site.Menu)

	assert.Equal(t, "Now booking Q1 projects", data[handler.LocalsAnnouncement])
	assert.Equal(t, DefaultAnnouncementLevel, data[handler.LocalsAnnouncementLevel])
}

func TestSkipsAPI(t *testing.T) {
	app, _ := newApp(t)

	_, body := handlertest.Get(t, app, "/api/ping")
	assert.JSONEq(t, `{"site":false}`, body)
}

func TestAnnouncementEmpty(t *testing.T) {
	db := handlertest.NewDB(t)

	text, level := Announcement(db)
	assert.Empty(t, text)
	assert.Empty(t, level)

	text, _ = Announcement(nil)
	assert.Empty(t, text)

	require.NoError(t, setting.SetString(db, setting.Announcement, "Hi"))
	require.NoError(t, setting.SetString(db, setting.AnnouncementLevel, "warning"))

	text, level = Announcement(db)
	assert.Equal(t, "Hi", text)
	assert.Equal(t, "warning", level)
}

func TestAnnouncementReadsAllSettingsOnce(t *testing.T) {
	db := handlertest.NewDB(t)
	require.NoError(t, setting.SetString(db, "site.footer", "unrelated"))
	require.NoError(t, setting.SetString(db, setting.Announcement, "  Spring sale  "))

	text, level := Announcement(db)
	assert.Equal(t, "Spring sale", text)
	assert.Equal(t, DefaultAnnouncementLevel, level)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	text, level = Announcement(db)
	assert.Empty(t, text)
	assert.Empty(t, level)
}
