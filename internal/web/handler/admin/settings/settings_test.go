package settings

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nosytlabs/nosytlabs-site/internal/auth"
	"github.com/nosytlabs/nosytlabs-site/internal/db/controller/setting"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/handlertest"
	"github.com/nosytlabs/nosytlabs-site/internal/web/session"
)

func setup(t *testing.T) (*fiber.App, *handlertest.Views, *gorm.DB) {
	t.Helper()

	cfg := handlertest.NewConfig()
	deps := handlertest.NewDeps(t, cfg)
	views := &handlertest.Views{}
	app := handlertest.NewApp(views)

	var s Service
	require.NoError(t, s.Init(app, cfg, deps))

	return app, views, deps.DB
}

func TestGetDefaults(t *testing.T) {
	app, views, _ := setup(t)

	resp, _ := handlertest.Get(t, app, Path)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	r := views.Last(t)
	assert.Equal(t, TemplateName, r.Name)
	assert.Equal(t, Form{Level: "info"}, r.Data["Form"])
}

func TestPostStoresAnnouncement(t *testing.T) {
	app, views, db := setup(t)

	resp, _ := handlertest.PostForm(t, app, Path, "announcement=Holiday+hours&level=warning")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, MsgSaved, views.Last(t).Data["Success"])

	text, err := setting.String(db, setting.Announcement, "")
	require.NoError(t, err)
	assert.Equal(t, "Holiday hours", text)

	level, err := setting.String(db, setting.AnnouncementLevel, "")
	require.NoError(t, err)
	assert.Equal(t, "warning", level)

	// blank text removes the banner
	_, _ = handlertest.PostForm(t, app, Path, "announcement=&level=info")

	text, err = setting.String(db, setting.Announcement, "unset")
	require.NoError(t, err)
	assert.Equal(t, "unset", text)
}

func TestPostInvalid(t *testing.T) {
	app, _, db := setup(t)

	for _, form := range []string{
		"announcement=Hi&level=danger",
		"announcement=" + strings.Repeat("a", 301) + "&level=info",
	} {
		_, body := handlertest.PostForm(t, app, Path, form)
		assert.Equal(t, MsgInvalid, body)
	}

	_, err := setting.Get(db, setting.Announcement)
	require.ErrorIs(t, err, setting.ErrSettingNotFound)
}

// signedIn returns an app whose requests carry the session of a seeded admin.
func signedIn(t *testing.T) (*fiber.App, *handlertest.Views, *auth.LocalProvider) {
	t.Helper()

	cfg := handlertest.NewConfig()
	deps := handlertest.NewDeps(t, cfg)
	views := &handlertest.Views{}
	app := handlertest.NewApp(views)

	provider := auth.NewLocalProvider(deps.DB)
	user, err := provider.CreateUser("admin", "changeme1")
	require.NoError(t, err)

	app.Use(func(c *fiber.Ctx) error {
		c.Locals(handler.LocalsCurrentUser, session.Data{UserID: user.ID, Username: user.Username})
		return c.Next()
	})

	var s Service
	require.NoError(t, s.Init(app, cfg, deps))

	return app, views, provider
}

func TestChangePassword(t *testing.T) {
	app, views, provider := signedIn(t)

	resp, _ := handlertest.PostForm(t, app, PasswordPath, "current=changeme1&new=s3cret-pass&confirm=s3cret-pass")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	r := views.Last(t)
	assert.Equal(t, TemplateName, r.Name)
	assert.Equal(t, MsgPasswordChanged, r.Data["Success"])
	assert.Equal(t, Form{Level: "info"}, r.Data["Form"])

	_, err := provider.Authenticate("admin", "s3cret-pass")
	require.NoError(t, err)

	_, err = provider.Authenticate("admin", "changeme1")
	require.ErrorIs(t, err, auth.ErrInvalidPassword)
}

func TestChangePasswordRejected(t *testing.T) {
	tests := []struct {
		name string
		form string
		want string
	}{
		{name: "wrong current", form: "current=nope&new=s3cret-pass&confirm=s3cret-pass", want: MsgPasswordWrong},
		{name: "too short", form: "current=changeme1&new=short&confirm=short", want: MsgPasswordInvalid},
		{name: "not confirmed", form: "current=changeme1&new=s3cret-pass&confirm=s3cret-pas", want: MsgPasswordInvalid},
		{name: "missing current", form: "new=s3cret-pass&confirm=s3cret-pass", want: MsgPasswordInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, provider := signedIn(t)

			_, body := handlertest.PostForm(t, app, PasswordPath, tt.form)
			assert.Equal(t, tt.want, body)

			_, err := provider.Authenticate("admin", "changeme1")
			require.NoError(t, err, "password must be unchanged")
		})
	}
}

func TestChangePasswordWithoutSession(t *testing.T) {
	app, _, _ := setup(t)

	resp, _ := handlertest.PostForm(t, app, PasswordPath, "current=a&new=s3cret-pass&confirm=s3cret-pass")
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, handler.AdminPath, resp.Header.Get(fiber.HeaderLocation))
}
