// Package settings lets the admin edit the site wide announcement banner and
// change their own password.
package settings

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nosytlabs/nosytlabs-site/internal/auth"
	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/db/controller/setting"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	authmiddleware "github.com/nosytlabs/nosytlabs-site/internal/web/middleware/auth"
	"github.com/nosytlabs/nosytlabs-site/internal/web/middleware/site"
	"github.com/nosytlabs/nosytlabs-site/internal/web/navigation"
)

const (
	// Path is the path of the settings page.
	Path = handler.AdminPath + "/settings"
	// PasswordPath receives the change password form.
	PasswordPath = Path + "/password"

	// TemplateName is the name of the settings template.
	TemplateName = "admin/settings"

	// MsgSaved is shown after a successful save.
	MsgSaved = "Settings saved"
	// MsgInvalid is shown when the form does not validate.
	MsgInvalid = "Announcement must be at most 300 characters with a level of info, success or warning"
	// MsgFailed is shown when the settings could not be stored.
	MsgFailed = "Settings could not be saved"

	// MsgPasswordChanged is shown after a successful password change.
	MsgPasswordChanged = "Password changed"
	// MsgPasswordInvalid is shown when the new password is too short or not confirmed.
	MsgPasswordInvalid = "New password must be 8 to 256 characters and match its confirmation"
	// MsgPasswordWrong is shown when the current password does not match.
	MsgPasswordWrong = "Current password is wrong"
	// MsgPasswordFailed is shown when the password could not be stored.
	MsgPasswordFailed = "Password could not be changed"
)

// Form is the posted settings form.
type Form struct {
	Announcement string `form:"announcement" validate:"max=300"`
	Level        string `form:"level"        validate:"omitempty,oneof=info success warning"`
}

// PasswordForm is the posted change password form.
type PasswordForm struct {
	Current string `form:"current" validate:"required"`
	New     string `form:"new"     validate:"required,min=8,max=256"`
	Confirm string `form:"confirm" validate:"eqfield=New"`
}

// Service is the settings handler service.
type Service struct {
	db       *gorm.DB
	provider *auth.LocalProvider
	validate *validator.Validate
}

// Handler is the settings handler.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if err := handler.Check(app, cfg, deps); err != nil {
		return err
	}

	if deps.DB == nil {
		return handler.ErrNilDeps
	}

	s.db = deps.DB
	s.provider = auth.NewLocalProvider(deps.DB)
	s.validate = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})
	app.Post(PasswordPath, s.ChangePassword)

	return nil
}

func (s *Service) render(c *fiber.Ctx, form Form, data fiber.Map) error {
	data["Navigation"] = navigation.NewContext("Settings", navigation.SectionAdmin, "settings").
		WithPath(Path).
		AddBreadcrumb("Admin", handler.AdminPath, false).
		AddBreadcrumb("Settings", Path, true)
	data["Form"] = form
	data["Levels"] = setting.AnnouncementLevels

	return c.Render(TemplateName, data, handler.AdminLayout)
}

func (s *Service) stored() Form {
	text, level := site.Announcement(s.db)
	if level == "" {
		level = site.DefaultAnnouncementLevel
	}

	return Form{Announcement: text, Level: level}
}

// Get renders the stored values.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, s.stored(), fiber.Map{})
}

// Post stores the banner. A blank text removes it.
func (s *Service) Post(c *fiber.Ctx) error {
	var form Form

	if err := c.BodyParser(&form); err != nil {
		return s.render(c, form, fiber.Map{"Error": MsgInvalid})
	}

	if err := s.validate.Struct(form); err != nil {
		return s.render(c, form, fiber.Map{"Error": MsgInvalid})
	}

	if form.Level == "" {
		form.Level = site.DefaultAnnouncementLevel
	}

	if err := setting.SetString(s.db, setting.Announcement, form.Announcement); err != nil {
		log.Error().Err(err).Msg("failed to save announcement")
		return s.render(c, form, fiber.Map{"Error": MsgFailed})
	}

	if err := setting.SetString(s.db, setting.AnnouncementLevel, form.Level); err != nil {
		log.Error().Err(err).Msg("failed to save announcement level")
		return s.render(c, form, fiber.Map{"Error": MsgFailed})
	}

	log.Info().Str("level", form.Level).Int("length", len(form.Announcement)).Msg("announcement updated")

	return s.render(c, form, fiber.Map{"Success": MsgSaved})
}

// ChangePassword replaces the password of the signed in admin. Passwords are
// never echoed back into the form.
func (s *Service) ChangePassword(c *fiber.Ctx) error {
	form := s.stored()

	user, ok := authmiddleware.CurrentUser(c)
	if !ok {
		return c.Redirect(handler.AdminPath)
	}

	var pw PasswordForm

	if err := c.BodyParser(&pw); err != nil {
		return s.render(c, form, fiber.Map{"Error": MsgPasswordInvalid})
	}

	if err := s.validate.Struct(pw); err != nil {
		return s.render(c, form, fiber.Map{"Error": MsgPasswordInvalid})
	}

	err := s.provider.ChangePassword(user.UserID, pw.Current, pw.New)

	switch {
	case errors.Is(err, auth.ErrInvalidOldPassword):
		log.Warn().Str("user", user.Username).Msg("password change with wrong current password")
		return s.render(c, form, fiber.Map{"Error": MsgPasswordWrong})
	case err != nil:
		log.Error().Err(err).Str("user", user.Username).Msg("failed to change password")
		return s.render(c, form, fiber.Map{"Error": MsgPasswordFailed})
	}

	log.Info().Str("user", user.Username).Msg("password changed")

	return s.render(c, form, fiber.Map{"Success": MsgPasswordChanged})
}
