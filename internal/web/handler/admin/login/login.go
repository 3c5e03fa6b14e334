// Package login serves the admin login form.
package login

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/nosytlabs/nosytlabs-site/internal/auth"
	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/navigation"
	"github.com/nosytlabs/nosytlabs-site/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = handler.AdminPath + "/login"

	// TemplateName is the name of the login template.
	TemplateName = "admin/login"
)

// Form is the posted login form.
type Form struct {
	Username string `form:"username" json:"username" validate:"required,max=100"`
	Password string `form:"password" json:"password" validate:"required,max=256"`
}

// Service is the login handler service.
type Service struct {
	cfg      *config.Config
	provider *auth.LocalProvider
	validate *validator.Validate
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if err := handler.Check(app, cfg, deps); err != nil {
		return err
	}

	if deps.DB == nil {
		return handler.ErrNilDeps
	}

	s.cfg = cfg
	s.provider = auth.NewLocalProvider(deps.DB)
	s.validate = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

func (s *Service) render(c *fiber.Ctx, err error) error {
	nav := navigation.NewContext("Sign in", navigation.SectionAdmin, "login").
		WithPath(Path)

	data := fiber.Map{"Navigation": nav}
	if err != nil {
		data["Error"] = err.Error()
	}

	return c.Render(TemplateName, data, handler.AdminLayout)
}

// Get renders the login page.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, nil)
}

// Post checks the credentials and starts a session.
func (s *Service) Post(c *fiber.Ctx) error {
	var form Form

	if err := c.BodyParser(&form); err != nil {
		return s.render(c, ErrInvalidFormData)
	}

	if err := s.validate.Struct(form); err != nil {
		return s.render(c, ErrInvalidFormData)
	}

	user, err := s.provider.Authenticate(form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) &&
			!errors.Is(err, auth.ErrInvalidPassword) &&
			!errors.Is(err, auth.ErrUserAccountDisabled) {
			log.Error().Err(err).Msg("failed to authenticate")
			return s.render(c, ErrInternalServerError)
		}

		log.Info().Str("user", form.Username).Str("ip", c.IP()).Msg("failed admin login")

		return s.render(c, ErrInvalidCredentials)
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return s.render(c, ErrInternalServerError)
	}

	data := &session.Data{
		UserID:   user.ID,
		Username: user.Username,
		LoginAt:  time.Now().UTC(),
	}

	expiry := s.cfg.Webserver.Session.ExpiryTime
	if err = data.Write(sessionID, expiry); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return s.render(c, ErrInternalServerError)
	}

	c.Cookie(session.Cookie(sessionID, expiry, s.cfg.DevMode))

	return c.Redirect(handler.AdminPath)
}
