// Package contact serves the contact page and the JSON submission endpoints.
package contact

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	contactform "github.com/nosytlabs/nosytlabs-site/internal/contact"
	contactctl "github.com/nosytlabs/nosytlabs-site/internal/db/controller/contact"
	"github.com/nosytlabs/nosytlabs-site/internal/db/models"
	"github.com/nosytlabs/nosytlabs-site/internal/content"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/navigation"
)

const (
	// Path is the path of the contact page.
	Path = handler.RootPath + "contact"

	// APIPath accepts JSON or form submissions.
	APIPath = handler.APIPath + "/contact"
	// APISendEmailPath is an alias of APIPath kept for older scripts.
	APISendEmailPath = handler.APIPath + "/send-email"

	// TemplateName is the name of the contact page template.
	TemplateName = "contact/index"

	userAgentMaxLen = 255
)

// Visitor facing messages.
const (
	MsgSent        = "Thanks for reaching out! We will get back to you within two business days."
	MsgInvalid     = "Please correct the highlighted fields."
	MsgBadRequest  = "Your message could not be read."
	MsgFailed      = "Your message could not be sent. Please email us directly."
	MsgRateLimited = "Too many messages from your address. Please try again later or email us directly."
)

// Response is the JSON answer of the submission endpoints.
type Response struct {
	Success  bool                    `json:"success"`
	ID       string                  `json:"id,omitempty"`
	Message  string                  `json:"message,omitempty"`
	Errors   contactform.FieldErrors `json:"errors,omitempty"`
	Fallback string                  `json:"fallback,omitempty"`
}

// Service is the contact handler service.
type Service struct {
	cfg       *config.Config
	db        *gorm.DB
	validator *contactform.Validator
}

// Handler is the contact handler.
var Handler = Service{}

// Init registers routes. Submissions share one rate limit per client IP.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if err := handler.Check(app, cfg, deps); err != nil {
		return err
	}

	if deps.DB == nil {
		return handler.ErrNilDeps
	}

	s.cfg = cfg
	s.db = deps.DB
	s.validator = contactform.NewValidator()

	limit := limiter.New(limiter.Config{
		Max:          cfg.Contact.RateLimit,
		Expiration:   cfg.Contact.RateLimitWindow,
		Storage:      deps.Cache,
		KeyGenerator: func(c *fiber.Ctx) string { return "contact:" + c.IP() },
		LimitReached: s.limitReached,
	})

	app.Get(Path, s.Get)
	app.Post(Path, limit, s.PostForm)
	app.Post(APIPath, limit, s.PostAPI)
	app.Post(APISendEmailPath, limit, s.PostAPI)

	return nil
}

func (s *Service) nav() *navigation.Context {
	return navigation.NewContext("Contact", navigation.SectionContact, "contact").
		WithDescription("Tell us about your project.").
		WithPath(Path).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Contact", Path, true)
}

func (s *Service) render(c *fiber.Ctx, status int, data fiber.Map) error {
	data["Navigation"] = s.nav()
	data["Services"] = content.Services()
	data["Messages"] = contactform.FieldMessages()

	if _, ok := data["Form"]; !ok {
		data["Form"] = contactform.Form{}
	}

	return c.Status(status).Render(TemplateName, data, handler.BaseLayout)
}

// Get renders the empty form. ?service= preselects a service.
func (s *Service) Get(c *fiber.Ctx) error {
	return s.render(c, fiber.StatusOK, fiber.Map{
		"Form": contactform.Form{Service: c.Query("service")},
	})
}

// submit validates and stores a form. Validation always runs before storage.
func (s *Service) submit(c *fiber.Ctx, form contactform.Form) (string, contactform.FieldErrors, error) {
	form = form.Trim()

	fieldErrs, err := s.validator.Validate(form)
	if err != nil {
		contactform.CountSubmission(contactform.ResultInvalid)
		return "", fieldErrs, err
	}

	ua := c.Get(fiber.HeaderUserAgent)
	if len(ua) > userAgentMaxLen {
		ua = ua[:userAgentMaxLen]
	}

	msg := models.ContactMessage{
		Name:      form.Name,
		Email:     form.Email,
		Subject:   form.Subject,
		Service:   form.Service,
		Message:   form.Message,
		IP:        c.IP(),
		UserAgent: strings.ToValidUTF8(ua, ""),
	}

	if err = contactctl.Create(s.db, &msg); err != nil {
		contactform.CountSubmission(contactform.ResultFailed)
		log.Error().Err(err).Str("email", form.Email).Msg("failed to store contact message")

		return "", nil, err
	}

	contactform.CountSubmission(contactform.ResultStored)
	log.Info().Str("id", msg.ID).Str("service", msg.Service).Msg("contact message stored")

	return msg.ID, nil, nil
}

// PostAPI handles JSON and form submissions from the contact script.
func (s *Service) PostAPI(c *fiber.Ctx) error {
	var form contactform.Form

	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(Response{
			Message:  MsgBadRequest,
			Fallback: contactform.MailtoLink(s.cfg.Contact.Email, form),
		})
	}

	id, fieldErrs, err := s.submit(c, form)

	switch {
	case errors.Is(err, contactform.ErrInvalidForm):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(Response{
			Message:  MsgInvalid,
			Errors:   fieldErrs,
			Fallback: contactform.MailtoLink(s.cfg.Contact.Email, form),
		})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(Response{
			Message:  MsgFailed,
			Fallback: contactform.MailtoLink(s.cfg.Contact.Email, form),
		})
	}

	return c.JSON(Response{Success: true, ID: id, Message: MsgSent})
}

// PostForm handles the plain HTML form used without JavaScript.
func (s *Service) PostForm(c *fiber.Ctx) error {
	var form contactform.Form

	if err := c.BodyParser(&form); err != nil {
		return s.render(c, fiber.StatusBadRequest, fiber.Map{
			"Error":    MsgBadRequest,
			"Fallback": contactform.MailtoLink(s.cfg.Contact.Email, form),
		})
	}

	_, fieldErrs, err := s.submit(c, form)

	switch {
	case errors.Is(err, contactform.ErrInvalidForm):
		return s.render(c, fiber.StatusUnprocessableEntity, fiber.Map{
			"Error":       MsgInvalid,
			"FieldErrors": fieldErrs,
			"Form":        form,
		})
	case err != nil:
		return s.render(c, fiber.StatusInternalServerError, fiber.Map{
			"Error":    MsgFailed,
			"Form":     form,
			"Fallback": contactform.MailtoLink(s.cfg.Contact.Email, form),
		})
	}

	return s.render(c, fiber.StatusOK, fiber.Map{"Success": MsgSent})
}

func (s *Service) limitReached(c *fiber.Ctx) error {
	contactform.CountSubmission(contactform.ResultLimited)

	var form contactform.Form
	_ = c.BodyParser(&form) //nolint:errcheck // the fallback works with an empty form

	fallback := contactform.MailtoLink(s.cfg.Contact.Email, form)

	log.Warn().Str("ip", c.IP()).Msg("contact rate limit reached")

	if strings.HasPrefix(c.Path(), handler.APIPath) {
		return c.Status(fiber.StatusTooManyRequests).JSON(Response{
			Message:  MsgRateLimited,
			Fallback: fallback,
		})
	}

	return s.render(c, fiber.StatusTooManyRequests, fiber.Map{
		"Error":    MsgRateLimited,
		"Form":     form,
		"Fallback": fallback,
	})
}
