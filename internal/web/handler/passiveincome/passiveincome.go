// Package passiveincome serves the passive income app guides and their
// server rendered earnings estimates.
package passiveincome

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/nosytlabs/nosytlabs-site/internal/calculator"
	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/content"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/navigation"
)

const (
	// Path is the base path of the app guides.
	Path = handler.RootPath + "passive-income"

	// TemplateList is the template for the app list.
	TemplateList = "passiveincome/list"
	// TemplateDetail is the template for one app guide.
	TemplateDetail = "passiveincome/detail"
)

// Service is the passive income handler service.
type Service struct {
	cfg *config.Config
}

// Handler is the passive income handler.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if err := handler.Check(app, cfg, deps); err != nil {
		return err
	}

	s.cfg = cfg

	app.Get(Path, s.List)
	app.Get(Path+"/:id", s.Detail)

	return nil
}

// Defaults returns the calculator inputs used when a field is missing.
func Defaults(cfg *config.Config) calculator.Input {
	return calculator.Input{
		Devices:         cfg.Calculator.DefaultDevices,
		Hours:           cfg.Calculator.DefaultHours,
		Referrals:       cfg.Calculator.DefaultReferrals,
		ReferralDevices: cfg.Calculator.DefaultReferralDevices,
	}
}

// estimate parses the calculator query of c. Invalid queries use the defaults.
func (s *Service) estimate(c *fiber.Ctx, rates calculator.Rates) calculator.Estimate {
	def := Defaults(s.cfg)

	var req calculator.Request
	if err := c.QueryParser(&req); err != nil {
		log.Debug().Err(err).Msg("calculator query not parsable")
		return calculator.Calculate(def, rates)
	}

	if err := req.Validate(); err != nil {
		log.Debug().Err(err).Msg("calculator query rejected")
		return calculator.Calculate(def, rates)
	}

	return calculator.Calculate(req.Input(def), rates)
}

// List renders all app guides with the default estimate.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Passive Income", navigation.SectionPassiveIncome, "list").
		WithDescription("Bandwidth sharing and rewards apps, with honest earnings estimates.").
		WithPath(Path).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Passive Income", Path, true)

	return c.Render(TemplateList, fiber.Map{
		"Navigation": nav,
		"Apps":       content.PassiveIncomeApps(),
		"Estimate":   s.estimate(c, calculator.DefaultRates()),
	}, handler.BaseLayout)
}

// Detail renders one app guide, 404 for unknown ids.
func (s *Service) Detail(c *fiber.Ctx) error {
	app, ok := content.PassiveIncomeAppByID(c.Params("id"))
	if !ok {
		return fiber.ErrNotFound
	}

	nav := navigation.NewContext(app.Title, navigation.SectionPassiveIncome, app.ID).
		WithDescription(app.Description).
		WithPath(Path+"/"+app.ID).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Passive Income", Path, false).
		AddBreadcrumb(app.Title, Path+"/"+app.ID, true)

	data := fiber.Map{
		"Navigation": nav,
		"App":        app,
	}

	if app.Calculator {
		data["Estimate"] = s.estimate(c, calculator.RatesFor(app))
	}

	return c.Render(TemplateDetail, data, handler.BaseLayout)
}
