// Package about serves the about page with the team.
package about

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/content"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/navigation"
)

const (
	// Path is the path to the about page.
	Path = handler.RootPath + "about"

	// TemplateName is the name of the about page template.
	TemplateName = "about/index"
)

// Service is the about page handler service.
type Service struct {
	cfg *config.Config
}

// Handler is the about page handler.
var Handler = Service{}

// Init registers the about page route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if err := handler.Check(app, cfg, deps); err != nil {
		return err
	}

	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get renders the about page.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("About", navigation.SectionAbout, "about").
		WithDescription("Who builds NosytLabs and what we work with.").
		WithPath(Path).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("About", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Team":       content.Team(),
		"Services":   content.Services(),
	}, handler.BaseLayout)
}
