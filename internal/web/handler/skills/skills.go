// Package skills serves the skills overview.
package skills

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/content"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/navigation"
)

const (
	// Path is the path to the skills page.
	Path = handler.RootPath + "skills"

	// TemplateName is the name of the skills template.
	TemplateName = "skills/index"
)

// Service is the skills handler service.
type Service struct{}

// Handler is the skills handler.
var Handler = Service{}

// Init registers the skills route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if err := handler.Check(app, cfg, deps); err != nil {
		return err
	}

	app.Get(Path, s.Get)

	return nil
}

// Get renders the skill groups.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Skills", navigation.SectionSkills, "skills").
		WithDescription("Frontend, backend, maker and media skills.").
		WithPath(Path).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Skills", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Groups":     content.Skills(),
	}, handler.BaseLayout)
}
