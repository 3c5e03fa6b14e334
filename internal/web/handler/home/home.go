// Package home serves the landing page.
package home

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/content"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/navigation"
)

const (
	// Path is the path to the landing page.
	Path = handler.RootPath

	// TemplateName is the name of the landing page template.
	TemplateName = "home/index"

	// RecentPosts is the number of posts teased on the landing page.
	RecentPosts = 3
)

// Service is the landing page handler service.
type Service struct {
	cfg  *config.Config
	deps *handler.Deps
}

// Handler is the landing page handler.
var Handler = Service{}

// Init registers the landing page route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if err := handler.Check(app, cfg, deps); err != nil {
		return err
	}

	if deps.Library == nil {
		return handler.ErrNilDeps
	}

	s.cfg = cfg
	s.deps = deps

	app.Get(Path, s.Get)

	return nil
}

// Get renders the landing page.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext(s.cfg.Title, navigation.SectionHome, "home").
		WithDescription("Web development, AI integration, 3D printing and live build streams by NosytLabs.").
		WithPath(Path)

	data := fiber.Map{
		"Navigation": nav,
		"Posts":      s.deps.Library.Recent(RecentPosts),
		"Services":   content.Services(),
		"Apps":       content.PassiveIncomeApps(),
	}

	if s.deps.Stream != nil {
		data["Stream"] = s.deps.Stream.Status(time.Now())
	}

	return c.Render(TemplateName, data, handler.BaseLayout)
}
