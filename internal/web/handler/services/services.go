// Package services serves the service overview, pricing and service details.
package services

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/content"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/navigation"
)

const (
	// Path is the base path for services.
	Path = handler.RootPath + "services"

	// TemplateList is the template for the service overview.
	TemplateList = "services/list"
	// TemplateDetail is the template for a single service.
	TemplateDetail = "services/detail"
)

// Service is the services handler service.
type Service struct{}

// Handler is the services handler.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if err := handler.Check(app, cfg, deps); err != nil {
		return err
	}

	app.Get(Path, s.List)
	app.Get(Path+"/:id", s.Detail)

	return nil
}

// List renders all services with pricing and FAQ.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Services", navigation.SectionServices, "list").
		WithDescription("Web development, AI integration, mobile apps, 3D printing and consulting.").
		WithPath(Path).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Services", Path, true)

	return c.Render(TemplateList, fiber.Map{
		"Navigation": nav,
		"Services":   content.Services(),
		"Pricing":    content.Pricing(),
		"FAQs":       content.FAQs(),
	}, handler.BaseLayout)
}

// Detail renders one service, 404 for unknown ids.
func (s *Service) Detail(c *fiber.Ctx) error {
	svc, ok := content.ServiceByID(c.Params("id"))
	if !ok {
		return fiber.ErrNotFound
	}

	nav := navigation.NewContext(svc.Title, navigation.SectionServices, svc.ID).
		WithDescription(svc.ShortDescription).
		WithPath(Path+"/"+svc.ID).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Services", Path, false).
		AddBreadcrumb(svc.Title, Path+"/"+svc.ID, true)

	return c.Render(TemplateDetail, fiber.Map{
		"Navigation": nav,
		"Service":    svc,
	}, handler.BaseLayout)
}
