// Package live serves the stream page with the current status and schedule.
package live

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/navigation"
)

const (
	// Path is the path to the live page.
	Path = handler.RootPath + "live"

	// TemplateName is the name of the live page template.
	TemplateName = "live/index"

	// UpcomingCount is the number of upcoming streams listed.
	UpcomingCount = 5
)

// Service is the live page handler service.
type Service struct {
	deps *handler.Deps
	now  func() time.Time
}

// Handler is the live page handler.
var Handler = Service{}

// Init registers the live page route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if err := handler.Check(app, cfg, deps); err != nil {
		return err
	}

	if deps.Stream == nil {
		return handler.ErrNilDeps
	}

	s.deps = deps
	if s.now == nil {
		s.now = time.Now
	}

	app.Get(Path, s.Get)

	return nil
}

// Get renders the stream status.
func (s *Service) Get(c *fiber.Ctx) error {
	now := s.now()

	nav := navigation.NewContext("Live", navigation.SectionLive, "live").
		WithDescription("Live build sessions: coding, 3D printing and tool reviews.").
		WithPath(Path).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Live", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Status":     s.deps.Stream.Status(now),
		"Upcoming":   s.deps.Stream.Upcoming(now, UpcomingCount),
		"Slots":      s.deps.Stream.Slots(),
		"Timezone":   s.deps.Stream.Location().String(),
	}, handler.BaseLayout)
}
