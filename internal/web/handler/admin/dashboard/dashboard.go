// Package dashboard provides the admin dashboard: sample business metrics,
// the project board, the contact message inbox and the content status.
package dashboard

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/content"
	contactctl "github.com/nosytlabs/nosytlabs-site/internal/db/controller/contact"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.AdminPath

	// HandledPath marks one message handled.
	HandledPath = Path + "/messages/:id/handled"

	// ReloadPath reloads the blog posts from their source.
	ReloadPath = Path + "/content/reload"

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/dashboard"

	// DefaultPageSize is the number of messages listed.
	DefaultPageSize = 25

	// FilterUnhandled lists only open messages.
	FilterUnhandled = "unhandled"
)

// Metric is one tile of the overview.
type Metric struct {
	Label  string
	Value  string
	Change string
	Up     bool
}

// Project is one row of the project board.
type Project struct {
	Name     string
	Client   string
	Status   string
	Progress int
}

// SampleMetrics returns the overview tiles. The values are illustrative.
func SampleMetrics() []Metric {
	return []Metric{
		{Label: "Monthly visitors", Value: "12,480", Change: "+8.2%", Up: true},
		{Label: "Active projects", Value: "6", Change: "+2", Up: true},
		{Label: "Avg. response time", Value: "4.1h", Change: "-0.6h", Up: true},
		{Label: "Stream followers", Value: "1,932", Change: "-1.1%", Up: false},
	}
}

// SampleProjects returns the project board. The rows are illustrative.
func SampleProjects() []Project {
	return []Project{
		{Name: "Bakery storefront", Client: "Crumb & Co", Status: "In progress", Progress: 65},
		{Name: "Support chatbot", Client: "Helio Dental", Status: "Review", Progress: 90},
		{Name: "Drone mount prototype", Client: "Internal", Status: "Printing", Progress: 40},
		{Name: "Portfolio refresh", Client: "NosytLabs", Status: "Planning", Progress: 10},
	}
}

// ContentStatus describes the loaded blog posts.
type ContentStatus struct {
	Posts      int
	Categories int
	LoadedAt   time.Time
}

// Service is the dashboard handler service.
type Service struct {
	db      *gorm.DB
	library *content.Library
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if err := handler.Check(app, cfg, deps); err != nil {
		return err
	}

	if deps.DB == nil || deps.Library == nil {
		return handler.ErrNilDeps
	}

	s.db = deps.DB
	s.library = deps.Library

	app.Get(Path, s.Get)
	app.Post(HandledPath, s.MarkHandled)
	app.Post(ReloadPath, s.Reload)

	return nil
}

// Get renders the dashboard. ?filter=unhandled hides handled messages.
func (s *Service) Get(c *fiber.Ctx) error {
	filter := c.Query("filter")

	nav := navigation.NewContext("Dashboard", navigation.SectionAdmin, "dashboard").
		WithPath(Path).
		AddBreadcrumb("Admin", Path, true)

	messages, err := contactctl.List(s.db, contactctl.ListOptions{
		Limit:         DefaultPageSize,
		UnhandledOnly: filter == FilterUnhandled,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list contact messages")
		return err
	}

	counts, err := contactctl.Count(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contact messages")
		return err
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Metrics":    SampleMetrics(),
		"Projects":   SampleProjects(),
		"Messages":   messages,
		"Counts":     counts,
		"Filter":     filter,
		"Content":    s.status(),
		"Reloaded":   c.Query("reloaded") == "1",
	}, handler.AdminLayout)
}

func (s *Service) status() ContentStatus {
	// categories include the "All Posts" entry
	return ContentStatus{
		Posts:      len(s.library.Posts()),
		Categories: len(s.library.Categories()) - 1,
		LoadedAt:   s.library.LoadedAt(),
	}
}

// Reload reads the blog posts again. A failed reload keeps the previous posts.
func (s *Service) Reload(c *fiber.Ctx) error {
	if err := s.library.Reload(); err != nil {
		log.Error().Err(err).Msg("failed to reload content")
		return err
	}

	log.Info().Int("posts", len(s.library.Posts())).Msg("content reloaded")

	return c.Redirect(Path + "?reloaded=1")
}

// MarkHandled flags a message as handled and returns to the dashboard.
func (s *Service) MarkHandled(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := contactctl.MarkHandled(s.db, id); err != nil {
		if errors.Is(err, contactctl.ErrMessageNotFound) {
			return fiber.ErrNotFound
		}

		log.Error().Err(err).Str("id", id).Msg("failed to mark message handled")

		return err
	}

	target := Path
	if f := c.Query("filter"); f == FilterUnhandled {
		target += "?filter=" + FilterUnhandled
	}

	return c.Redirect(target)
}
