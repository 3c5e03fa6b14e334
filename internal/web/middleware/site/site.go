// Package site stores the layout data every page template needs in the
// request locals.
package site

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/db/controller/setting"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
)

// DefaultAnnouncementLevel is used when no valid level is stored.
const DefaultAnnouncementLevel = "info"

// New returns the middleware. Static files and API calls are skipped. A nil
// db disables the announcement banner.
func New(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := c.Path()
		if strings.HasPrefix(p, "/static") || strings.HasPrefix(p, handler.APIPath+"/") {
			return c.Next()
		}

		c.Locals(handler.LocalsSite, handler.NewSite(cfg, time.Now()))

		text, level := Announcement(db)
		if text != "" {
			c.Locals(handler.LocalsAnnouncement, text)
			c.Locals(handler.LocalsAnnouncementLevel, level)
		}

		return c.Next()
	}
}

// Announcement returns the banner text and its level from a single read of
// the settings table. Lookup errors hide the banner.
func Announcement(db *gorm.DB) (text, level string) {
	if db == nil {
		return "", ""
	}

	settings, err := setting.GetAll(db)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load announcement")
		return "", ""
	}

	for _, s := range settings {
		switch s.Name {
		case setting.Announcement:
			text = strings.TrimSpace(string(s.Value))
		case setting.AnnouncementLevel:
			level = string(s.Value)
		}
	}

	if text == "" {
		return "", ""
	}

	if !setting.ValidLevel(level) {
		level = DefaultAnnouncementLevel
	}

	return text, level
}
