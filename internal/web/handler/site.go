package handler

import (
	"time"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/web/navigation"
)

// Site is the per-request data every layout needs.
type Site struct {
	Title        string
	URL          string
	ContactEmail string
	StreamURL    string
	Year         int
	Menu         []navigation.MenuItem
	DevMode      bool
}

// NewSite builds the layout data from the configuration.
func NewSite(cfg *config.Config, now time.Time) Site {
	return Site{
		Title:        cfg.Title,
		URL:          cfg.Webserver.URL,
		ContactEmail: cfg.Contact.Email,
		StreamURL:    cfg.Stream.URL,
		Year:         now.Year(),
		Menu:         navigation.Menu(),
		DevMode:      cfg.DevMode,
	}
}
