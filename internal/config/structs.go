package config

import (
	"time"

	"github.com/nosytlabs/nosytlabs-site/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode    bool // enable dev mode for development
	DB         DB
	Log        logger.Log
	Title      string
	Webserver  Webserver
	Content    Content
	Contact    Contact
	PriceFeed  PriceFeed
	Stream     Stream
	Admin      Admin
	Calculator Calculator
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic        bool    // enable static file browsing (for development purposes only)
	CleanPath           bool    // use clean path middleware to allow multi slash requests
	DisableRecover      bool    // disable recover middleware
	Domain              string  // domain name for the webserver
	Port                int     // listening port for the webserver
	ShutDownTime        int     // wait time for shutdown
	URL                 string  // base url for the webserver, used for sitemap and canonical links
	CookieEncryptionKey string  // encryption key for cookies
	Session             Session // admin session settings
}

// Content settings for the blog post sources.
type Content struct {
	// Dir is an on-disk directory holding posts/*.md. Empty uses the embedded posts.
	Dir string
	// WatchDebounce is the delay between a file change and the reload in dev mode.
	WatchDebounce time.Duration
}

// Contact form settings.
type Contact struct {
	Email           string // mailto fallback recipient
	RateLimit       int    // submissions per window and IP
	RateLimitWindow time.Duration
}

// PriceFeed settings for the crypto price widget.
type PriceFeed struct {
	Enabled  bool
	BaseURL  string
	Coins    []string
	Currency string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// StreamSlot is a weekly recurring live stream.
type StreamSlot struct {
	Weekday  string // Monday..Sunday
	Start    string // HH:MM in Stream.Timezone
	Duration time.Duration
	Title    string
}

// Stream settings for the live page.
type Stream struct {
	Channel  string
	URL      string
	Timezone string
	Schedule []StreamSlot
}

// Admin seeds the admin panel account on first start.
type Admin struct {
	Username string
	Password string
}

// Calculator default inputs for the earnings calculator form.
type Calculator struct {
	DefaultDevices         int
	DefaultHours           int
	DefaultReferrals       int
	DefaultReferralDevices int
}
