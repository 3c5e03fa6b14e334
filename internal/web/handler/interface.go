// Package handler holds what the page handlers share: layout names, route
// prefixes and the dependencies handed to every handler.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/content"
	"github.com/nosytlabs/nosytlabs-site/internal/pricefeed"
	"github.com/nosytlabs/nosytlabs-site/internal/stream"
)

// ErrNilDeps is returned by Init when a required dependency is missing.
var ErrNilDeps = errors.New(ErrNilACDFatalLogMsg)

// Deps are the shared services handlers are built from.
type Deps struct {
	DB      *gorm.DB
	Library *content.Library
	Prices  *pricefeed.Client
	Stream  *stream.Schedule
	// Cache backs the rate limiter.
	Cache fiber.Storage
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, deps *Deps) error
}

// Check returns ErrNilDeps when app, cfg or deps is nil.
func Check(app *fiber.App, cfg *config.Config, deps *Deps) error {
	if app == nil || cfg == nil || deps == nil {
		return ErrNilDeps
	}

	return nil
}
