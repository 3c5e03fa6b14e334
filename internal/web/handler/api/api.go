// Package api serves the JSON endpoints used by the page scripts.
package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/nosytlabs/nosytlabs-site/internal/calculator"
	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/content"
	"github.com/nosytlabs/nosytlabs-site/internal/pricefeed"
	"github.com/nosytlabs/nosytlabs-site/internal/stream"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/passiveincome"
)

const (
	// CalculatorPath estimates passive income earnings.
	CalculatorPath = handler.APIPath + "/calculator"
	// PricesPath returns the crypto price widget data.
	PricesPath = handler.APIPath + "/prices"
	// StreamStatusPath returns the live stream status.
	StreamStatusPath = handler.APIPath + "/stream/status"
)

// Error messages returned in the "error" field.
const (
	MsgPricesUnavailable = "Could not load prices"
	MsgPricesDisabled    = "Price feed is disabled"
	MsgUnknownApp        = "Unknown app"
	MsgInvalidInput      = "Invalid calculator input"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CalculatorResponse is the body of a calculator call.
type CalculatorResponse struct {
	App string `json:"app,omitempty"`
	calculator.Estimate
	Formatted map[string]string `json:"formatted"`
}

// StreamResponse is the body of a stream status call.
type StreamResponse struct {
	stream.Status
	Timezone string    `json:"timezone"`
	Now      time.Time `json:"now"`
}

// Service is the API handler service.
type Service struct {
	cfg    *config.Config
	prices *pricefeed.Client
	stream *stream.Schedule
	now    func() time.Time
}

// Handler is the API handler.
var Handler = Service{}

// Init registers the API routes. The price client may be nil, the endpoint
// then answers 503.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if err := handler.Check(app, cfg, deps); err != nil {
		return err
	}

	if deps.Stream == nil {
		return handler.ErrNilDeps
	}

	s.cfg = cfg
	s.prices = deps.Prices
	s.stream = deps.Stream

	if s.now == nil {
		s.now = time.Now
	}

	app.Get(CalculatorPath, s.Calculator)
	app.Get(PricesPath, s.Prices)
	app.Get(StreamStatusPath, s.StreamStatus)

	return nil
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{Error: msg})
}

// Calculator returns an estimate for the query. ?app= applies that app's rates.
func (s *Service) Calculator(c *fiber.Ctx) error {
	var req calculator.Request

	if err := c.QueryParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, MsgInvalidInput)
	}

	if err := req.Validate(); err != nil {
		return fail(c, fiber.StatusBadRequest, MsgInvalidInput)
	}

	rates := calculator.DefaultRates()

	if req.App != "" {
		app, ok := content.PassiveIncomeAppByID(req.App)
		if !ok || !app.Calculator {
			return fail(c, fiber.StatusNotFound, MsgUnknownApp)
		}

		rates = calculator.RatesFor(app)
	}

	e := calculator.Calculate(req.Input(passiveincome.Defaults(s.cfg)), rates)

	return c.JSON(CalculatorResponse{
		App:      req.App,
		Estimate: e,
		Formatted: map[string]string{
			"daily":   calculator.FormatUSD(e.Daily),
			"monthly": calculator.FormatUSD(e.Monthly),
			"yearly":  calculator.FormatUSD(e.Yearly),
		},
	})
}

// Prices returns the cached price quote.
func (s *Service) Prices(c *fiber.Ctx) error {
	if s.prices == nil {
		return fail(c, fiber.StatusServiceUnavailable, MsgPricesDisabled)
	}

	q, err := s.prices.Prices(c.UserContext())

	switch {
	case errors.Is(err, pricefeed.ErrDisabled):
		return fail(c, fiber.StatusServiceUnavailable, MsgPricesDisabled)
	case err != nil:
		log.Warn().Err(err).Msg("price feed failed")
		return fail(c, fiber.StatusBadGateway, MsgPricesUnavailable)
	}

	c.Set(fiber.HeaderCacheControl, "public, max-age=30")

	return c.JSON(q)
}

// StreamStatus returns whether the stream is live and the next start.
func (s *Service) StreamStatus(c *fiber.Ctx) error {
	now := s.now()

	c.Set(fiber.HeaderCacheControl, "no-store")

	return c.JSON(StreamResponse{
		Status:   s.stream.Status(now),
		Timezone: s.stream.Location().String(),
		Now:      now.UTC(),
	})
}
