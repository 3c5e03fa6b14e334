package web

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/rs/zerolog/log"

	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/navigation"
)

// ErrorTemplate renders failed page requests.
const ErrorTemplate = "errors/error"

// MsgNotFound is shown for unknown pages.
const MsgNotFound = "The page you are looking for does not exist or has moved."

// errorHandler renders the error page, or a JSON error below /api.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	if strings.HasPrefix(c.Path(), handler.APIPath+"/") {
		return c.Status(code).JSON(fiber.Map{"error": utils.StatusMessage(code)})
	}

	title := utils.StatusMessage(code)
	message := "Something went wrong on our side. Please try again later."

	if code == fiber.StatusNotFound {
		title = "Page not found"
		message = MsgNotFound
	}

	nav := navigation.NewContext(title, "", "error").WithPath(c.Path())

	c.Status(code)

	if rerr := c.Render(ErrorTemplate, fiber.Map{
		"Navigation": nav,
		"Code":       code,
		"Title":      title,
		"Message":    message,
	}, handler.BaseLayout); rerr != nil {
		log.Error().Err(rerr).Msg("failed to render error page")

		return c.Status(code).SendString(title)
	}

	return nil
}
