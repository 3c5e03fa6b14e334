package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/admin/login"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/admin/logout"
	"github.com/nosytlabs/nosytlabs-site/internal/web/session"
)

// Middleware is a Fiber middleware that checks for user authentication.
func Middleware(c *fiber.Ctx) error {
	if !IsAdminPage(c) || IsLogoutPage(c) {
		return c.Next()
	}

	isLoginPage := IsLoginPage(c)

	sessData := new(session.Data)
	if err := sessData.Read(c.Cookies(session.CookieName)); err != nil || !sessData.Valid() {
		// already on the login page, redirecting would loop
		if isLoginPage {
			return c.Next()
		}

		return c.Redirect(login.Path)
	}

	if isLoginPage {
		return c.Redirect(handler.AdminPath)
	}

	c.Locals(handler.LocalsCurrentUser, *sessData)

	return c.Next()
}

// CurrentUser returns the session stored by Middleware.
func CurrentUser(c *fiber.Ctx) (session.Data, bool) {
	d, ok := c.Locals(handler.LocalsCurrentUser).(session.Data)
	return d, ok
}

func path(c *fiber.Ctx) string {
	return strings.TrimRight(strings.ToLower(c.Path()), "/")
}

// IsAdminPage checks if the request is below the admin path.
func IsAdminPage(c *fiber.Ctx) bool {
	p := path(c)
	return p == handler.AdminPath || strings.HasPrefix(p, handler.AdminPath+"/")
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	return path(c) == login.Path
}

// IsLogoutPage checks if the current request is for the logout page.
func IsLogoutPage(c *fiber.Ctx) bool {
	return path(c) == logout.Path
}
