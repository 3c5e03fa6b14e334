// Package auth guards the admin panel.
//
// Middleware validates the session cookie of every request below
// handler.AdminPath and redirects to the login page when it is missing or
// expired. The login and logout pages stay reachable without a session, and
// a signed in user opening the login page is sent to the dashboard.
//
// The session data is stored in the request locals under
// handler.LocalsCurrentUser for handlers and templates.
//
// Usage:
//
//	app.Use(handler.AdminPath, authmiddleware.Middleware)
package auth
