// Package main provides the entry point for the NosytLabs site server.
// It renders the NosytLabs marketing and portfolio pages (blog, services,
// live stream, skills and passive-income guides) with the Fiber framework,
// answers the small JSON APIs used by the page scripts (contact form,
// earnings calculator, crypto prices, stream status) and can export the
// whole public site as static HTML.
package main
