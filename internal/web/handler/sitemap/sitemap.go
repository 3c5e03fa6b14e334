// Package sitemap serves /sitemap.xml and lists the public pages for the
// static export.
package sitemap

import (
	"encoding/xml"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/content"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
)

// Path is the path of the sitemap.
const Path = handler.RootPath + "sitemap.xml"

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Page is one public route.
type Page struct {
	Path       string
	LastMod    time.Time
	ChangeFreq string
	Priority   float32
}

// Pages returns every public page. Posts without a slug are never listed.
func Pages(lib *content.Library) []Page {
	pages := []Page{
		{Path: "/", ChangeFreq: "weekly", Priority: 1},
		{Path: "/about", ChangeFreq: "monthly", Priority: 0.8},
		{Path: "/services", ChangeFreq: "monthly", Priority: 0.9},
		{Path: "/blog", ChangeFreq: "weekly", Priority: 0.9},
		{Path: "/passive-income", ChangeFreq: "monthly", Priority: 0.7},
		{Path: "/skills", ChangeFreq: "monthly", Priority: 0.5},
		{Path: "/live", ChangeFreq: "daily", Priority: 0.6},
		{Path: "/contact", ChangeFreq: "yearly", Priority: 0.7},
	}

	for _, s := range content.Services() {
		pages = append(pages, Page{Path: "/services/" + s.ID, ChangeFreq: "monthly", Priority: 0.7})
	}

	for _, a := range content.PassiveIncomeApps() {
		pages = append(pages, Page{Path: "/passive-income/" + a.ID, ChangeFreq: "monthly", Priority: 0.5})
	}

	if lib == nil {
		return pages
	}

	for _, p := range lib.Posts() {
		pages = append(pages, Page{
			Path:       "/blog/" + url.PathEscape(p.Slug),
			LastMod:    p.Date,
			ChangeFreq: "monthly",
			Priority:   0.6,
		})
	}

	return pages
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []entry  `xml:"url"`
}

type entry struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

// Render returns the sitemap document for pages under baseURL.
func Render(baseURL string, pages []Page) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")

	set := urlset{Xmlns: xmlns, URLs: make([]entry, 0, len(pages))}

	for _, p := range pages {
		e := entry{
			Loc:        base + p.Path,
			ChangeFreq: p.ChangeFreq,
			Priority:   p.Priority,
		}

		if !p.LastMod.IsZero() {
			e.LastMod = p.LastMod.UTC().Format(time.DateOnly)
		}

		set.URLs = append(set.URLs, e)
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return append([]byte(xml.Header), out...), nil
}

// Service is the sitemap handler service.
type Service struct {
	cfg *config.Config
	lib *content.Library
}

// Handler is the sitemap handler.
var Handler = Service{}

// Init registers the sitemap route.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if err := handler.Check(app, cfg, deps); err != nil {
		return err
	}

	if deps.Library == nil {
		return handler.ErrNilDeps
	}

	s.cfg = cfg
	s.lib = deps.Library

	app.Get(Path, s.Get)

	return nil
}

// Get writes the sitemap.
func (s *Service) Get(c *fiber.Ctx) error {
	body, err := Render(s.cfg.Webserver.URL, Pages(s.lib))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)

	return c.Send(body)
}
