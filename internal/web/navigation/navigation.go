// Package navigation holds the site menu and the per-page title, description and breadcrumbs.
package navigation

// Sections of the site menu.
const (
	SectionHome          = "home"
	SectionAbout         = "about"
	SectionServices      = "services"
	SectionBlog          = "blog"
	SectionPassiveIncome = "passive-income"
	SectionSkills        = "skills"
	SectionLive          = "live"
	SectionContact       = "contact"
	SectionAdmin         = "admin"
)

// MenuItem is one entry of the main navigation.
type MenuItem struct {
	Title   string
	URL     string
	Section string
}

// Menu returns the main navigation in display order.
func Menu() []MenuItem {
	return []MenuItem{
		{Title: "Home", URL: "/", Section: SectionHome},
		{Title: "About", URL: "/about", Section: SectionAbout},
		{Title: "Services", URL: "/services", Section: SectionServices},
		{Title: "Blog", URL: "/blog", Section: SectionBlog},
		{Title: "Passive Income", URL: "/passive-income", Section: SectionPassiveIncome},
		{Title: "Skills", URL: "/skills", Section: SectionSkills},
		{Title: "Live", URL: "/live", Section: SectionLive},
		{Title: "Contact", URL: "/contact", Section: SectionContact},
	}
}

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	ActivePage    string
	Breadcrumbs   []BreadcrumbItem
	PageTitle     string
	Description   string
	// Path is the canonical path of the page, joined with the site URL in the layout.
	Path string
}

// NewContext creates a new navigation context.
func NewContext(pageTitle, activeSection, activePage string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		ActivePage:    activePage,
		Breadcrumbs:   make([]BreadcrumbItem, 0),
	}
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// WithDescription sets the meta description.
func (c *Context) WithDescription(description string) *Context {
	c.Description = description
	return c
}

// WithPath sets the canonical path.
func (c *Context) WithPath(path string) *Context {
	c.Path = path
	return c
}

// IsActive checks if the given section and page match the current context.
func (c *Context) IsActive(section, page string) bool {
	return c.ActiveSection == section && c.ActivePage == page
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}

// Title returns the document title: "Page | Site", or site alone on pages
// without their own title.
func (c *Context) Title(site string) string {
	if c.PageTitle == "" || c.PageTitle == site {
		return site
	}

	return c.PageTitle + " | " + site
}
