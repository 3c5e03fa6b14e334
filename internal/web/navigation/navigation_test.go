package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext("Test Page", "section1", "page1")

	assert.Equal(t, "Test Page", ctx.PageTitle)
	assert.Equal(t, "section1", ctx.ActiveSection)
	assert.Equal(t, "page1", ctx.ActivePage)
	assert.NotNil(t, ctx.Breadcrumbs)
	assert.Empty(t, ctx.Breadcrumbs)
}

func TestContext_AddBreadcrumb(t *testing.T) {
	ctx := NewContext("Test Page", "section1", "page1")

	// Add first breadcrumb
	ctx.AddBreadcrumb("Home", "/", false)
	assert.Len(t, ctx.Breadcrumbs, 1)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "/", ctx.Breadcrumbs[0].URL)
	assert.False(t, ctx.Breadcrumbs[0].Active)

	// Add section breadcrumb
	ctx.AddBreadcrumb("Blog", "/blog", false)
	assert.Len(t, ctx.Breadcrumbs, 2)
	assert.Equal(t, "Blog", ctx.Breadcrumbs[1].Title)

	// Add active breadcrumb
	ctx.AddBreadcrumb("Current Page", "/blog/first-post", true)
	assert.Len(t, ctx.Breadcrumbs, 3)
	assert.True(t, ctx.Breadcrumbs[2].Active)
}

func TestContext_AddBreadcrumb_Chaining(t *testing.T) {
	ctx := NewContext("Test Page", "section1", "page1").
		AddBreadcrumb("Home", "/", false).
		AddBreadcrumb("Blog", "/blog", false).
		AddBreadcrumb("Current", "/blog/current", true)

	assert.Len(t, ctx.Breadcrumbs, 3)
	assert.Equal(t, "Home", ctx.Breadcrumbs[0].Title)
	assert.Equal(t, "Blog", ctx.Breadcrumbs[1].Title)
	assert.Equal(t, "Current", ctx.Breadcrumbs[2].Title)
	assert.True(t, ctx.Breadcrumbs[2].Active)
}

func TestContext_IsActive(t *testing.T) {
	ctx := NewContext("Test Page", SectionBlog, "blog-post")

	// Should return true when both section and page match
	assert.True(t, ctx.IsActive(SectionBlog, "blog-post"))

	// Should return false when section doesn't match
	assert.False(t, ctx.IsActive(SectionHome, "blog-post"))

	// Should return false when page doesn't match
	assert.False(t, ctx.IsActive(SectionBlog, "list"))

	// Should return false when neither match
	assert.False(t, ctx.IsActive(SectionHome, "main"))
}

func TestContext_IsSectionActive(t *testing.T) {
	ctx := NewContext("Test Page", SectionBlog, "blog-post")

	// Should return true when section matches
	assert.True(t, ctx.IsSectionActive(SectionBlog))

	// Should return false when section doesn't match
	assert.False(t, ctx.IsSectionActive(SectionHome))
	assert.False(t, ctx.IsSectionActive(SectionAdmin))
}

func TestContext_Meta(t *testing.T) {
	ctx := NewContext("Blog", SectionBlog, "list").
		WithDescription("Articles").
		WithPath("/blog")

	assert.Equal(t, "Articles", ctx.Description)
	assert.Equal(t, "/blog", ctx.Path)
	assert.Equal(t, "Blog | NosytLabs", ctx.Title("NosytLabs"))
	assert.Equal(t, "NosytLabs", NewContext("", SectionHome, "home").Title("NosytLabs"))
	assert.Equal(t, "NosytLabs", NewContext("NosytLabs", SectionHome, "home").Title("NosytLabs"))
}

func TestMenu(t *testing.T) {
	menu := Menu()

	assert.Equal(t, "/", menu[0].URL)
	assert.Equal(t, SectionContact, menu[len(menu)-1].Section)

	seen := map[string]bool{}
	for _, item := range menu {
		assert.False(t, seen[item.Section], item.Section)
		seen[item.Section] = true
	}
}
