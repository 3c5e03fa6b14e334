// Package blog serves the post list with its category filter and single posts.
package blog

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/content"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/navigation"
)

const (
	// Path is the base path of the blog.
	Path = handler.RootPath + "blog"

	// TemplateList is the template for the post list.
	TemplateList = "blog/list"
	// TemplatePost is the template for a single post.
	TemplatePost = "blog/post"

	// RelatedPosts is the number of related posts below a post.
	RelatedPosts = 3
)

// Service is the blog handler service.
type Service struct {
	deps *handler.Deps
}

// Handler is the blog handler.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if err := handler.Check(app, cfg, deps); err != nil {
		return err
	}

	if deps.Library == nil {
		return handler.ErrNilDeps
	}

	s.deps = deps

	app.Get(Path, s.List)
	app.Get(Path+"/:slug", s.Post)

	return nil
}

// List renders every post as a card and hides those outside the category
// given by ?category=, so the category buttons can switch without a reload.
// ?tag= narrows the list to the posts carrying that tag.
func (s *Service) List(c *fiber.Ctx) error {
	active := content.Slugify(c.Query("category"))
	if active == "" {
		active = content.AllCategories
	}

	posts := s.deps.Library.Posts()
	categories := s.deps.Library.Categories()

	tag := strings.TrimSpace(c.Query("tag"))
	if tag != "" {
		posts = content.ByTag(posts, tag)
		categories = content.Categories(posts)
	}

	cards := content.Cards(posts, active)

	visible := 0

	for _, card := range cards {
		if !card.Hidden {
			visible++
		}
	}

	nav := navigation.NewContext("Blog", navigation.SectionBlog, "list").
		WithDescription("Notes on AI tools, web development, 3D printing and passive income.").
		WithPath(Path).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Blog", Path, true)

	return c.Render(TemplateList, fiber.Map{
		"Navigation":     nav,
		"Posts":          cards,
		"Visible":        visible,
		"Categories":     categories,
		"ActiveCategory": active,
		"Tag":            tag,
	}, handler.BaseLayout)
}

// Post renders one post, 404 for unknown slugs.
func (s *Service) Post(c *fiber.Ctx) error {
	slug, err := url.PathUnescape(c.Params("slug"))
	if err != nil {
		return fiber.ErrNotFound
	}

	post, ok := s.deps.Library.Post(slug)
	if !ok {
		return fiber.ErrNotFound
	}

	// old links may use a differently cased or spaced slug
	if slug != post.Slug {
		return c.Redirect(Path+"/"+post.Slug, fiber.StatusMovedPermanently)
	}

	nav := navigation.NewContext(post.Title, navigation.SectionBlog, post.Slug).
		WithDescription(post.Excerpt).
		WithPath(Path+"/"+post.Slug).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Blog", Path, false).
		AddBreadcrumb(post.Title, Path+"/"+post.Slug, true)

	return c.Render(TemplatePost, fiber.Map{
		"Navigation": nav,
		"Post":       post,
		"Related":    content.Related(s.deps.Library.Posts(), post, RelatedPosts),
	}, handler.BaseLayout)
}
