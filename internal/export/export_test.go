package export

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"testing/fstest"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/nosytlabs/nosytlabs-site/internal/web"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/handlertest"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/sitemap"
	"github.com/nosytlabs/nosytlabs-site/internal/web/session"
)

func newApp() *fiber.App {
	app := fiber.New()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("home")
	})

	app.Get("/blog/:slug", func(c *fiber.Ctx) error {
		return c.SendString("post " + c.Params("slug"))
	})

	return app
}

// files lists the regular files below dir, slash separated and sorted.
func files(t *testing.T, dir string) []string {
	t.Helper()

	var out []string

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}

		out = append(out, filepath.ToSlash(rel))

		return nil
	})
	require.NoError(t, err)

	sort.Strings(out)

	return out
}

func TestRun(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	out := t.TempDir()

	e := Exporter{
		App:     newApp(),
		BaseURL: "https://nosytlabs.com",
		Pages: []sitemap.Page{
			{Path: "/"},
			{Path: "/blog/first"},
			{Path: "/blog/hello%20world"},
		},
		Static: fstest.MapFS{
			"css/site.css":           {Data: []byte("body{}")},
			"images/placeholder.svg": {Data: []byte("<svg/>")},
		},
		Concurrency: 2,
	}

	res, err := e.Run(context.Background(), out)
	require.NoError(t, err)
	assert.Equal(t, Result{Pages: 3, Assets: 2}, res)

	want := []string{
		"404.html",
		"blog/first/index.html",
		"blog/hello world/index.html",
		"index.html",
		"sitemap.xml",
		"static/css/site.css",
		"static/images/placeholder.svg",
	}
	if diff := cmp.Diff(want, files(t, out)); diff != "" {
		t.Errorf("exported files mismatch (-want +got):\n%s", diff)
	}

	body, err := os.ReadFile(filepath.Join(out, "blog", "first", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "post first", string(body))

	smap, err := os.ReadFile(filepath.Join(out, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(smap), "<loc>https://nosytlabs.com/blog/hello%20world</loc>")
}

func TestRunFailsOnMissingPage(t *testing.T) {
	e := Exporter{
		App:   newApp(),
		Pages: []sitemap.Page{{Path: "/"}, {Path: "/missing"}},
	}

	_, err := e.Run(context.Background(), t.TempDir())
	require.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := Exporter{
		App:   newApp(),
		Pages: []sitemap.Page{{Path: "/"}},
	}

	_, err := e.Run(ctx, t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunNilApp(t *testing.T) {
	_, err := (&Exporter{}).Run(context.Background(), t.TempDir())
	require.Error(t, err)
}

func TestPageFile(t *testing.T) {
	tests := []struct {
		route string
		want  string
	}{
		{route: "/", want: "index.html"},
		{route: "/about", want: "about/index.html"},
		{route: "/blog/a%20b", want: "blog/a b/index.html"},
		{route: "/../../etc", want: "etc/index.html"},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			got, err := pageFile("out", tt.route)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join("out", filepath.FromSlash(tt.want)), got)
		})
	}

	_, err := pageFile("out", "/bad%zz")
	require.Error(t, err)
}

func TestRunSite(t *testing.T) {
	storage := memory.New()
	t.Cleanup(func() { _ = storage.Close() })
	session.Init(storage)

	cfg := handlertest.NewConfig()
	deps := handlertest.NewDeps(t, cfg)

	s, err := web.New(cfg, deps)
	require.NoError(t, err)

	out := t.TempDir()

	e := Exporter{
		App:     s.App,
		BaseURL: cfg.Webserver.URL,
		Pages:   sitemap.Pages(deps.Library),
		Static:  web.StaticFS(),
	}

	res, err := e.Run(context.Background(), out)
	require.NoError(t, err)
	assert.Equal(t, len(e.Pages), res.Pages)
	assert.Positive(t, res.Assets)

	home, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(home), "<title>")

	notFound, err := os.ReadFile(filepath.Join(out, "404.html"))
	require.NoError(t, err)
	assert.Contains(t, string(notFound), "Page not found")

	assert.FileExists(t, filepath.Join(out, "blog", "cursor-ai-review", "index.html"))
	assert.FileExists(t, filepath.Join(out, "static", "images", "placeholder.svg"))
}
