// Package export renders the public pages of the site into a directory of
// static files that any file server can host.
package export

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync/atomic"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/sitemap"
)

const (
	// DefaultConcurrency bounds the pages rendered at once.
	DefaultConcurrency = 4

	// NotFoundRoute is requested to render the 404 page.
	NotFoundRoute = "/__export/not-found"

	indexFile    = "index.html"
	notFoundFile = "404.html"
	sitemapFile  = "sitemap.xml"
	staticDir    = "static"

	dirMode  = 0o755
	fileMode = 0o644
)

// ErrUnexpectedStatus is returned when a page does not answer 200.
var ErrUnexpectedStatus = errors.New("unexpected status")

// Result counts what Run wrote.
type Result struct {
	Pages  int
	Assets int
}

// Exporter renders Pages through App and writes them below an output directory.
type Exporter struct {
	App         *fiber.App
	BaseURL     string
	Pages       []sitemap.Page
	Static      fs.FS
	Concurrency int
}

// Run writes every page as <out>/<path>/index.html, the 404 page, sitemap.xml
// and the static assets. It stops at the first failure.
func (e *Exporter) Run(ctx context.Context, out string) (Result, error) {
	if e.App == nil {
		return Result{}, errors.New("export: app is nil")
	}

	if err := os.MkdirAll(out, dirMode); err != nil {
		return Result{}, errors.Wrap(err, "failed to create output dir")
	}

	limit := e.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	var pages, assets atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, p := range e.Pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := pageFile(out, p.Path)
			if err != nil {
				return err
			}

			if err = e.render(p.Path, http.StatusOK, file); err != nil {
				return err
			}

			pages.Add(1)

			return nil
		})
	}

	g.Go(func() error {
		return e.render(NotFoundRoute, http.StatusNotFound, filepath.Join(out, notFoundFile))
	})

	g.Go(func() error {
		data, err := sitemap.Render(e.BaseURL, e.Pages)
		if err != nil {
			return err
		}

		return writeFile(filepath.Join(out, sitemapFile), data)
	})

	if e.Static != nil {
		g.Go(func() error {
			n, err := copyTree(ctx, e.Static, filepath.Join(out, staticDir))
			assets.Add(int64(n))

			return err
		})
	}

	err := g.Wait()

	res := Result{Pages: int(pages.Load()), Assets: int(assets.Load())}

	if err != nil {
		return res, err
	}

	log.Info().Str("out", out).Int("pages", res.Pages).Int("assets", res.Assets).Msg("site exported")

	return res, nil
}

func (e *Exporter) render(target string, want int, file string) error {
	resp, err := e.App.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	if err != nil {
		return errors.Wrapf(err, "failed to render %s", target)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != want {
		return errors.Wrapf(ErrUnexpectedStatus, "%s answered %d", target, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", target)
	}

	log.Debug().Str("page", target).Str("file", file).Msg("exported page")

	return writeFile(file, body)
}

// pageFile maps a route to its index.html below out.
func pageFile(out, route string) (string, error) {
	p, err := url.PathUnescape(route)
	if err != nil {
		return "", errors.Wrapf(err, "invalid page path %q", route)
	}

	// rooted before cleaning so ".." can not leave out
	p = path.Clean("/" + p)

	return filepath.Join(out, filepath.FromSlash(p), indexFile), nil
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), dirMode); err != nil {
		return errors.Wrap(err, "failed to create dir")
	}

	if err := os.WriteFile(name, data, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}

	return nil
}

// copyTree copies every regular file of src below dst and returns the count.
func copyTree(ctx context.Context, src fs.FS, dst string) (int, error) {
	n := 0

	err := fs.WalkDir(src, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err = ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(src, name)
		if err != nil {
			return errors.Wrapf(err, "failed to read asset %s", name)
		}

		if err = writeFile(filepath.Join(dst, filepath.FromSlash(name)), data); err != nil {
			return err
		}

		n++

		return nil
	})

	return n, err
}
