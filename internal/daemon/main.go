// Package daemon wires the database, content, sessions and web service of the
// site together.
package daemon

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/gofiber/storage/memory/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	"github.com/nosytlabs/nosytlabs-site/internal/content"
	"github.com/nosytlabs/nosytlabs-site/internal/db/dsn"
	"github.com/nosytlabs/nosytlabs-site/internal/db/models"
	"github.com/nosytlabs/nosytlabs-site/internal/export"
	gormlog "github.com/nosytlabs/nosytlabs-site/internal/logger/adapter/gorm"
	"github.com/nosytlabs/nosytlabs-site/internal/pricefeed"
	"github.com/nosytlabs/nosytlabs-site/internal/stream"
	"github.com/nosytlabs/nosytlabs-site/internal/web"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/sitemap"
	"github.com/nosytlabs/nosytlabs-site/internal/web/session"
)

// ErrNilConfig is returned by New without a configuration.
var ErrNilConfig = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	deps       *handler.Deps
	storage    *memory.Storage
	webService *web.Service
}

// New opens the database, seeds the admin account and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	db, err := openDB(cfg.DB)
	if err != nil {
		return nil, err
	}

	if err = seed(cfg, db); err != nil {
		return nil, err
	}

	// sessions, rate limits and price quotes share one in-memory store
	storage := memory.New()
	session.Init(storage)

	lib, err := content.NewLibrary(contentSource(cfg.Content), content.DefaultPosts())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load content")
	}

	schedule, err := stream.NewSchedule(cfg.Stream)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stream schedule")
	}

	prices, err := pricefeed.New(cfg.PriceFeed, storage)
	if err != nil {
		return nil, err
	}

	deps := &handler.Deps{
		DB:      db,
		Library: lib,
		Prices:  prices,
		Stream:  schedule,
		Cache:   storage,
	}

	webService, err := web.New(cfg, deps)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create web service")
	}

	return &Daemon{
		cfg:        cfg,
		deps:       deps,
		storage:    storage,
		webService: webService,
	}, nil
}

// Start serves the site until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// in dev mode, reload posts from the content dir on change
	if d.cfg.DevMode && d.cfg.Content.Dir != "" {
		if _, err := content.Watch(ctx, d.cfg.Content.Dir, d.cfg.Content.WatchDebounce, d.deps.Library.Reload); err != nil {
			return err
		}

		log.Info().Str("dir", d.cfg.Content.Dir).Msg("watching content")
	}

	go d.webService.WaitShutdown()

	addr := fmt.Sprintf(":%d", d.cfg.Webserver.Port)
	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("starting web service")

	return d.webService.Start(addr)
}

// Export writes the public pages as static files below out.
func (d *Daemon) Export(ctx context.Context, out string, concurrency int) (export.Result, error) {
	e := export.Exporter{
		App:         d.webService.App,
		BaseURL:     d.cfg.Webserver.URL,
		Pages:       sitemap.Pages(d.deps.Library),
		Static:      web.StaticFS(),
		Concurrency: concurrency,
	}

	return e.Run(ctx, out)
}

// Close releases the storage and the database.
func (d *Daemon) Close() error {
	if err := d.storage.Close(); err != nil {
		return err //nolint:wrapcheck
	}

	sqlDB, err := d.deps.DB.DB()
	if err != nil {
		return err //nolint:wrapcheck
	}

	return sqlDB.Close() //nolint:wrapcheck
}

func openDB(cfg config.DB) (*gorm.DB, error) {
	dialector, err := dsn.Dialector(cfg)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlog.New(log.Logger, cfg.SlowQuery),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect %s database", cfg.Driver)
	}

	if err = db.AutoMigrate(
		&models.User{},
		&models.Setting{},
		&models.ContactMessage{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return db, nil
}

// contentSource is the on-disk content dir, or the embedded posts if unset.
func contentSource(cfg config.Content) fs.FS {
	if cfg.Dir == "" {
		return content.EmbeddedSource()
	}

	return os.DirFS(cfg.Dir)
}
