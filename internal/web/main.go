package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/nosytlabs/nosytlabs-site/internal/config"
	accesslog "github.com/nosytlabs/nosytlabs-site/internal/logger/adapter/fiber"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/about"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/admin/dashboard"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/admin/login"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/admin/logout"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/admin/settings"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/api"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/blog"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/contact"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/home"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/live"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/passiveincome"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/services"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/sitemap"
	"github.com/nosytlabs/nosytlabs-site/internal/web/handler/skills"
	authmiddleware "github.com/nosytlabs/nosytlabs-site/internal/web/middleware/auth"
	"github.com/nosytlabs/nosytlabs-site/internal/web/middleware/site"
)

const (
	// CheckAlivePath answers 503 while the server shuts down.
	CheckAlivePath = "/checkalive"
	// MetricsPath exposes the Prometheus metrics.
	MetricsPath = "/metrics"
	// StaticPath serves the css, js and images.
	StaticPath = "/static"

	localTemplateDir = "./internal/web/templates"
	localStaticDir   = "./internal/web/static"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// Alive reports whether /checkalive answers 200.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// WaitShutdown waits for SIGINT or SIGTERM and stops the server gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown flips /checkalive to 503 for ShutDownTime seconds, unless in dev
// mode, and stops fiber.
func (s *Service) Shutdown() {
	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

func newTemplateEngine(cfg *config.Config) *html.Engine {
	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New(localTemplateDir, ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	templateEngine.AddFuncMap(templateFuncs())

	return templateEngine
}

func staticFileSystem(cfg *config.Config) http.FileSystem {
	if cfg.DevMode {
		return http.Dir(localStaticDir)
	}

	return http.FS(StaticFS())
}

// cleanPath collapses duplicate slashes so //blog//post routes like /blog/post.
func cleanPath(c *fiber.Ctx) error {
	p := c.Path()
	if strings.Contains(p, "//") {
		cleaned := path.Clean(p)
		if strings.HasSuffix(p, "/") && cleaned != "/" {
			cleaned += "/"
		}

		c.Path(cleaned)
	}

	return c.Next()
}

// New creates the web service and registers every handler.
func New(cfg *config.Config, deps *handler.Deps) (*Service, error) {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if deps == nil || deps.DB == nil {
		return nil, handler.ErrNilDeps
	}

	service := &Service{
		cfg:          cfg,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize:    8192,
			AppName:           cfg.Title,
			CaseSensitive:     false,
			Prefork:           false,
			Immutable:         true,
			Views:             newTemplateEngine(cfg),
			PassLocalsToViews: true,
			ErrorHandler:      errorHandler,
		},
	)
	service.App = app

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
		SkipPrefixes:  []string{StaticPath + "/"},
	}))

	if cfg.Webserver.CookieEncryptionKey != "" {
		app.Use(encryptcookie.New(encryptcookie.Config{Key: cfg.Webserver.CookieEncryptionKey}))
	}

	if cfg.Webserver.CleanPath {
		app.Use(cleanPath)
	}

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// serve static files, embedded unless in dev mode
	app.Use(StaticPath,
		filesystem.New(
			filesystem.Config{
				Root:   staticFileSystem(cfg),
				Browse: cfg.Webserver.BrowseStatic,
				MaxAge: 3600, //nolint:mnd
			},
		),
	)

	app.Use(site.New(cfg, deps.DB))
	app.Use(handler.AdminPath, authmiddleware.Middleware)

	handlers := []handler.Service{
		&home.Handler,
		&about.Handler,
		&services.Handler,
		&blog.Handler,
		&passiveincome.Handler,
		&skills.Handler,
		&live.Handler,
		&contact.Handler,
		&api.Handler,
		&sitemap.Handler,
		&login.Handler,
		&logout.Handler,
		&dashboard.Handler,
		&settings.Handler,
	}

	for _, h := range handlers {
		if err := h.Init(app, cfg, deps); err != nil {
			return nil, err
		}
	}

	return service, nil
}
