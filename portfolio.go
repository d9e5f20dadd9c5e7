// Package portfolio is a single-page personal portfolio built with Go, Echo
// and templ. It serves the portfolio REST API and renders the page from the
// data the loader gathers from that API and the optional override files.
package portfolio

import (
	"context"
	"io/fs"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/portfolio/content"
	"github.com/eringen/portfolio/loader"
	"github.com/eringen/portfolio/probe"
)

// App is the central portfolio application. It wires together the catalog
// the API serves, the loader the page reads through, handlers and middleware.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Catalog *content.Catalog
	Loader  *loader.Loader

	fetcher      loader.Fetcher
	files        probe.DirChecker
	customRoutes []func(*App)
	staticDir    string
	setupOnce    sync.Once
}

// New creates a new portfolio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.Catalog == nil {
		a.Catalog = content.Default()
	}
	if a.fetcher == nil {
		a.fetcher = loader.HTTPFetcher{
			Client:  &http.Client{Timeout: 10 * time.Second},
			BaseURL: a.Config.LoaderBaseURL,
		}
	}
	a.Loader = loader.New(a.fetcher,
		loader.WithAPIPrefix(a.Config.APIPrefix),
		loader.WithDefaultPhoto(a.Config.Photo),
	)
	a.files = probe.DirChecker{Root: a.staticDir, Prefix: "/public"}
	a.Echo.HideBanner = true

	return a
}

// Handler returns the fully configured HTTP handler. Middleware and routes
// are installed on first use.
func (a *App) Handler() http.Handler {
	a.setupOnce.Do(a.setup)
	return a.Echo
}

func (a *App) setup() {
	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
}

// Start installs middleware and routes and starts the server.
func (a *App) Start() error {
	a.Handler()
	a.Echo.Logger.Infof("portfolio: listening on %s (data from %s)", a.Config.Addr, a.Config.LoaderBaseURL)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded site assets are served under /public/ ahead of the user's
	// static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/app.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.HEAD("/public*", a.handleHeadFile)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET(loader.ResumeOverridePath, a.handleOverride)
	e.GET(loader.ProjectsOverridePath, a.handleOverride)
	e.GET(loader.SkillsOverridePath, a.handleOverride)
	e.GET("/media/:slot", a.handleMedia)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.POST("/contact/", a.handleContactForm)

	a.registerAPI(e.Group(a.Config.APIPrefix))
}

// Close stops the server immediately.
func (a *App) Close() error {
	return a.Echo.Close()
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("portfolio: required environment variable %s is not set", key)
	}
	return v
}
