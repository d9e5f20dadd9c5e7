package portfolio

import (
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/eringen/portfolio/content"
	"github.com/eringen/portfolio/loader"
)

// SiteConfig holds all configuration for a portfolio site.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	Addr      string // Listen address (default ":3000")
	APIPrefix string // API mount point (default "/api/portfolio")

	// LoaderBaseURL is where the home page fetches the API and override
	// files from (default the loopback address of Addr).
	LoaderBaseURL string

	// Photo is the profile photo used when the profile comes from an
	// override résumé (default the built-in profile's photo).
	Photo string

	// BannerImages are the local banner candidates, most preferred first.
	// The contact section tries them in reverse order.
	BannerImages []string
	// ResumeFile is the public path of the downloadable résumé without its
	// extension. ".pdf" is offered, then ".docx" or ".doc".
	ResumeFile string

	SessionSecret string // Cookie signing secret (random per process when empty)
	CookieSecure  bool   // Set true for HTTPS
	LogLevel      string // debug, info, warn, error or off (default "info")
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.APIPrefix == "" {
		c.APIPrefix = "/api/portfolio"
	}
	c.APIPrefix = "/" + strings.Trim(c.APIPrefix, "/")
	if c.LoaderBaseURL == "" {
		c.LoaderBaseURL = loopbackURL(c.Addr)
	}
	if c.Photo == "" {
		c.Photo = content.Default().Profile().Photo
	}
	if c.BannerImages == nil {
		c.BannerImages = []string{"/public/yash-main-Image.png", "/public/yash-main-Image2.png"}
	}
	if c.ResumeFile == "" {
		c.ResumeFile = "/public/yash-shrivastav"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// loopbackURL turns a listen address such as ":3000" or "0.0.0.0:3000" into
// a URL the server can reach itself on.
func loopbackURL(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil || port == "" {
		port = "3000"
	}
	return "http://127.0.0.1:" + port
}

// ConfigFromEnv builds a SiteConfig from environment variables. Unset
// variables are left empty so setDefaults can fill them.
func ConfigFromEnv() SiteConfig {
	addr := os.Getenv("ADDR")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		}
	}
	secure, _ := strconv.ParseBool(os.Getenv("COOKIE_SECURE"))
	return SiteConfig{
		Name:          os.Getenv("SITE_NAME"),
		URL:           os.Getenv("SITE_URL"),
		Description:   os.Getenv("SITE_DESCRIPTION"),
		Author:        os.Getenv("SITE_AUTHOR"),
		Addr:          addr,
		APIPrefix:     os.Getenv("API_PREFIX"),
		LoaderBaseURL: os.Getenv("LOADER_BASE_URL"),
		Photo:         os.Getenv("PHOTO"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		CookieSecure:  secure,
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets and override
// files (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithCatalog replaces the built-in data the API serves.
func WithCatalog(c *content.Catalog) Option {
	return func(a *App) {
		a.Catalog = c
	}
}

// WithFetcher replaces the HTTP fetcher the home page loads data through.
func WithFetcher(f loader.Fetcher) Option {
	return func(a *App) {
		a.fetcher = f
	}
}
