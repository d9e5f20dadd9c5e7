package portfolio

import (
	"encoding/gob"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/eringen/portfolio/content"
	"github.com/eringen/portfolio/views"
)

const sessionName = "portfolio_session"

// Flash keys for the contact form outcome.
const (
	flashSent   = "contact_sent"
	flashFailed = "contact_failed"
	flashForm   = "contact_form"
)

// maxFlashForm bounds the form bytes carried in the session cookie.
const maxFlashForm = 1024

func init() {
	gob.Register(content.ContactMessage{})
}

func (a *App) setupMiddleware() {
	e := a.Echo

	e.Logger.SetLevel(parseLogLevel(a.Config.LogLevel))

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)

	e.HTTPErrorHandler = a.httpErrorHandler

	e.Pre(middleware.NonWWWRedirect())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d (%s) id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))

	e.Use(middleware.Recover())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasPrefix(path, "/public/") || strings.HasPrefix(path, "/media/")
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; font-src 'self'; connect-src 'self' blob:; form-action 'self'",
		HSTSMaxAge:            31536000,
		HSTSExcludeSubdomains: false,
	}))

	e.Use(session.Middleware(a.newSessionStore()))

	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		ContextKey:  middleware.DefaultCSRFConfig.ContextKey,
		TokenLookup: "header:X-CSRF-Token,form:_csrf",
		CookieName:  "_csrf",
		CookiePath:  "/",
		CookieSameSite: func() http.SameSite {
			return http.SameSiteLaxMode
		}(),
		CookieSecure: a.Config.CookieSecure,
		Skipper: func(c echo.Context) bool {
			return a.isAPI(c.Request().URL.Path)
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return c.String(http.StatusForbidden, "Forbidden")
		},
	}))

	e.Use(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasPrefix(path, "/public") ||
				strings.HasPrefix(path, "/media/") ||
				a.isAPI(path) ||
				isFile(path)
		},
	}))

	e.Use(cacheControlMiddleware)
}

// isAPI reports whether path is served by the JSON API.
func (a *App) isAPI(path string) bool {
	return path == a.Config.APIPrefix || strings.HasPrefix(path, a.Config.APIPrefix+"/")
}

// isFile reports whether path names a single root-level file such as
// /sitemap.xml or /resume.json.
func isFile(path string) bool {
	return strings.Count(path, "/") == 1 && strings.Contains(path, ".")
}

func cacheControlMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		switch {
		case strings.HasPrefix(path, "/public/"):
			c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		case path == "/sitemap.xml" || path == "/feed.xml" || path == "/robots.txt":
			c.Response().Header().Set("Cache-Control", "public, max-age=86400")
		case strings.HasPrefix(path, "/media/"):
			c.Response().Header().Set("Cache-Control", "public, max-age=3600")
		default:
			// Pages carry CSRF tokens and flashes, and the API and
			// override files must always be read fresh.
			c.Response().Header().Set("Cache-Control", "no-store")
		}
		return next(c)
	}
}

func (a *App) newSessionStore() *sessions.CookieStore {
	secret := []byte(a.Config.SessionSecret)
	if len(secret) == 0 {
		a.Echo.Logger.Warn("portfolio: SESSION_SECRET not set, using a random key; flashes will not survive a restart")
		secret = securecookie.GenerateRandomKey(32)
	}
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 10,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}

// addFlash stores the contact outcome for the next page render. A rejected
// message keeps what the visitor typed unless it would overflow the cookie.
func addFlash(c echo.Context, f views.Flash) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	if f.Success {
		sess.AddFlash(f.Message, flashSent)
	} else {
		sess.AddFlash(f.Message, flashFailed)
		m := f.Form
		if len(m.Name)+len(m.Email)+len(m.Subject)+len(m.Message) <= maxFlashForm {
			sess.AddFlash(m, flashForm)
		}
	}
	return sess.Save(c.Request(), c.Response())
}

// popFlash returns and clears the pending contact flash, or nil.
func popFlash(c echo.Context) *views.Flash {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	sent := sess.Flashes(flashSent)
	failed := sess.Flashes(flashFailed)
	form := sess.Flashes(flashForm)
	if len(sent) == 0 && len(failed) == 0 {
		return nil
	}
	_ = sess.Save(c.Request(), c.Response())
	if len(failed) > 0 {
		f := &views.Flash{}
		f.Message, _ = failed[len(failed)-1].(string)
		if len(form) > 0 {
			f.Form, _ = form[len(form)-1].(content.ContactMessage)
		}
		return f
	}
	f := &views.Flash{Success: true}
	f.Message, _ = sent[len(sent)-1].(string)
	return f
}

// CsrfToken extracts the CSRF token from the Echo context.
func CsrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}

func parseLogLevel(s string) log.Lvl {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off", "none":
		return log.OFF
	default:
		return log.INFO
	}
}
