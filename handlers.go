package portfolio

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/portfolio/content"
	"github.com/eringen/portfolio/loader"
	"github.com/eringen/portfolio/probe"
	"github.com/eringen/portfolio/views"
)

func (a *App) site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
		Year:        time.Now().Year(),
	}
}

func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	p, err := a.Loader.Load(ctx)
	if err != nil {
		c.Logger().Errorf("home: %v", err)
		return RenderStatus(c, http.StatusServiceUnavailable, views.LoadError(a.site()))
	}

	data := views.PageData{
		Site:     a.site(),
		Profile:  p.Profile,
		Skills:   p.Skills,
		Projects: p.Projects,
		Resume:   p.Resume,
		Media:    a.resolveMedia(c),
		CSRF:     CsrfToken(c),
	}
	data.Flash = popFlash(c)
	return Render(c, views.Page(data))
}

// resolveMedia looks up the optional images and résumé documents in the
// static dir.
func (a *App) resolveMedia(c echo.Context) views.Media {
	ctx := c.Request().Context()
	var m views.Media
	if _, ok := a.mediaSource(ctx, "banner"); ok {
		m.Banner = "/media/banner.jpg"
	}
	if _, ok := a.mediaSource(ctx, "contact"); ok {
		m.Contact = "/media/contact.jpg"
	}
	m.ResumePDF = probe.FirstExisting(ctx, a.files, []string{a.Config.ResumeFile + ".pdf"}, "")
	m.ResumeDoc = probe.FirstExisting(ctx, a.files, []string{a.Config.ResumeFile + ".docx", a.Config.ResumeFile + ".doc"}, "")
	return m
}

// handleContactForm is the no-script path for the contact form. It submits
// through the loader like any other API client and reports back with a flash.
func (a *App) handleContactForm(c echo.Context) error {
	var msg content.ContactMessage
	if err := c.Bind(&msg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	err := a.Loader.SubmitContact(c.Request().Context(), msg)
	var rejected *loader.RejectedError
	switch {
	case err == nil:
		err = addFlash(c, views.Flash{Success: true, Message: contactSuccessMessage + " I'll get back to you soon."})
	case errors.As(err, &rejected):
		err = addFlash(c, views.Flash{Message: rejected.Message, Form: msg})
	default:
		c.Logger().Errorf("contact form: %v", err)
		err = addFlash(c, views.Flash{Message: "Failed to send message", Form: msg})
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/#contact")
}

// handleOverride serves an optional override file from the static dir root.
func (a *App) handleOverride(c echo.Context) error {
	name := strings.TrimPrefix(c.Request().URL.Path, "/")
	return c.File(filepath.Join(a.staticDir, name))
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c)
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Catalog.Blogs())
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(filepath.Join(a.staticDir, "favicon.svg"))
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\nDisallow: " + a.Config.APIPrefix + "/\n\nSitemap: " + BuildURL(a.Config.URL) + "sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}

	if a.isAPI(c.Request().URL.Path) {
		msg := http.StatusText(code)
		if ok && code < 500 {
			if m, isStr := he.Message.(string); isStr {
				msg = m
			}
		}
		_ = jsonError(c, code, msg)
		return
	}

	switch {
	case code == http.StatusNotFound:
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.site()))
	case code >= 500:
		_ = RenderStatus(c, code, views.ServerError(a.site()))
	default:
		a.Echo.DefaultHTTPErrorHandler(err, c)
	}
}
