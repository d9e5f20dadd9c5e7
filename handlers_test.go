package portfolio

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/portfolio/loader"
)

func writeFile(t *testing.T, a *App, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(a.staticDir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestHomeRendersAPIData(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{"Yash Shrivastav", "E-Commerce Platform", "Task Management App", "Senior Full-Stack Developer", "Tailwind CSS"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(body, "Weather Dashboard") {
		t.Error("project list should be truncated to two entries")
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
}

func TestHomePrefersOverrides(t *testing.T) {
	a := newTestApp(t)
	writeFile(t, a, "resume.json", `{"name":"Override Person","title":"Engineer","summary":"Hi",
		"skills":{"frontend":["React JS"],"backend":[],"databases":[],"tools":[]},
		"experience":[],"education":[],
		"projects":[{"title":"One"},{"title":"Two"},{"title":"Three"}]}`)

	rec := get(a, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Override Person", "React JS", "90%", ">One<", ">Two<"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(body, ">Three<") || strings.Contains(body, "E-Commerce Platform") {
		t.Error("expected only the first two résumé projects")
	}
}

type failingFetcher struct{}

func (failingFetcher) Fetch(context.Context, loader.Request) (loader.Response, error) {
	return loader.Response{}, errors.New("connection refused")
}

func TestHomeLoadError(t *testing.T) {
	a := New(SiteConfig{LogLevel: "off"}, WithFetcher(failingFetcher{}), WithStaticDir(t.TempDir()))
	rec := get(a, "/")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error loading portfolio") || !strings.Contains(rec.Body.String(), "Retry") {
		t.Errorf("expected the load error page, got %s", rec.Body.String())
	}
}

// dropFetcher answers 404 for one path and passes everything else through.
type dropFetcher struct {
	next loader.Fetcher
	drop string
}

func (f dropFetcher) Fetch(ctx context.Context, r loader.Request) (loader.Response, error) {
	path, _, _ := strings.Cut(r.Path, "?")
	if path == f.drop {
		return loader.Response{Status: http.StatusNotFound, Body: []byte(`{"error":"Not Found"}`)}, nil
	}
	return f.next.Fetch(ctx, r)
}

func TestHomeWithoutResumeShowsEmptyState(t *testing.T) {
	f := &appFetcher{}
	a := New(SiteConfig{LogLevel: "off", SessionSecret: "0123456789abcdef0123456789abcdef"},
		WithStaticDir(t.TempDir()),
		WithFetcher(dropFetcher{next: f, drop: "/api/portfolio/resume-data"}),
	)
	f.app = a

	rec := get(a, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `data-empty="resume"`) {
		t.Error("expected the empty résumé placeholder")
	}
	if strings.Contains(body, `id="resume-content"`) {
		t.Error("did not expect the résumé preview")
	}
	if !strings.Contains(body, "Yash Shrivastav") {
		t.Error("expected the API profile")
	}
}

func TestOverrideFiles(t *testing.T) {
	a := newTestApp(t)
	if rec := get(a, "/projects.json"); rec.Code != http.StatusNotFound {
		t.Errorf("missing override: status = %d, want 404", rec.Code)
	}
	writeFile(t, a, "projects.json", `[]`)
	rec := get(a, "/projects.json")
	if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("override: status = %d body = %q", rec.Code, rec.Body.String())
	}
}

func cookieHeader(cookies []*http.Cookie) string {
	parts := make([]string, 0, len(cookies))
	for _, c := range cookies {
		parts = append(parts, c.Name+"="+c.Value)
	}
	return strings.Join(parts, "; ")
}

func submitForm(t *testing.T, a *App, form url.Values) (*httptest.ResponseRecorder, []*http.Cookie) {
	t.Helper()
	first := get(a, "/")
	var csrf *http.Cookie
	for _, c := range first.Result().Cookies() {
		if c.Name == "_csrf" {
			csrf = c
		}
	}
	if csrf == nil {
		t.Fatal("no CSRF cookie on the home page")
	}
	form.Set("_csrf", csrf.Value)
	req := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Cookie", cookieHeader([]*http.Cookie{csrf}))
	rec := serve(a, req)
	return rec, append(rec.Result().Cookies(), csrf)
}

func TestContactFormFlashesSuccess(t *testing.T) {
	a := newTestApp(t)
	rec, cookies := submitForm(t, a, url.Values{"name": {"A"}, "email": {"a@b.co"}, "subject": {"S"}, "message": {"M"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303 (%s)", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/#contact" {
		t.Errorf("Location = %q, want /#contact", loc)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", cookieHeader(cookies))
	page := serve(a, req).Body.String()
	if !strings.Contains(page, "flash-success") || !strings.Contains(page, "Message sent successfully!") {
		t.Error("expected a success flash after submitting")
	}
}

func TestContactFormFlashesRejection(t *testing.T) {
	a := newTestApp(t)
	rec, cookies := submitForm(t, a, url.Values{"name": {"A"}, "email": {"not-an-email"}, "subject": {"S"}, "message": {"M"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", cookieHeader(cookies))
	page := serve(a, req).Body.String()
	if !strings.Contains(page, "flash-error") || !strings.Contains(page, "Invalid email format") {
		t.Error("expected the API's rejection in an error flash")
	}
	for _, want := range []string{`value="not-an-email"`, `value="A"`, `value="S"`, `>M</textarea>`} {
		if !strings.Contains(page, want) {
			t.Errorf("expected the form to keep %s", want)
		}
	}
}

func TestContactFormSuccessClearsForm(t *testing.T) {
	a := newTestApp(t)
	_, cookies := submitForm(t, a, url.Values{"name": {"Ada"}, "email": {"a@b.co"}, "subject": {"S"}, "message": {"Hello there"}})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", cookieHeader(cookies))
	page := serve(a, req).Body.String()
	if strings.Contains(page, `value="Ada"`) || strings.Contains(page, "Hello there") {
		t.Error("a delivered message should not be refilled")
	}
}

func TestContactFormRequiresCSRF(t *testing.T) {
	a := newTestApp(t)
	form := url.Values{"name": {"A"}, "email": {"a@b.co"}, "subject": {"S"}, "message": {"M"}}
	req := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if rec := serve(a, req); rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestNotFoundPage(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/nothing-here/")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "could not be found") {
		t.Error("expected the HTML not found page")
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/nothing-here")
	if rec.Code != http.StatusMovedPermanently {
		t.Errorf("status = %d, want 301", rec.Code)
	}
}

func TestRobots(t *testing.T) {
	a := newTestApp(t)
	body := get(a, "/robots.txt").Body.String()
	if !strings.Contains(body, "Sitemap: https://example.com/sitemap.xml") {
		t.Errorf("robots.txt = %q", body)
	}
	if !strings.Contains(body, "Disallow: /api/portfolio/") {
		t.Errorf("robots.txt = %q", body)
	}
}

func TestFeed(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/feed.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<title>Building Scalable React Applications</title>",
		"<link>https://blog.example.com/scalable-react</link>",
		"<pubDate>Mon, 15 Jan 2024 00:00:00 +0000</pubDate>",
		"<category>React</category>",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("feed missing %q", want)
		}
	}
}

func TestSitemap(t *testing.T) {
	a := newTestApp(t)
	body := get(a, "/sitemap.xml").Body.String()
	for _, want := range []string{"<loc>https://example.com/</loc>", "<loc>https://example.com/#resume</loc>"} {
		if !strings.Contains(body, want) {
			t.Errorf("sitemap missing %q", want)
		}
	}
}

func TestSitemapListsResumeDocuments(t *testing.T) {
	a := newTestApp(t)
	writeFile(t, a, "yash-shrivastav.pdf", "%PDF-1.4")
	mod := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	if err := os.Chtimes(filepath.Join(a.staticDir, "yash-shrivastav.pdf"), mod, mod); err != nil {
		t.Fatal(err)
	}

	body := get(a, "/sitemap.xml").Body.String()
	want := "<url><loc>https://example.com/public/yash-shrivastav.pdf</loc><lastmod>2026-03-14</lastmod></url>"
	if !strings.Contains(body, want) {
		t.Errorf("sitemap missing %q in %s", want, body)
	}
	if strings.Contains(body, ".docx") {
		t.Error("absent document listed")
	}
}

func TestRenderFailureShowsErrorPage(t *testing.T) {
	broken := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		io.WriteString(w, "<p>half")
		return errors.New("boom")
	})
	a := newTestApp(t, WithCustomRoutes(func(a *App) {
		a.Echo.GET("/broken/", func(c echo.Context) error { return Render(c, broken) })
	}))

	rec := get(a, "/broken/")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "half") {
		t.Error("partial output was sent")
	}
	if !strings.Contains(body, "Something went wrong") {
		t.Error("expected the error page")
	}
}

func TestEmbeddedAssets(t *testing.T) {
	a := newTestApp(t)
	for _, path := range []string{"/public/app.js", "/public/site.css"} {
		if rec := get(a, path); rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", path, rec.Code)
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_NAME", "Env Site")
	t.Setenv("ADDR", "")
	t.Setenv("PORT", "8080")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("LOADER_BASE_URL", "")
	t.Setenv("API_PREFIX", "")
	t.Setenv("PHOTO", "/public/me.jpg")
	cfg := ConfigFromEnv()
	cfg.setDefaults()
	if cfg.Name != "Env Site" || cfg.Addr != ":8080" || !cfg.CookieSecure {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.LoaderBaseURL != "http://127.0.0.1:8080" {
		t.Errorf("LoaderBaseURL = %q", cfg.LoaderBaseURL)
	}
	if cfg.APIPrefix != "/api/portfolio" {
		t.Errorf("APIPrefix = %q", cfg.APIPrefix)
	}
	if cfg.Photo != "/public/me.jpg" {
		t.Errorf("Photo = %q", cfg.Photo)
	}
}
