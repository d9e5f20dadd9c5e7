package portfolio

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eringen/portfolio/loader"
)

// appFetcher serves loader requests from the app itself, in process.
type appFetcher struct {
	app *App
}

func (f *appFetcher) Fetch(ctx context.Context, r loader.Request) (loader.Response, error) {
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	req := httptest.NewRequest(r.Method, r.Path, body).WithContext(ctx)
	for k, v := range r.Header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	f.app.Handler().ServeHTTP(rec, req)
	return loader.Response{Status: rec.Code, Body: rec.Body.Bytes()}, nil
}

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	f := &appFetcher{}
	cfg := SiteConfig{
		Name:          "Test Portfolio",
		URL:           "https://example.com",
		SessionSecret: "0123456789abcdef0123456789abcdef",
		LogLevel:      "off",
	}
	a := New(cfg, append([]Option{WithStaticDir(t.TempDir()), WithFetcher(f)}, opts...)...)
	f.app = a
	return a
}

func serve(a *App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	return rec
}

func get(a *App, target string) *httptest.ResponseRecorder {
	return serve(a, httptest.NewRequest(http.MethodGet, target, nil))
}
