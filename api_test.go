package portfolio

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/eringen/portfolio/content"
)

func decode(t *testing.T, body []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode %q: %v", body, err)
	}
}

func TestAPIReadRoutes(t *testing.T) {
	a := newTestApp(t)
	cat := content.Default()

	tests := []struct {
		path string
		want any
	}{
		{"/api/portfolio/profile", cat.Profile()},
		{"/api/portfolio/skills", cat.Skills()},
		{"/api/portfolio/projects", cat.Projects()},
		{"/api/portfolio/blogs", cat.Blogs()},
		{"/api/portfolio/resume-data", cat.Resume()},
	}
	for _, tt := range tests {
		rec := get(a, tt.path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", tt.path, rec.Code)
			continue
		}
		want, _ := json.Marshal(tt.want)
		if got := strings.TrimSpace(rec.Body.String()); got != string(want) {
			t.Errorf("%s: body = %s, want %s", tt.path, got, want)
		}
	}
}

func TestAPIProjectByID(t *testing.T) {
	a := newTestApp(t)
	for _, p := range content.Default().Projects() {
		rec := get(a, "/api/portfolio/projects/"+p.ID)
		if rec.Code != http.StatusOK {
			t.Fatalf("project %s: status = %d", p.ID, rec.Code)
		}
		var got content.Project
		decode(t, rec.Body.Bytes(), &got)
		if got.ID != p.ID || got.Title != p.Title {
			t.Errorf("project %s: got %+v", p.ID, got)
		}
	}

	rec := get(a, "/api/portfolio/projects/does-not-exist")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown project: status = %d, want 404", rec.Code)
	}
	var body map[string]string
	decode(t, rec.Body.Bytes(), &body)
	if body["error"] != "Project not found" {
		t.Errorf("error = %q, want %q", body["error"], "Project not found")
	}
}

func TestAPIResumeLatexAndHealth(t *testing.T) {
	a := newTestApp(t)

	var latex map[string]string
	decode(t, get(a, "/api/portfolio/resume").Body.Bytes(), &latex)
	if !strings.HasPrefix(latex["latex"], `\documentclass`) {
		t.Errorf("latex = %.40q", latex["latex"])
	}

	var health map[string]string
	decode(t, get(a, "/api/portfolio/health").Body.Bytes(), &health)
	if health["status"] != "ok" {
		t.Errorf("health = %v", health)
	}
}

func TestAPIUnknownRouteIsJSON(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/api/portfolio/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q, want JSON", ct)
	}
	var body map[string]string
	decode(t, rec.Body.Bytes(), &body)
	if body["error"] == "" {
		t.Error("expected an error message")
	}
}

func TestAPIIsNotCached(t *testing.T) {
	a := newTestApp(t)
	rec := get(a, "/api/portfolio/profile")
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("expected a request id")
	}
}

func TestAPIWithCustomPrefixAndCatalog(t *testing.T) {
	cat := content.NewCatalog(content.Profile{Name: "Custom"}, nil, nil, nil, content.ResumeData{}, "")
	f := &appFetcher{}
	a := New(SiteConfig{APIPrefix: "v1/", LogLevel: "off"}, WithCatalog(cat), WithFetcher(f), WithStaticDir(t.TempDir()))
	f.app = a

	var p content.Profile
	decode(t, get(a, "/v1/profile").Body.Bytes(), &p)
	if p.Name != "Custom" {
		t.Errorf("Name = %q, want Custom", p.Name)
	}
}

func postContact(a *App, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	return serve(a, req)
}

func TestAPIContact(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantError string
	}{
		{"valid", `{"name":"A","email":"a@b.co","subject":"S","message":"M"}`, http.StatusOK, ""},
		{"missing name", `{"email":"a@b.co","subject":"S","message":"M"}`, http.StatusBadRequest, "All fields are required"},
		{"empty message", `{"name":"A","email":"a@b.co","subject":"S","message":""}`, http.StatusBadRequest, "All fields are required"},
		{"bad email", `{"name":"A","email":"not-an-email","subject":"S","message":"M"}`, http.StatusBadRequest, "Invalid email format"},
		{"malformed", `{"name":`, http.StatusBadRequest, "Invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postContact(a, "application/json", tt.body)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantCode, rec.Body.String())
			}
			var body map[string]any
			decode(t, rec.Body.Bytes(), &body)
			if tt.wantError != "" {
				if body["error"] != tt.wantError {
					t.Errorf("error = %v, want %q", body["error"], tt.wantError)
				}
				return
			}
			if body["success"] != true || body["message"] != "Message sent successfully!" {
				t.Errorf("body = %v", body)
			}
		})
	}
}

func TestAPIContactForm(t *testing.T) {
	a := newTestApp(t)
	form := url.Values{"name": {"A"}, "email": {"a@b.co"}, "subject": {"S"}, "message": {"M"}}
	rec := postContact(a, "application/x-www-form-urlencoded", form.Encode())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
}
