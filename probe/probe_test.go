package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

type fakeChecker map[string]bool

func (f fakeChecker) Exists(_ context.Context, p string) bool { return f[p] }

func TestFirstExistingOrder(t *testing.T) {
	tests := []struct {
		name    string
		present fakeChecker
		want    string
	}{
		{"primary", fakeChecker{"/a.png": true, "/b.png": true}, "/a.png"},
		{"secondary", fakeChecker{"/b.png": true}, "/b.png"},
		{"fallback", fakeChecker{}, "/photo.png"},
	}
	for _, tt := range tests {
		got := FirstExisting(context.Background(), tt.present, []string{"/a.png", "/b.png"}, "/photo.png")
		if got != tt.want {
			t.Errorf("%s: FirstExisting = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFirstExistingEmptyFallback(t *testing.T) {
	got := FirstExisting(context.Background(), fakeChecker{}, nil, "")
	if got != "" {
		t.Errorf("FirstExisting = %q, want empty", got)
	}
}

func TestDirChecker(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "resume.pdf"), []byte("%PDF"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(root, "docs"), 0o755); err != nil {
		t.Fatal(err)
	}
	d := DirChecker{Root: root, Prefix: "/public"}
	ctx := context.Background()

	if !d.Exists(ctx, "/public/resume.pdf") {
		t.Error("expected /public/resume.pdf to exist")
	}
	if d.Exists(ctx, "/public/resume.docx") {
		t.Error("expected /public/resume.docx to be absent")
	}
	if d.Exists(ctx, "/public/docs") {
		t.Error("directories should not count as present")
	}
	if d.Exists(ctx, "/other/resume.pdf") {
		t.Error("paths outside the prefix should be absent")
	}
	if d.Exists(ctx, "/public/../../etc/passwd") {
		t.Error("paths escaping the root should be absent")
	}
}

func TestHTTPChecker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method = %s, want HEAD", r.Method)
		}
		if r.URL.Path == "/present.png" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := HTTPChecker{Client: srv.Client(), BaseURL: srv.URL + "/"}
	got := FirstExisting(context.Background(), c, []string{"/missing.png", "/present.png"}, "/default.png")
	if got != "/present.png" {
		t.Errorf("FirstExisting = %q, want /present.png", got)
	}
}

func TestHTTPCheckerUnreachable(t *testing.T) {
	c := HTTPChecker{BaseURL: "http://127.0.0.1:1"}
	if c.Exists(context.Background(), "/x.png") {
		t.Error("unreachable host should be treated as absent")
	}
}
