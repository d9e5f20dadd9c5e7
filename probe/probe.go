// Package probe resolves the first resource that exists out of an ordered
// list of candidates. Absence is an expected outcome and is never an error.
package probe

import (
	"context"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Checker reports whether the resource at a URL path exists.
type Checker interface {
	Exists(ctx context.Context, urlPath string) bool
}

// FirstExisting returns the first candidate c reports present, or fallback
// when none is.
func FirstExisting(ctx context.Context, c Checker, candidates []string, fallback string) string {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		if c.Exists(ctx, candidate) {
			return candidate
		}
	}
	return fallback
}

// HTTPChecker probes candidates with HEAD requests against BaseURL.
// Any 2xx status counts as present; transport errors count as absent.
type HTTPChecker struct {
	Client  *http.Client
	BaseURL string
}

func (h HTTPChecker) Exists(ctx context.Context, urlPath string) bool {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, strings.TrimRight(h.BaseURL, "/")+urlPath, nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// DirChecker maps URL paths under Prefix onto files below Root.
// Paths outside Prefix, directories, and anything escaping Root are absent.
type DirChecker struct {
	Root   string
	Prefix string
}

func (d DirChecker) Exists(_ context.Context, urlPath string) bool {
	p, ok := d.Path(urlPath)
	if !ok {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// Path returns the filesystem path urlPath maps to.
func (d DirChecker) Path(urlPath string) (string, bool) {
	prefix := "/" + strings.Trim(d.Prefix, "/")
	if prefix != "/" {
		if !strings.HasPrefix(urlPath, prefix+"/") {
			return "", false
		}
		urlPath = strings.TrimPrefix(urlPath, prefix)
	}
	clean := path.Clean("/" + urlPath)
	if clean == "/" {
		return "", false
	}
	return filepath.Join(d.Root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), true
}
