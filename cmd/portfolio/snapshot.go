package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/eringen/portfolio"
	"github.com/eringen/portfolio/loader"
	"github.com/eringen/portfolio/probe"
	"github.com/eringen/portfolio/views"
)

// snapshot is what runSnapshot prints: the merged data plus the media the
// page would show.
type snapshot struct {
	*loader.Portfolio
	Media views.Media `json:"media"`
}

// runSnapshot loads a deployed portfolio the same way its home page does and
// writes the result to w.
func runSnapshot(baseURL string, w io.Writer) error {
	baseURL = strings.TrimRight(baseURL, "/")
	cfg := portfolio.ConfigFromEnv()
	cfg.LoaderBaseURL = baseURL
	app := portfolio.New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p, err := app.Loader.Load(ctx)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 10 * time.Second}
	checker := probe.HTTPChecker{Client: client, BaseURL: baseURL}
	banners := app.Config.BannerImages
	base := app.Config.ResumeFile
	out := snapshot{
		Portfolio: p,
		Media: views.Media{
			Banner:    probe.FirstExisting(ctx, checker, portfolio.MediaCandidates(banners, "banner"), p.Profile.Photo),
			Contact:   probe.FirstExisting(ctx, checker, portfolio.MediaCandidates(banners, "contact"), ""),
			ResumePDF: probe.FirstExisting(ctx, checker, []string{base + ".pdf"}, ""),
			ResumeDoc: probe.FirstExisting(ctx, checker, []string{base + ".docx", base + ".doc"}, ""),
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
