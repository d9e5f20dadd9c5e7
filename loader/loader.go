// Package loader gathers the portfolio from the API and the optional static
// override files, and merges them into one view-model.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/eringen/portfolio/content"
)

// ErrLoad is the single failure the page reports. Callers should not try to
// tell network failures from malformed payloads.
var ErrLoad = errors.New("failed to load portfolio")

// ErrSend is returned by SubmitContact when the message could not be delivered
// to the API and the API gave no reason.
var ErrSend = errors.New("failed to send message")

// RejectedError carries the reason the API gave for refusing a message.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}

// maxBodySize bounds every response body the loader reads.
const maxBodySize = 2 << 20

// Override file locations, relative to the site root.
const (
	ProjectsOverridePath = "/projects.json"
	ResumeOverridePath   = "/resume.json"
	SkillsOverridePath   = "/skills.json"
)

// Request is a single call made through a Fetcher.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// Response is what a Fetcher returns for a completed call.
type Response struct {
	Status int
	Body   []byte
}

// Fetcher performs requests against the site. A non-nil error means the call
// never completed; HTTP error statuses are reported through Response.Status.
type Fetcher interface {
	Fetch(ctx context.Context, r Request) (Response, error)
}

// HTTPFetcher is a Fetcher backed by net/http.
type HTTPFetcher struct {
	Client  *http.Client
	BaseURL string
}

func (f HTTPFetcher) Fetch(ctx context.Context, r Request) (Response, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, strings.TrimRight(f.BaseURL, "/")+r.Path, body)
	if err != nil {
		return Response{}, err
	}
	for k, vals := range r.Header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	resp, err := client.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Response{}, fmt.Errorf("read %s: %w", r.Path, err)
	}
	return Response{Status: resp.StatusCode, Body: data}, nil
}

// Loader fetches and reconciles the portfolio.
type Loader struct {
	fetcher   Fetcher
	apiPrefix string
	photo     string
	now       func() time.Time
}

// Option configures a Loader.
type Option func(*Loader)

// WithAPIPrefix sets the path the API is mounted under (default "/api/portfolio").
func WithAPIPrefix(prefix string) Option {
	return func(l *Loader) {
		l.apiPrefix = "/" + strings.Trim(prefix, "/")
	}
}

// WithDefaultPhoto sets the photo used for a profile built from the override résumé.
func WithDefaultPhoto(photo string) Option {
	return func(l *Loader) {
		l.photo = photo
	}
}

// WithClock replaces time.Now for the cache-busting parameter.
func WithClock(now func() time.Time) Option {
	return func(l *Loader) {
		l.now = now
	}
}

// New creates a Loader that talks to the site through f.
func New(f Fetcher, opts ...Option) *Loader {
	l := &Loader{
		fetcher:   f,
		apiPrefix: "/api/portfolio",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load requests the four API routes and the three override files
// concurrently, waits for all of them, and reconciles the result. Any failure
// is reported as ErrLoad and no partial portfolio is returned.
func (l *Loader) Load(ctx context.Context) (*Portfolio, error) {
	bust := strconv.FormatInt(l.now().UnixMilli(), 10)

	var (
		src      Sources
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	api := func(dst *json.RawMessage, route string) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body, err := l.getAPI(ctx, route, bust)
			if err != nil {
				setErr(fmt.Errorf("%s: %w", route, err))
				return
			}
			*dst = body
		}()
	}
	override := func(dst *json.RawMessage, path string) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			*dst = l.getOverride(ctx, path)
		}()
	}

	api(&src.Profile, "profile")
	api(&src.Skills, "skills")
	api(&src.Projects, "projects")
	api(&src.Resume, "resume-data")
	override(&src.ProjectsOverride, ProjectsOverridePath)
	override(&src.ResumeOverride, ResumeOverridePath)
	override(&src.SkillsOverride, SkillsOverridePath)
	wg.Wait()

	if firstErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, firstErr)
	}
	return Reconcile(src, l.photo)
}

// getAPI fetches one API route with cache busting. Error statuses yield a nil
// body; only an incomplete call is an error.
func (l *Loader) getAPI(ctx context.Context, route, bust string) (json.RawMessage, error) {
	resp, err := l.fetcher.Fetch(ctx, Request{
		Method: http.MethodGet,
		Path:   l.apiPrefix + "/" + route + "?t=" + bust,
		Header: http.Header{
			"Cache-Control": {"no-cache"},
			"Pragma":        {"no-cache"},
		},
	})
	if err != nil {
		return nil, err
	}
	if !ok(resp.Status) {
		return nil, nil
	}
	return resp.Body, nil
}

// getOverride fetches an optional override file; every failure means absent.
func (l *Loader) getOverride(ctx context.Context, path string) json.RawMessage {
	resp, err := l.fetcher.Fetch(ctx, Request{Method: http.MethodGet, Path: path})
	if err != nil || !ok(resp.Status) || !json.Valid(resp.Body) {
		return nil
	}
	return resp.Body
}

type contactReply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// SubmitContact posts msg to the contact endpoint once. A refusal by the API
// is returned as *RejectedError; anything else that goes wrong is ErrSend.
func (l *Loader) SubmitContact(ctx context.Context, msg content.ContactMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}
	resp, err := l.fetcher.Fetch(ctx, Request{
		Method: http.MethodPost,
		Path:   l.apiPrefix + "/contact",
		Header: http.Header{"Content-Type": {"application/json"}},
		Body:   body,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}
	var reply contactReply
	if err := json.Unmarshal(resp.Body, &reply); err != nil {
		return fmt.Errorf("%w: status %d", ErrSend, resp.Status)
	}
	if reply.Success {
		return nil
	}
	if reply.Error != "" {
		return &RejectedError{Message: reply.Error}
	}
	return ErrSend
}

func ok(status int) bool {
	return status >= 200 && status < 300
}
