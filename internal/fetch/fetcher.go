package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
)

// Default fetcher settings, shared with internal/config.
const (
	defaultTimeout      = 30 * time.Second
	defaultUserAgent    = "webwatch/1.0 (+https://github.com/sonodak/webwatch)"
	defaultMaxBodyBytes = 5 * 1024 * 1024 // 5MB

	// maxRedirects caps redirect chains so a misconfigured page cannot
	// bounce a fetch around indefinitely.
	maxRedirects = 5
)

// Result is the outcome of one successful HTTP fetch.
type Result struct {
	// URL is the fetched URL as requested.
	URL string

	// Content is the response body decoded to UTF-8.
	Content string

	// Title is the page title from the <title> tag, empty when the
	// content has none.
	Title string

	// StatusCode is the HTTP response status.
	StatusCode int

	// Duration is how long the request took.
	Duration time.Duration

	// FetchedAt is when the request was started.
	FetchedAt time.Time
}

// Fetcher performs HTTP GETs against monitored pages.
type Fetcher struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	logger       *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithTimeout sets the per-request timeout on the fetcher's client.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.client.Timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithMaxBodyBytes caps how many response body bytes are read.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) { f.maxBodyBytes = n }
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

// New creates a Fetcher with default settings.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: &http.Client{
			Timeout: defaultTimeout,
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("too many redirects (%d)", len(via))
				}
				return nil
			},
		},
		userAgent:    defaultUserAgent,
		maxBodyBytes: defaultMaxBodyBytes,
		logger:       slog.Default(),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Fetch GETs a URL and returns its content with the title extracted.
// A non-2xx response returns ErrUnexpectedStatus wrapped with the code,
// together with a partial Result carrying the status and timing so that
// callers can still log the attempt.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Result, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	result := &Result{
		URL:        pageURL,
		StatusCode: resp.StatusCode,
		FetchedAt:  start,
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		result.Duration = time.Since(start)
		return result, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	// Decode legacy charsets (per Content-Type or meta tags) to UTF-8 so
	// that hashing and diffing compare text, not encodings.
	reader, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", pageURL, err)
	}

	body, err := io.ReadAll(io.LimitReader(reader, f.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", pageURL, err)
	}

	result.Content = string(body)
	result.Duration = time.Since(start)
	if isHTML(resp.Header.Get("Content-Type")) {
		result.Title = ExtractTitle(strings.NewReader(result.Content))
	}

	f.logger.Debug("fetched page",
		"url", pageURL,
		"status", resp.StatusCode,
		"size", len(body),
		"duration", result.Duration)

	return result, nil
}

// isHTML reports whether a Content-Type header names an HTML document.
// An empty header counts as HTML; servers that omit it mostly serve pages.
func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	return strings.Contains(contentType, "text/html") || strings.Contains(contentType, "application/xhtml+xml")
}
