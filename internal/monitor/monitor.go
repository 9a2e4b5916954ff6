package monitor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sonodak/webwatch/internal/diff"
	"github.com/sonodak/webwatch/internal/digest"
	"github.com/sonodak/webwatch/internal/fetch"
	"github.com/sonodak/webwatch/internal/model"
	"github.com/sonodak/webwatch/internal/store"
)

// DefaultWindowMinutes is the staleness window applied when no option
// overrides it.
const DefaultWindowMinutes = 60

// Monitor evaluates watched URLs against their stored snapshots.
// The store handle and fetcher are injected; the monitor owns no state
// beyond configuration.
type Monitor struct {
	store       *store.Store
	fetcher     *fetch.Fetcher
	logger      *slog.Logger
	out         io.Writer
	window      int
	pageWindows map[string]int
	now         func() time.Time
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Monitor) { m.logger = l }
}

// WithOutput sets the writer for per-URL progress lines and diffs.
func WithOutput(w io.Writer) Option {
	return func(m *Monitor) { m.out = w }
}

// WithWindowMinutes sets the staleness window in minutes. Zero disables
// the window so every watched URL is fetched.
func WithWindowMinutes(minutes int) Option {
	return func(m *Monitor) { m.window = minutes }
}

// WithPageWindows sets per-URL staleness window overrides in minutes.
func WithPageWindows(windows map[string]int) Option {
	return func(m *Monitor) { m.pageWindows = windows }
}

// WithClock sets the time source. Tests inject a fixed clock.
func WithClock(now func() time.Time) Option {
	return func(m *Monitor) { m.now = now }
}

// New creates a Monitor over the given store and fetcher.
func New(s *store.Store, f *fetch.Fetcher, opts ...Option) *Monitor {
	m := &Monitor{
		store:   s,
		fetcher: f,
		logger:  slog.Default(),
		out:     os.Stdout,
		window:  DefaultWindowMinutes,
		now:     time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Run evaluates every URL in order and returns one result per URL.
// Fetch failures are recorded in the results and do not stop the run;
// precondition violations (a URL without a watch list row, a change
// without a stored snapshot) and store failures abort it.
func (m *Monitor) Run(ctx context.Context, urls []string) ([]model.URLResult, error) {
	results := make([]model.URLResult, 0, len(urls))

	for _, url := range urls {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("monitoring interrupted: %w", err)
		}

		result, err := m.evaluate(ctx, url)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

// evaluate runs the decision cycle for a single URL.
func (m *Monitor) evaluate(ctx context.Context, url string) (model.URLResult, error) {
	result := model.URLResult{
		URL:       url,
		CheckedAt: m.now(),
	}

	snap, err := m.store.GetSnapshot(ctx, url)
	if err != nil {
		return result, fmt.Errorf("failed to load snapshot for %s: %w", url, err)
	}

	// URLs reach evaluate through the watch list, so a missing
	// last_checked row means the database changed mid-run.
	lastChecked, err := m.store.GetLastChecked(ctx, url)
	if err != nil {
		return result, fmt.Errorf("url %s: %w", url, err)
	}

	if snap != nil && !m.stale(url, lastChecked) {
		fmt.Fprintf(m.out, "URL %s has been checked in last %d minutes.\n", url, m.windowFor(url))
		result.Outcome = model.OutcomeSkipped
		m.logger.Debug("skipping fresh url", "url", url, "last_checked", lastChecked)
		return result, nil
	}

	fmt.Fprintf(m.out, "Evaluating URL: %s\n", url)

	res, fetchErr := m.fetcher.Fetch(ctx, url)
	if fetchErr != nil {
		fmt.Fprintf(m.out, "Request error occurred with %s: %v\n", url, fetchErr)
		result.Outcome = model.OutcomeError
		result.Error = fetchErr.Error()
		if res != nil {
			result.StatusCode = res.StatusCode
			result.Duration = res.Duration
		}
		m.recordFetch(ctx, &result, res)
		return result, nil
	}

	result.StatusCode = res.StatusCode
	result.Duration = res.Duration

	switch {
	case snap == nil:
		fmt.Fprintf(m.out, "Adding new page: %s\n", url)
		written, err := m.store.WriteSnapshot(ctx, url, res.Title, res.Content, res.FetchedAt)
		if err != nil {
			return result, fmt.Errorf("failed to store new page %s: %w", url, err)
		}
		result.Outcome = model.OutcomeNew
		result.ContentHash = written.ContentHash

	case snap.ContentHash != digest.ContentString(res.Content):
		fmt.Fprintf(m.out, "Page has changed: %s\n", url)
		arch, err := m.store.ArchiveAndClear(ctx, url, m.now())
		if err != nil {
			return result, fmt.Errorf("failed to archive %s: %w", url, err)
		}

		// The freshly fetched content is diffed as the from side against
		// the archived version, labeled old/new respectively.
		rendered, err := m.renderDiff(res.Content, arch.Content)
		if err != nil {
			return result, fmt.Errorf("failed to diff %s: %w", url, err)
		}
		result.Diff = rendered
		fmt.Fprintln(m.out, diff.Highlight(rendered))

		written, err := m.store.WriteSnapshot(ctx, url, res.Title, res.Content, res.FetchedAt)
		if err != nil {
			return result, fmt.Errorf("failed to store changed page %s: %w", url, err)
		}
		result.Outcome = model.OutcomeChanged
		result.ContentHash = written.ContentHash

	default:
		result.Outcome = model.OutcomeUnchanged
		result.ContentHash = snap.ContentHash
		m.logger.Debug("page unchanged", "url", url, "hash", snap.ContentHash)
	}

	if err := m.store.TouchLastChecked(ctx, url, m.now()); err != nil {
		return result, fmt.Errorf("failed to refresh last checked for %s: %w", url, err)
	}

	m.recordFetch(ctx, &result, res)
	return result, nil
}

// stale reports whether a URL's last check falls outside its staleness
// window. The boundary itself counts as fresh.
func (m *Monitor) stale(url string, lastChecked time.Time) bool {
	window := time.Duration(m.windowFor(url)) * time.Minute
	return lastChecked.Before(m.now().Add(-window))
}

// windowFor returns the staleness window in minutes for a URL, honoring
// per-page overrides.
func (m *Monitor) windowFor(url string) int {
	if minutes, ok := m.pageWindows[url]; ok {
		return minutes
	}
	return m.window
}

// recordFetch appends a fetch log entry for an attempted fetch.
// Logging failures must not fail the run, so they are only warned about.
func (m *Monitor) recordFetch(ctx context.Context, result *model.URLResult, res *fetch.Result) {
	rec := &model.FetchRecord{
		URL:         result.URL,
		Outcome:     result.Outcome,
		StatusCode:  result.StatusCode,
		ContentHash: result.ContentHash,
		Error:       result.Error,
		Duration:    result.Duration,
		FetchedAt:   result.CheckedAt,
	}
	if res != nil {
		rec.FetchedAt = res.FetchedAt
	}

	if err := m.store.InsertFetchRecord(ctx, rec); err != nil {
		m.logger.Warn("failed to write fetch log entry", "url", result.URL, "error", err)
	}
}

// renderDiff builds the filtered unified diff between the current and
// archived content: only removal and addition lines are kept.
func (m *Monitor) renderDiff(current, archived string) (string, error) {
	unified, err := diff.Unified(current, archived, "old", "new")
	if err != nil {
		return "", err
	}
	return diff.ChangedLines(unified), nil
}
