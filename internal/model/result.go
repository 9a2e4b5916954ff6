package model

import "time"

// Outcome classifies what happened to a single URL during one
// monitoring cycle.
type Outcome string

const (
	// OutcomeSkipped means the URL was evaluated within its staleness
	// window, so no fetch was attempted and no state changed.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeNew means the URL had no stored snapshot and the first
	// successful fetch created one.
	OutcomeNew Outcome = "new"

	// OutcomeChanged means the fetched content hash differed from the
	// stored one: the old snapshot was archived and replaced.
	OutcomeChanged Outcome = "changed"

	// OutcomeUnchanged means the fetched content matched the stored
	// snapshot; only the last-checked timestamp moved.
	OutcomeUnchanged Outcome = "unchanged"

	// OutcomeError means the fetch failed; the URL's stored state was
	// left untouched, including its last-checked timestamp.
	OutcomeError Outcome = "error"
)

// Fetched reports whether this outcome involved an attempted fetch.
// Skipped URLs never reach the network.
func (o Outcome) Fetched() bool {
	return o != OutcomeSkipped
}

// URLResult is the structured outcome of evaluating one URL.
// Per-URL failures are carried here instead of being swallowed, so the
// caller keeps full error information while the run continues with the
// remaining URLs.
type URLResult struct {
	// URL is the evaluated address.
	URL string `json:"url"`

	// Outcome classifies the evaluation.
	Outcome Outcome `json:"outcome"`

	// ContentHash is the digest of the fetched content.
	// Empty when the URL was skipped or the fetch failed.
	ContentHash string `json:"content_hash,omitempty"`

	// StatusCode is the HTTP status of the fetch, when one completed.
	StatusCode int `json:"status_code,omitempty"`

	// Error holds the fetch failure message for OutcomeError.
	Error string `json:"error,omitempty"`

	// Diff is the rendered diff for OutcomeChanged, without terminal
	// colors so it can be embedded in reports.
	Diff string `json:"diff,omitempty"`

	// Duration is how long the fetch took.
	Duration time.Duration `json:"duration_ns,omitempty"`

	// CheckedAt is when the evaluation happened.
	CheckedAt time.Time `json:"checked_at"`
}

// Stats aggregates the counters of one monitoring run.
type Stats struct {
	// Fetches counts attempted fetches, including failed ones.
	Fetches int `json:"fetches"`

	// Errors counts failed fetches.
	Errors int `json:"errors"`

	// NewPages counts URLs that gained their first snapshot.
	NewPages int `json:"new_pages"`

	// Changed counts URLs whose content hash changed.
	Changed int `json:"changed"`
}

// Summarize tallies run counters from per-URL results.
// Skipped URLs contribute to no counter.
func Summarize(results []URLResult) Stats {
	var s Stats
	for _, r := range results {
		switch r.Outcome {
		case OutcomeNew:
			s.Fetches++
			s.NewPages++
		case OutcomeChanged:
			s.Fetches++
			s.Changed++
		case OutcomeUnchanged:
			s.Fetches++
		case OutcomeError:
			s.Fetches++
			s.Errors++
		case OutcomeSkipped:
		}
	}
	return s
}

// URLError pairs a URL with the store error it produced during a batch
// watch-list edit.
type URLError struct {
	// URL is the address whose operation failed.
	URL string

	// Err is the underlying store error.
	Err error
}

// BatchResult reports the outcome of a batch watch-list edit.
// Requested counts every URL in the request, whether or not its
// operation succeeded; Failures carries the ones that did not.
type BatchResult struct {
	// Requested is the number of URLs in the batch request.
	Requested int

	// Failures lists the URLs whose store operation failed.
	Failures []URLError
}

// Succeeded returns the number of operations that completed without a
// store error.
func (r BatchResult) Succeeded() int {
	return r.Requested - len(r.Failures)
}
