package model

import "time"

// RunReport is the aggregate result of one monitoring run: the
// watch-list edits that preceded the cycle, the per-URL results, and
// the tallied counters.
type RunReport struct {
	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the run completed.
	FinishedAt time.Time `json:"finished_at"`

	// WindowMinutes is the staleness window the run used.
	WindowMinutes int `json:"window_minutes"`

	// Added is the number of URLs in the add request (request count,
	// not distinct inserts).
	Added int `json:"added"`

	// Removed is the number of delete attempts that completed.
	Removed int `json:"removed"`

	// Watched is the number of URLs evaluated this run.
	Watched int `json:"watched"`

	// Results holds the per-URL outcomes in evaluation order.
	Results []URLResult `json:"results"`

	// Stats holds the run counters tallied from Results.
	Stats Stats `json:"stats"`
}

// NewRunReport creates a RunReport for a run starting now.
func NewRunReport(windowMinutes int, startedAt time.Time) *RunReport {
	return &RunReport{
		StartedAt:     startedAt,
		WindowMinutes: windowMinutes,
		Results:       []URLResult{},
	}
}

// Complete records the per-URL results, tallies the counters, and
// stamps the finish time.
func (r *RunReport) Complete(results []URLResult, finishedAt time.Time) {
	r.Results = results
	r.Watched = len(results)
	r.Stats = Summarize(results)
	r.FinishedAt = finishedAt
}

// Duration returns the wall-clock duration of the run.
func (r *RunReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
