package model

import (
	"errors"
	"testing"
	"time"
)

// TestOutcomeFetched tests which outcomes count as attempted fetches.
func TestOutcomeFetched(t *testing.T) {
	t.Parallel()

	tests := []struct {
		outcome Outcome
		want    bool
	}{
		{OutcomeSkipped, false},
		{OutcomeNew, true},
		{OutcomeChanged, true},
		{OutcomeUnchanged, true},
		{OutcomeError, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			t.Parallel()
			if got := tt.outcome.Fetched(); got != tt.want {
				t.Errorf("Fetched() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSummarize tests counter tallying from per-URL results.
func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("empty results produce zero stats", func(t *testing.T) {
		t.Parallel()
		stats := Summarize(nil)
		if stats != (Stats{}) {
			t.Errorf("expected zero stats, got %+v", stats)
		}
	})

	t.Run("each outcome feeds its counter", func(t *testing.T) {
		t.Parallel()
		results := []URLResult{
			{URL: "https://a.example", Outcome: OutcomeNew},
			{URL: "https://b.example", Outcome: OutcomeChanged},
			{URL: "https://c.example", Outcome: OutcomeUnchanged},
			{URL: "https://d.example", Outcome: OutcomeError},
			{URL: "https://e.example", Outcome: OutcomeSkipped},
		}

		stats := Summarize(results)

		if stats.Fetches != 4 {
			t.Errorf("expected 4 fetches, got %d", stats.Fetches)
		}
		if stats.NewPages != 1 {
			t.Errorf("expected 1 new page, got %d", stats.NewPages)
		}
		if stats.Changed != 1 {
			t.Errorf("expected 1 changed, got %d", stats.Changed)
		}
		if stats.Errors != 1 {
			t.Errorf("expected 1 error, got %d", stats.Errors)
		}
	})

	t.Run("skipped results count nothing", func(t *testing.T) {
		t.Parallel()
		results := []URLResult{
			{URL: "https://a.example", Outcome: OutcomeSkipped},
			{URL: "https://b.example", Outcome: OutcomeSkipped},
		}

		stats := Summarize(results)

		if stats != (Stats{}) {
			t.Errorf("expected zero stats, got %+v", stats)
		}
	})
}

// TestBatchResultSucceeded tests the success count of batch edits.
func TestBatchResultSucceeded(t *testing.T) {
	t.Parallel()

	t.Run("no failures means all succeeded", func(t *testing.T) {
		t.Parallel()
		r := BatchResult{Requested: 3}
		if got := r.Succeeded(); got != 3 {
			t.Errorf("Succeeded() = %d, want 3", got)
		}
	})

	t.Run("failures reduce the success count", func(t *testing.T) {
		t.Parallel()
		r := BatchResult{
			Requested: 3,
			Failures: []URLError{
				{URL: "https://a.example", Err: errors.New("locked")},
			},
		}
		if got := r.Succeeded(); got != 2 {
			t.Errorf("Succeeded() = %d, want 2", got)
		}
	})
}

// TestRunReportComplete tests result recording and counter tallying.
func TestRunReportComplete(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	finish := start.Add(3 * time.Second)

	report := NewRunReport(60, start)
	report.Complete([]URLResult{
		{URL: "https://a.example", Outcome: OutcomeNew},
		{URL: "https://b.example", Outcome: OutcomeSkipped},
	}, finish)

	if report.Watched != 2 {
		t.Errorf("expected 2 watched, got %d", report.Watched)
	}
	if report.Stats.NewPages != 1 {
		t.Errorf("expected 1 new page, got %d", report.Stats.NewPages)
	}
	if report.Duration() != 3*time.Second {
		t.Errorf("expected 3s duration, got %s", report.Duration())
	}
}
