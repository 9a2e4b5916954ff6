package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sonodak/webwatch/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// The format is plain text without ANSI colors, so it can be piped to
// files or other tools without cleanup.
type SimpleWriter struct {
	baseWriter

	// showDiffs controls whether per-URL diffs are included.
	showDiffs bool

	// showSkipped controls whether skipped URLs appear in the result
	// list.
	showSkipped bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithDiffs includes the recorded diff under each changed URL.
func WithDiffs(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showDiffs = show
	}
}

// WithSkipped includes URLs that were within their staleness window.
func WithSkipped(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showSkipped = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter:  newBaseWriter(output),
		showDiffs:   true,
		showSkipped: false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the run report in human-readable format.
func (w *SimpleWriter) Write(report *model.RunReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeResults(&sb, report)
	w.writeTotals(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the run metadata section.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.RunReport) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                         WEBWATCH RUN REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Started:          %s\n", report.StartedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Finished:         %s\n", report.FinishedAt.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Staleness window: %d minutes\n", report.WindowMinutes))
	sb.WriteString(fmt.Sprintf("URLs evaluated:   %d\n", report.Watched))

	if report.Added > 0 {
		sb.WriteString(fmt.Sprintf("URLs added:       %d\n", report.Added))
	}
	if report.Removed > 0 {
		sb.WriteString(fmt.Sprintf("URLs removed:     %d\n", report.Removed))
	}
	sb.WriteString("\n")
}

// writeResults writes the per-URL outcome list.
func (w *SimpleWriter) writeResults(sb *strings.Builder, report *model.RunReport) {
	if len(report.Results) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("RESULTS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, r := range report.Results {
		if r.Outcome == model.OutcomeSkipped && !w.showSkipped {
			continue
		}

		sb.WriteString(fmt.Sprintf("  [%s] %s\n", r.Outcome, r.URL))
		if r.Error != "" {
			sb.WriteString(fmt.Sprintf("      error: %s\n", r.Error))
		}
		if r.ContentHash != "" {
			sb.WriteString(fmt.Sprintf("      sha256: %s\n", r.ContentHash))
		}
		if w.showDiffs && r.Diff != "" {
			for _, line := range strings.Split(strings.TrimRight(r.Diff, "\n"), "\n") {
				sb.WriteString("      | " + line + "\n")
			}
		}
	}
	sb.WriteString("\n")
}

// writeTotals writes the run counters. Following the terminal output of
// a run, totals appear only when at least one fetch was attempted.
func (w *SimpleWriter) writeTotals(sb *strings.Builder, report *model.RunReport) {
	if report.Stats.Fetches == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total new pages added: %d\n", report.Stats.NewPages))
	sb.WriteString(fmt.Sprintf("Total pages changed: %d\n", report.Stats.Changed))
	sb.WriteString(fmt.Sprintf("Total errors: %d\n", report.Stats.Errors))
}
