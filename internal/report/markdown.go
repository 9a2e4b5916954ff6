package report

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/markdown"
	"github.com/sonodak/webwatch/internal/model"
)

// MarkdownWriter outputs run reports in Markdown format, designed for
// documentation and sharing. It uses the nao1215/markdown library for
// fluent, type-safe markdown generation including tables and
// GitHub-flavored alerts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run report in Markdown format.
func (w *MarkdownWriter) Write(report *model.RunReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeResults(md, report)
	w.writeDiffs(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the run metadata table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.RunReport) {
	md.H1("Webwatch Run Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Started", report.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Finished", report.FinishedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", report.Duration().Round(time.Millisecond).String()},
			{"Staleness Window", strconv.Itoa(report.WindowMinutes) + " minutes"},
			{"URLs Evaluated", strconv.Itoa(report.Watched)},
			{"URLs Added", strconv.Itoa(report.Added)},
			{"URLs Removed", strconv.Itoa(report.Removed)},
		},
	})
	md.PlainText("")
}

// writeSummary writes the counter table and a severity-style alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Run Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Counter", "Value"},
		Rows: [][]string{
			{"🌐 Fetches", strconv.Itoa(report.Stats.Fetches)},
			{"🆕 New Pages", strconv.Itoa(report.Stats.NewPages)},
			{"🔄 Changed Pages", strconv.Itoa(report.Stats.Changed)},
			{"❌ Errors", strconv.Itoa(report.Stats.Errors)},
		},
	})
	md.PlainText("")

	w.writeAlert(md, report)
}

// writeAlert writes an alert matching the most significant run outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.RunReport) {
	switch {
	case report.Stats.Errors > 0:
		md.Warningf(
			"%d fetch(es) failed. The stored snapshots of failing URLs were left untouched.",
			report.Stats.Errors,
		)
	case report.Stats.Changed > 0:
		md.Importantf(
			"%d page(s) changed since the last run. The previous versions were archived.",
			report.Stats.Changed,
		)
	case report.Stats.NewPages > 0:
		md.Notef(
			"%d page(s) were fetched for the first time and stored.",
			report.Stats.NewPages,
		)
	default:
		md.Tip("No changes detected.")
	}
	md.PlainText("")
}

// writeResults writes the per-URL outcome table.
func (w *MarkdownWriter) writeResults(md *markdown.Markdown, report *model.RunReport) {
	md.H2("Results")
	md.PlainText("")

	if len(report.Results) == 0 {
		md.PlainText("No URLs were evaluated.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Results))
	for i, r := range report.Results {
		status := "-"
		if r.StatusCode != 0 {
			status = strconv.Itoa(r.StatusCode)
		}
		hash := "-"
		if r.ContentHash != "" {
			hash = "`" + shortHash(r.ContentHash) + "`"
		}
		detail := "-"
		if r.Error != "" {
			detail = r.Error
		}

		rows[i] = []string{
			"`" + r.URL + "`",
			outcomeBadge(r.Outcome),
			status,
			hash,
			detail,
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"URL", "Outcome", "Status", "SHA-256", "Detail"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeDiffs writes one diff section per changed URL.
func (w *MarkdownWriter) writeDiffs(md *markdown.Markdown, report *model.RunReport) {
	changed := make([]model.URLResult, 0, len(report.Results))
	for _, r := range report.Results {
		if r.Outcome == model.OutcomeChanged && r.Diff != "" {
			changed = append(changed, r)
		}
	}
	if len(changed) == 0 {
		return
	}

	md.H2("Diffs")
	md.PlainText("")

	for _, r := range changed {
		md.PlainText("### `" + r.URL + "`")
		md.PlainText("")
		md.CodeBlocks(markdown.SyntaxHighlightDiff, strings.TrimRight(r.Diff, "\n"))
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [webwatch](https://github.com/sonodak/webwatch)*")
}

// outcomeBadge returns a visual label for an outcome.
func outcomeBadge(o model.Outcome) string {
	switch o {
	case model.OutcomeNew:
		return "🆕 new"
	case model.OutcomeChanged:
		return "🔄 changed"
	case model.OutcomeUnchanged:
		return "✅ unchanged"
	case model.OutcomeSkipped:
		return "⏭ skipped"
	case model.OutcomeError:
		return "❌ error"
	default:
		return string(o)
	}
}

// shortHash truncates a content hash for table display.
func shortHash(hash string) string {
	const short = 12
	if len(hash) <= short {
		return hash
	}
	return hash[:short]
}
