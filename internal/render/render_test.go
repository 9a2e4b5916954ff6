package render

import (
	"strings"
	"testing"
)

// TestRendererMarkdown tests HTML to Markdown conversion.
func TestRendererMarkdown(t *testing.T) {
	t.Parallel()

	r := New()

	t.Run("converts headings and emphasis", func(t *testing.T) {
		t.Parallel()

		got := r.Markdown(
			"<html><body><h1>Release Notes</h1><p>Now with <strong>tables</strong>.</p></body></html>",
			"https://example.com/notes",
			"fallback",
		)

		if !strings.Contains(got, "# Release Notes") {
			t.Errorf("expected a markdown heading, got:\n%s", got)
		}
		if !strings.Contains(got, "**tables**") {
			t.Errorf("expected bold emphasis, got:\n%s", got)
		}
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		got := r.Markdown(
			"<ul><li>first</li><li>second</li></ul>",
			"https://example.com",
			"fallback",
		)

		if !strings.Contains(got, "- first") || !strings.Contains(got, "- second") {
			t.Errorf("expected bullet list items, got:\n%s", got)
		}
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		got := r.Markdown(
			"<table><tr><th>Name</th><th>State</th></tr><tr><td>api</td><td>up</td></tr></table>",
			"https://example.com",
			"fallback",
		)

		if !strings.Contains(got, "|") || !strings.Contains(got, "Name") {
			t.Errorf("expected a markdown table, got:\n%s", got)
		}
	})

	t.Run("returns fallback for empty input", func(t *testing.T) {
		t.Parallel()

		if got := r.Markdown("", "https://example.com", "plain text"); got != "plain text" {
			t.Errorf("expected fallback, got %q", got)
		}
	})

	t.Run("returns fallback for markup with no text", func(t *testing.T) {
		t.Parallel()

		if got := r.Markdown("<div></div>", "https://example.com", "plain text"); got != "plain text" {
			t.Errorf("expected fallback, got %q", got)
		}
	})
}
