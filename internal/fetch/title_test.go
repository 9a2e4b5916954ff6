package fetch

import (
	"strings"
	"testing"
)

// TestExtractTitle tests title extraction from HTML documents.
func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "simple title",
			html: "<html><head><title>My Page</title></head><body></body></html>",
			want: "My Page",
		},
		{
			name: "title with surrounding whitespace is trimmed",
			html: "<html><head><title>\n  Spaced Out  \n</title></head></html>",
			want: "Spaced Out",
		},
		{
			name: "document without a title",
			html: "<html><head></head><body><h1>No title here</h1></body></html>",
			want: "",
		},
		{
			name: "first title wins",
			html: "<title>First</title><title>Second</title>",
			want: "First",
		},
		{
			name: "malformed markup still yields the title",
			html: "<head><title>Broken</title><body><p>unclosed",
			want: "Broken",
		},
		{
			name: "empty document",
			html: "",
			want: "",
		},
		{
			name: "plain text without markup",
			html: "just some text, no tags",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractTitle(strings.NewReader(tt.html))
			if got != tt.want {
				t.Errorf("expected title %q, got %q", tt.want, got)
			}
		})
	}
}
