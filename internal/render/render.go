// Package render converts stored HTML snapshots into Markdown for
// terminal display.
package render

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

// Renderer converts HTML to structured Markdown. The zero value is not
// usable; create one with New.
type Renderer struct {
	conv *converter.Converter
}

// New creates a Renderer with CommonMark and table support.
func New() *Renderer {
	return &Renderer{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Markdown converts HTML to Markdown. The source URL is used to resolve
// relative links. If conversion fails or produces empty output, the
// fallback text is returned instead.
func (r *Renderer) Markdown(html, sourceURL, fallback string) string {
	if html == "" {
		return fallback
	}

	result, err := r.conv.ConvertString(html, converter.WithDomain(sourceURL))
	if err != nil || strings.TrimSpace(result) == "" {
		return fallback
	}
	return strings.TrimSpace(result)
}
