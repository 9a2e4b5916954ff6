// Package report renders monitoring run reports in different output
// formats.
//
// This package contains writers for the supported formats:
//   - SimpleWriter: Human-readable text output for terminal display
//   - MarkdownWriter: Markdown output for documentation and sharing
//   - JSONWriter: Structured JSON output for tool integration
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably and composed for multi-destination output. Report
// data structures live in the model package; this package only renders
// them.
package report
