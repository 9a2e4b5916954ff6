// Package log provides logging helpers for webwatch, built on top of the
// standard slog package.
//
// This package extends slog to provide:
//   - Truncation of oversized attribute values (page bodies, diffs)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Truncation
//
// webwatch routinely handles whole page bodies and multi-kilobyte diffs.
// Logging those values verbatim makes debug output unreadable and can
// balloon log files, so the TruncateHandler shortens any string attribute
// beyond a size limit to a prefix plus the original byte count. The
// truncated form still identifies the content (the prefix and length are
// preserved) without flooding the log stream.
//
// # Usage
//
//	// Create a logger whose large attributes are truncated
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Debug("content fetched",
//	    "url", "https://example.com/news",
//	    "content", body, // shortened when beyond the limit
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
