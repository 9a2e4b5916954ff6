package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and identify what is
// wrong with the configuration. They are package-level sentinels so that
// callers can use errors.Is() for programmatic handling.
var (
	// ErrNoDatabasePath is returned when the database path is empty.
	// An empty --db flag would otherwise silently create a relative file.
	ErrNoDatabasePath = errors.New("no database path specified")

	// ErrInvalidWindow is returned when the staleness window is negative.
	// Use 0 to fetch every watched URL on every run.
	ErrInvalidWindow = errors.New("invalid staleness window: must be non-negative")

	// ErrInvalidTimeout is returned when the HTTP timeout is not positive.
	// A zero timeout would remove the request bound entirely and let one
	// dead host stall a whole run.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 to fall back to the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one report format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
