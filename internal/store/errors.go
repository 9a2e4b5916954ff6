package store

import "errors"

// Store sentinel errors.
// These identify precondition violations that callers must distinguish
// from plain database failures via errors.Is().
var (
	// ErrNotWatched is returned when an operation requires the URL to be
	// in the watch list and it is not.
	ErrNotWatched = errors.New("url is not in the watch list")

	// ErrNoSnapshot is returned by ArchiveAndClear when the URL has no
	// stored snapshot to archive.
	ErrNoSnapshot = errors.New("no stored snapshot for url")
)
