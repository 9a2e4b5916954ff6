package model

import "time"

// WatchedURL is an entry in the watch list.
// A URL enters the watch list when added and leaves it only on explicit
// removal; its LastChecked timestamp is refreshed on re-add and after
// every successful fetch.
type WatchedURL struct {
	// URL is the watched address. It is the primary key of the watch list.
	URL string `json:"url"`

	// LastChecked is the time of the most recent successful evaluation.
	// It never moves backwards for a given URL.
	LastChecked time.Time `json:"last_checked"`
}

// Snapshot is the current stored content of a URL.
// At most one Snapshot exists per URL at any time. It is created on the
// first successful fetch and replaced, via the archive, whenever the
// fetched content hash differs from the stored one.
type Snapshot struct {
	// URL is the address this snapshot belongs to.
	URL string `json:"url"`

	// FetchedAt is the time the content was retrieved.
	FetchedAt time.Time `json:"fetched_at"`

	// ContentHash is the SHA-256 hex digest of Content.
	ContentHash string `json:"content_hash"`

	// Title is the page title extracted from the <title> tag.
	// Empty for non-HTML content.
	Title string `json:"title,omitempty"`

	// Content is the fetched page body, normalized to UTF-8.
	Content string `json:"content,omitempty"`
}

// ArchivedSnapshot is a superseded Snapshot preserved in the append-only
// archive. FetchedAt, ContentHash, Title and Content are copied verbatim
// from the snapshot that was replaced; ArchivedAt records when the
// replacement happened. Archive rows are never updated or deleted.
type ArchivedSnapshot struct {
	// ID is the archive row identifier, assigned in insertion order.
	ID int64 `json:"id"`

	// URL is the address the archived content belonged to.
	URL string `json:"url"`

	// FetchedAt is the original retrieval time of the archived content.
	FetchedAt time.Time `json:"fetched_at"`

	// ContentHash is the SHA-256 hex digest of the archived content.
	ContentHash string `json:"content_hash"`

	// Title is the page title the content carried when it was current.
	Title string `json:"title,omitempty"`

	// Content is the archived page body.
	// Listing queries leave it empty and report ContentSize instead.
	Content string `json:"content,omitempty"`

	// ContentSize is the archived body length in bytes.
	ContentSize int64 `json:"content_size"`

	// ArchivedAt is the time the snapshot was superseded.
	ArchivedAt time.Time `json:"archived_at"`
}
