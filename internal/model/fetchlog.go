package model

import "time"

// FetchRecord is one entry in the fetch log. A record is written for
// every attempted fetch (successful or not); URLs skipped inside their
// staleness window are not logged.
type FetchRecord struct {
	// ID is a UUID assigned by the store on insert.
	ID string `json:"id"`

	// URL is the fetched address.
	URL string `json:"url"`

	// Outcome classifies the attempt (new, changed, unchanged, error).
	Outcome Outcome `json:"outcome"`

	// StatusCode is the HTTP status, when the request completed.
	StatusCode int `json:"status_code,omitempty"`

	// ContentHash is the digest of the fetched content, when any.
	ContentHash string `json:"content_hash,omitempty"`

	// Error holds the failure message for error outcomes.
	Error string `json:"error,omitempty"`

	// Duration is how long the fetch took.
	Duration time.Duration `json:"duration_ns,omitempty"`

	// FetchedAt is when the attempt happened.
	FetchedAt time.Time `json:"fetched_at"`
}
