// Package store provides SQLite-based persistence for webwatch.
//
// A single database file holds four tables:
//   - watchlist: monitored URLs with their last-checked timestamps
//   - snapshots: the current stored version of each page, at most one row per URL
//   - archive: append-only history of superseded snapshots
//   - fetch_log: one record per attempted fetch
//
// The driver is modernc.org/sqlite, a pure Go implementation, accessed
// through database/sql. All timestamps are stored as INTEGER Unix
// milliseconds and surfaced as time.Time values.
package store
