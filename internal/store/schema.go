package store

import "context"

// createTables creates the database schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	-- The watch list: one row per monitored URL.
	-- last_checked is Unix milliseconds; refreshed on add and after
	-- every successful fetch.
	CREATE TABLE IF NOT EXISTS watchlist (
		url TEXT PRIMARY KEY,
		last_checked INTEGER NOT NULL
	);

	-- Current snapshots: at most one stored version per URL.
	-- Replaced via archive-then-insert when page content changes.
	CREATE TABLE IF NOT EXISTS snapshots (
		url TEXT PRIMARY KEY,
		fetched_at INTEGER NOT NULL,
		content_hash TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL
	);

	-- Archive: append-only history of superseded snapshots.
	-- Rows are never updated or deleted and survive watch list removal.
	CREATE TABLE IF NOT EXISTS archive (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		url TEXT NOT NULL,
		fetched_at INTEGER NOT NULL,
		content_hash TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL,
		archived_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_archive_url ON archive(url);
	CREATE INDEX IF NOT EXISTS idx_archive_archived_at ON archive(archived_at);

	-- Fetch log: one row per attempted fetch (skipped URLs are not logged).
	CREATE TABLE IF NOT EXISTS fetch_log (
		id TEXT PRIMARY KEY,
		url TEXT NOT NULL,
		outcome TEXT NOT NULL,
		status_code INTEGER NOT NULL DEFAULT 0,
		content_hash TEXT NOT NULL DEFAULT '',
		error TEXT NOT NULL DEFAULT '',
		duration_ms INTEGER NOT NULL DEFAULT 0,
		fetched_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_fetch_log_url ON fetch_log(url);
	CREATE INDEX IF NOT EXISTS idx_fetch_log_fetched_at ON fetch_log(fetched_at);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}
