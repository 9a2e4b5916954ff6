package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sonodak/webwatch/internal/model"
)

// AddWatched inserts URLs into the watch list.
// Adding a URL that is already watched refreshes its last_checked
// timestamp instead of failing, so repeated adds are idempotent.
// Per-URL store errors are collected in the result and the remaining
// URLs are still processed.
func (s *Store) AddWatched(ctx context.Context, urls []string, now time.Time) model.BatchResult {
	query := `
	INSERT INTO watchlist (url, last_checked)
	VALUES (?, ?)
	ON CONFLICT(url) DO UPDATE SET last_checked = excluded.last_checked
	`

	result := model.BatchResult{Requested: len(urls)}
	for _, url := range urls {
		if _, err := s.db.ExecContext(ctx, query, url, now.UnixMilli()); err != nil {
			result.Failures = append(result.Failures, model.URLError{
				URL: url,
				Err: fmt.Errorf("failed to add url: %w", err),
			})
		}
	}
	return result
}

// RemoveWatched deletes URLs from the watch list.
// Removing a URL that is not watched is a silent no-op; the snapshot and
// archive rows for a removed URL are left in place.
// Per-URL store errors are collected in the result and the remaining
// URLs are still processed.
func (s *Store) RemoveWatched(ctx context.Context, urls []string) model.BatchResult {
	query := `DELETE FROM watchlist WHERE url = ?`

	result := model.BatchResult{Requested: len(urls)}
	for _, url := range urls {
		if _, err := s.db.ExecContext(ctx, query, url); err != nil {
			result.Failures = append(result.Failures, model.URLError{
				URL: url,
				Err: fmt.Errorf("failed to remove url: %w", err),
			})
		}
	}
	return result
}

// ListWatched returns every URL in the watch list in storage order.
func (s *Store) ListWatched(ctx context.Context) ([]model.WatchedURL, error) {
	query := `SELECT url, last_checked FROM watchlist`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list watched urls: %w", err)
	}
	defer rows.Close()

	var watched []model.WatchedURL
	for rows.Next() {
		var w model.WatchedURL
		var lastChecked int64
		if err := rows.Scan(&w.URL, &lastChecked); err != nil {
			return nil, fmt.Errorf("failed to scan watched url: %w", err)
		}
		w.LastChecked = time.UnixMilli(lastChecked)
		watched = append(watched, w)
	}

	return watched, rows.Err()
}

// GetLastChecked returns the last-checked timestamp for a watched URL.
// It returns ErrNotWatched when the URL is not in the watch list.
func (s *Store) GetLastChecked(ctx context.Context, url string) (time.Time, error) {
	query := `SELECT last_checked FROM watchlist WHERE url = ?`

	var ms int64
	err := s.db.QueryRowContext(ctx, query, url).Scan(&ms)
	if err == sql.ErrNoRows {
		return time.Time{}, ErrNotWatched
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last checked: %w", err)
	}

	return time.UnixMilli(ms), nil
}

// TouchLastChecked refreshes the last-checked timestamp for a watched URL.
// It returns ErrNotWatched when the URL is not in the watch list.
func (s *Store) TouchLastChecked(ctx context.Context, url string, now time.Time) error {
	query := `UPDATE watchlist SET last_checked = ? WHERE url = ?`

	result, err := s.db.ExecContext(ctx, query, now.UnixMilli(), url)
	if err != nil {
		return fmt.Errorf("failed to touch last checked: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotWatched
	}

	return nil
}

// CountWatched returns the number of URLs in the watch list.
func (s *Store) CountWatched(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM watchlist`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count watched urls: %w", err)
	}
	return count, nil
}
