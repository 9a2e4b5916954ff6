package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sonodak/webwatch/internal/digest"
	"github.com/sonodak/webwatch/internal/model"
)

// GetSnapshot retrieves the current snapshot for a URL.
// It returns (nil, nil) when the URL has never been successfully fetched.
func (s *Store) GetSnapshot(ctx context.Context, url string) (*model.Snapshot, error) {
	query := `
	SELECT url, fetched_at, content_hash, title, content
	FROM snapshots
	WHERE url = ?
	`

	var snap model.Snapshot
	var fetchedAt int64
	err := s.db.QueryRowContext(ctx, query, url).Scan(
		&snap.URL,
		&fetchedAt,
		&snap.ContentHash,
		&snap.Title,
		&snap.Content,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	snap.FetchedAt = time.UnixMilli(fetchedAt)
	return &snap, nil
}

// WriteSnapshot stores a new current snapshot for a URL, computing the
// content hash from the content. The caller must ensure no snapshot row
// exists for the URL; a violation surfaces as the driver's uniqueness
// constraint error.
func (s *Store) WriteSnapshot(ctx context.Context, url, title, content string, fetchedAt time.Time) (*model.Snapshot, error) {
	query := `
	INSERT INTO snapshots (url, fetched_at, content_hash, title, content)
	VALUES (?, ?, ?, ?, ?)
	`

	snap := &model.Snapshot{
		URL:         url,
		FetchedAt:   fetchedAt,
		ContentHash: digest.ContentString(content),
		Title:       title,
		Content:     content,
	}

	_, err := s.db.ExecContext(ctx, query,
		snap.URL,
		snap.FetchedAt.UnixMilli(),
		snap.ContentHash,
		snap.Title,
		snap.Content,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}

	return snap, nil
}
