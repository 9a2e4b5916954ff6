package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sonodak/webwatch/internal/model"
)

// ArchiveAndClear moves the current snapshot of a URL into the archive.
// The snapshot row is copied verbatim, stamped with the archive time, and
// deleted, all in a single transaction. It returns ErrNoSnapshot when the
// URL has no stored snapshot.
func (s *Store) ArchiveAndClear(ctx context.Context, url string, now time.Time) (*model.ArchivedSnapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var arch model.ArchivedSnapshot
	var fetchedAt int64
	err = tx.QueryRowContext(ctx, `
	SELECT url, fetched_at, content_hash, title, content
	FROM snapshots
	WHERE url = ?
	`, url).Scan(&arch.URL, &fetchedAt, &arch.ContentHash, &arch.Title, &arch.Content)
	if err == sql.ErrNoRows {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot for archiving: %w", err)
	}
	arch.FetchedAt = time.UnixMilli(fetchedAt)
	arch.ArchivedAt = now
	arch.ContentSize = int64(len(arch.Content))

	result, err := tx.ExecContext(ctx, `
	INSERT INTO archive (url, fetched_at, content_hash, title, content, archived_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`, arch.URL, fetchedAt, arch.ContentHash, arch.Title, arch.Content, now.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to insert archive record: %w", err)
	}

	arch.ID, err = result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read archive id: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE url = ?`, url); err != nil {
		return nil, fmt.Errorf("failed to clear snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit archive: %w", err)
	}

	return &arch, nil
}

// ListArchives returns the archived versions of a URL, newest first.
// Content is omitted; ContentSize carries the stored size instead, so
// listings stay cheap for URLs with large histories.
func (s *Store) ListArchives(ctx context.Context, url string) ([]model.ArchivedSnapshot, error) {
	query := `
	SELECT id, url, fetched_at, content_hash, title, LENGTH(content), archived_at
	FROM archive
	WHERE url = ?
	ORDER BY archived_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, url)
	if err != nil {
		return nil, fmt.Errorf("failed to list archives: %w", err)
	}
	defer rows.Close()

	var archives []model.ArchivedSnapshot
	for rows.Next() {
		var arch model.ArchivedSnapshot
		var fetchedAt, archivedAt int64
		err := rows.Scan(
			&arch.ID,
			&arch.URL,
			&fetchedAt,
			&arch.ContentHash,
			&arch.Title,
			&arch.ContentSize,
			&archivedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archive record: %w", err)
		}
		arch.FetchedAt = time.UnixMilli(fetchedAt)
		arch.ArchivedAt = time.UnixMilli(archivedAt)
		archives = append(archives, arch)
	}

	return archives, rows.Err()
}

// GetArchive retrieves an archived snapshot by ID, content included.
// It returns (nil, nil) when no archive record has that ID.
func (s *Store) GetArchive(ctx context.Context, id int64) (*model.ArchivedSnapshot, error) {
	query := `
	SELECT id, url, fetched_at, content_hash, title, content, archived_at
	FROM archive
	WHERE id = ?
	`

	var arch model.ArchivedSnapshot
	var fetchedAt, archivedAt int64
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&arch.ID,
		&arch.URL,
		&fetchedAt,
		&arch.ContentHash,
		&arch.Title,
		&arch.Content,
		&archivedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get archive record: %w", err)
	}

	arch.FetchedAt = time.UnixMilli(fetchedAt)
	arch.ArchivedAt = time.UnixMilli(archivedAt)
	arch.ContentSize = int64(len(arch.Content))
	return &arch, nil
}

// CountArchives returns the number of archived versions of a URL.
func (s *Store) CountArchives(ctx context.Context, url string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM archive WHERE url = ?`, url).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count archives: %w", err)
	}
	return count, nil
}
