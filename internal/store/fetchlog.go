package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sonodak/webwatch/internal/model"
)

// InsertFetchRecord appends a record of one attempted fetch to the log.
// A UUID is assigned to the record when its ID is empty.
func (s *Store) InsertFetchRecord(ctx context.Context, rec *model.FetchRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}

	query := `
	INSERT INTO fetch_log (id, url, outcome, status_code, content_hash, error, duration_ms, fetched_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		rec.ID,
		rec.URL,
		string(rec.Outcome),
		rec.StatusCode,
		rec.ContentHash,
		rec.Error,
		rec.Duration.Milliseconds(),
		rec.FetchedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert fetch record: %w", err)
	}

	return nil
}

// ListFetchRecords returns fetch log entries, newest first.
// An empty url matches all URLs. A non-positive limit returns every entry.
func (s *Store) ListFetchRecords(ctx context.Context, url string, limit int) ([]model.FetchRecord, error) {
	query := `
	SELECT id, url, outcome, status_code, content_hash, error, duration_ms, fetched_at
	FROM fetch_log
	WHERE 1=1
	`
	args := make([]interface{}, 0)

	if url != "" {
		query += " AND url = ?"
		args = append(args, url)
	}

	query += " ORDER BY fetched_at DESC, rowid DESC"

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list fetch records: %w", err)
	}
	defer rows.Close()

	var records []model.FetchRecord
	for rows.Next() {
		var rec model.FetchRecord
		var outcome string
		var durationMS, fetchedAt int64
		err := rows.Scan(
			&rec.ID,
			&rec.URL,
			&outcome,
			&rec.StatusCode,
			&rec.ContentHash,
			&rec.Error,
			&durationMS,
			&fetchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fetch record: %w", err)
		}
		rec.Outcome = model.Outcome(outcome)
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		rec.FetchedAt = time.UnixMilli(fetchedAt)
		records = append(records, rec)
	}

	return records, rows.Err()
}
