package store

import (
	"context"
	"testing"
	"time"

	"github.com/sonodak/webwatch/internal/digest"
)

// TestGetSnapshot tests snapshot retrieval.
func TestGetSnapshot(t *testing.T) {
	t.Parallel()

	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("returns nil for a url that was never fetched", func(t *testing.T) {
		snap, err := s.GetSnapshot(ctx, "http://example.com/never-fetched")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap != nil {
			t.Errorf("expected nil snapshot, got %+v", snap)
		}
	})

	t.Run("returns the stored snapshot", func(t *testing.T) {
		fetchedAt := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
		written, err := s.WriteSnapshot(ctx, "http://example.com/page", "Example Page", "<html>hello</html>", fetchedAt)
		if err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}

		snap, err := s.GetSnapshot(ctx, "http://example.com/page")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap == nil {
			t.Fatal("expected snapshot, got nil")
		}
		if snap.URL != "http://example.com/page" {
			t.Errorf("expected url to round-trip, got %q", snap.URL)
		}
		if snap.Title != "Example Page" {
			t.Errorf("expected title to round-trip, got %q", snap.Title)
		}
		if snap.Content != "<html>hello</html>" {
			t.Errorf("expected content to round-trip, got %q", snap.Content)
		}
		if snap.ContentHash != written.ContentHash {
			t.Errorf("expected hash %q, got %q", written.ContentHash, snap.ContentHash)
		}
		if snap.FetchedAt.UnixMilli() != fetchedAt.UnixMilli() {
			t.Errorf("expected fetched_at %v, got %v", fetchedAt, snap.FetchedAt)
		}
	})
}

// TestWriteSnapshot tests snapshot creation.
func TestWriteSnapshot(t *testing.T) {
	t.Parallel()

	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("computes the content hash", func(t *testing.T) {
		snap, err := s.WriteSnapshot(ctx, "http://example.com/hash", "", "hello", time.Now())
		if err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}

		if snap.ContentHash != digest.ContentString("hello") {
			t.Errorf("expected hash of content, got %q", snap.ContentHash)
		}
	})

	t.Run("writing a second snapshot for the same url fails", func(t *testing.T) {
		url := "http://example.com/duplicate"
		if _, err := s.WriteSnapshot(ctx, url, "", "v1", time.Now()); err != nil {
			t.Fatalf("failed to write first snapshot: %v", err)
		}

		if _, err := s.WriteSnapshot(ctx, url, "", "v2", time.Now()); err == nil {
			t.Error("expected uniqueness violation for second snapshot")
		}
	})
}
