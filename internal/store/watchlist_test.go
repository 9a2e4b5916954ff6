package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestAddWatched tests watch list insertion.
func TestAddWatched(t *testing.T) {
	t.Parallel()

	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("added url appears in listing exactly once", func(t *testing.T) {
		now := time.Now()

		result := s.AddWatched(ctx, []string{"http://example.com/news"}, now)
		if result.Requested != 1 {
			t.Errorf("expected 1 requested, got %d", result.Requested)
		}
		if len(result.Failures) != 0 {
			t.Fatalf("unexpected failures: %v", result.Failures)
		}

		watched, err := s.ListWatched(ctx)
		if err != nil {
			t.Fatalf("failed to list watched urls: %v", err)
		}
		if len(watched) != 1 {
			t.Fatalf("expected 1 watched url, got %d", len(watched))
		}
		if watched[0].URL != "http://example.com/news" {
			t.Errorf("expected added url, got %q", watched[0].URL)
		}
	})

	t.Run("adding the same url twice keeps one row and refreshes the timestamp", func(t *testing.T) {
		first := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
		second := time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC)

		s.AddWatched(ctx, []string{"http://example.com/about"}, first)
		result := s.AddWatched(ctx, []string{"http://example.com/about"}, second)

		if result.Requested != 1 {
			t.Errorf("expected requested count 1 even for an existing url, got %d", result.Requested)
		}
		if len(result.Failures) != 0 {
			t.Fatalf("unexpected failures: %v", result.Failures)
		}

		lastChecked, err := s.GetLastChecked(ctx, "http://example.com/about")
		if err != nil {
			t.Fatalf("failed to get last checked: %v", err)
		}
		if lastChecked.UnixMilli() != second.UnixMilli() {
			t.Errorf("expected refreshed timestamp %v, got %v", second, lastChecked)
		}

		watched, err := s.ListWatched(ctx)
		if err != nil {
			t.Fatalf("failed to list watched urls: %v", err)
		}
		count := 0
		for _, w := range watched {
			if w.URL == "http://example.com/about" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("expected url to appear once, got %d rows", count)
		}
	})

	t.Run("multiple urls in one batch", func(t *testing.T) {
		urls := []string{"http://a.example.com", "http://b.example.com", "http://c.example.com"}

		result := s.AddWatched(ctx, urls, time.Now())
		if result.Requested != 3 {
			t.Errorf("expected 3 requested, got %d", result.Requested)
		}
		if result.Succeeded() != 3 {
			t.Errorf("expected 3 succeeded, got %d", result.Succeeded())
		}
	})
}

// TestRemoveWatched tests watch list deletion.
func TestRemoveWatched(t *testing.T) {
	t.Parallel()

	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("removed url no longer appears in listing", func(t *testing.T) {
		s.AddWatched(ctx, []string{"http://example.com/gone"}, time.Now())

		result := s.RemoveWatched(ctx, []string{"http://example.com/gone"})
		if result.Requested != 1 {
			t.Errorf("expected 1 requested, got %d", result.Requested)
		}
		if len(result.Failures) != 0 {
			t.Fatalf("unexpected failures: %v", result.Failures)
		}

		watched, err := s.ListWatched(ctx)
		if err != nil {
			t.Fatalf("failed to list watched urls: %v", err)
		}
		for _, w := range watched {
			if w.URL == "http://example.com/gone" {
				t.Error("expected url to be removed from listing")
			}
		}
	})

	t.Run("removing a non-existent url is a no-op", func(t *testing.T) {
		result := s.RemoveWatched(ctx, []string{"http://example.com/never-added"})

		if result.Requested != 1 {
			t.Errorf("expected 1 requested, got %d", result.Requested)
		}
		if len(result.Failures) != 0 {
			t.Errorf("expected no failures for missing url, got %v", result.Failures)
		}
	})

	t.Run("removal leaves archive rows in place", func(t *testing.T) {
		url := "http://example.com/archived-then-removed"
		s.AddWatched(ctx, []string{url}, time.Now())
		if _, err := s.WriteSnapshot(ctx, url, "t", "content", time.Now()); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}
		if _, err := s.ArchiveAndClear(ctx, url, time.Now()); err != nil {
			t.Fatalf("failed to archive: %v", err)
		}

		s.RemoveWatched(ctx, []string{url})

		count, err := s.CountArchives(ctx, url)
		if err != nil {
			t.Fatalf("failed to count archives: %v", err)
		}
		if count != 1 {
			t.Errorf("expected archive row to survive removal, got %d rows", count)
		}
	})
}

// TestGetLastChecked tests last-checked lookups.
func TestGetLastChecked(t *testing.T) {
	t.Parallel()

	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("returns the stored timestamp", func(t *testing.T) {
		now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
		s.AddWatched(ctx, []string{"http://example.com/checked"}, now)

		lastChecked, err := s.GetLastChecked(ctx, "http://example.com/checked")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastChecked.UnixMilli() != now.UnixMilli() {
			t.Errorf("expected %v, got %v", now, lastChecked)
		}
	})

	t.Run("returns ErrNotWatched for unknown url", func(t *testing.T) {
		_, err := s.GetLastChecked(ctx, "http://example.com/unknown")
		if !errors.Is(err, ErrNotWatched) {
			t.Errorf("expected ErrNotWatched, got %v", err)
		}
	})
}

// TestTouchLastChecked tests timestamp refreshing.
func TestTouchLastChecked(t *testing.T) {
	t.Parallel()

	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("refreshes the stored timestamp", func(t *testing.T) {
		added := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
		touched := time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)

		s.AddWatched(ctx, []string{"http://example.com/touch"}, added)
		if err := s.TouchLastChecked(ctx, "http://example.com/touch", touched); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lastChecked, err := s.GetLastChecked(ctx, "http://example.com/touch")
		if err != nil {
			t.Fatalf("failed to get last checked: %v", err)
		}
		if lastChecked.UnixMilli() != touched.UnixMilli() {
			t.Errorf("expected %v, got %v", touched, lastChecked)
		}
	})

	t.Run("returns ErrNotWatched for unknown url", func(t *testing.T) {
		err := s.TouchLastChecked(ctx, "http://example.com/untouched", time.Now())
		if !errors.Is(err, ErrNotWatched) {
			t.Errorf("expected ErrNotWatched, got %v", err)
		}
	})
}

// TestCountWatched tests the watch list counter.
func TestCountWatched(t *testing.T) {
	t.Parallel()

	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	count, err := s.CountWatched(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 watched urls, got %d", count)
	}

	s.AddWatched(ctx, []string{"http://a.example.com", "http://b.example.com"}, time.Now())

	count, err = s.CountWatched(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 watched urls, got %d", count)
	}
}
