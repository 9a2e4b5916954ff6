package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// setupTestStore creates a temporary database for testing.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "webwatch.db")

	s, err := Open(dbPath, DefaultOptions())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

// TestOpen tests database opening and creation.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database file in new directory", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "newdir", "subdir", "webwatch.db")

		s, err := Open(dbPath, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open store: %v", err)
		}
		defer s.Close()

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			t.Error("database file was not created")
		}
		if s.Path() != dbPath {
			t.Errorf("expected path %q, got %q", dbPath, s.Path())
		}
	})

	t.Run("CreateIfNotExists=false returns error when database does not exist", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "missing", "webwatch.db")

		opts := Options{
			CreateIfNotExists: false,
			EnableWAL:         true,
		}

		_, err := Open(dbPath, opts)
		if err == nil {
			t.Fatal("expected error when CreateIfNotExists=false and database does not exist")
		}
		if !strings.Contains(err.Error(), "database not found") {
			t.Errorf("expected error to mention missing database, got %q", err.Error())
		}
	})

	t.Run("CreateIfNotExists=false opens existing database", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "webwatch.db")

		s1, err := Open(dbPath, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}

		ctx := context.Background()
		now := time.Now()
		if result := s1.AddWatched(ctx, []string{"http://example.com"}, now); len(result.Failures) != 0 {
			t.Fatalf("failed to add url: %v", result.Failures[0].Err)
		}
		if err := s1.Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}

		s2, err := Open(dbPath, Options{CreateIfNotExists: false, EnableWAL: true})
		if err != nil {
			t.Fatalf("failed to reopen database: %v", err)
		}
		defer s2.Close()

		watched, err := s2.ListWatched(ctx)
		if err != nil {
			t.Fatalf("failed to list watched urls: %v", err)
		}
		if len(watched) != 1 {
			t.Errorf("expected 1 watched url after reopen, got %d", len(watched))
		}
	})
}

// TestDefaultOptions tests the default database options.
func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()

	if !opts.CreateIfNotExists {
		t.Error("expected CreateIfNotExists to be true by default")
	}
	if !opts.EnableWAL {
		t.Error("expected EnableWAL to be true by default")
	}
}
