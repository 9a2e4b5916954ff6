package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sonodak/webwatch/internal/store"
)

// TestNewRemoveCmd tests the remove command creation.
func TestNewRemoveCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRemoveCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "remove URL..." {
			t.Errorf("expected use 'remove URL...', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("has db flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("db") == nil {
			t.Error("expected db flag")
		}
	})

	t.Run("requires at least one argument", func(t *testing.T) {
		t.Parallel()
		c := NewRemoveCmd()
		c.SetArgs([]string{})
		c.SetOut(bytes.NewBuffer(nil))
		c.SetErr(bytes.NewBuffer(nil))
		if err := c.Execute(); err == nil {
			t.Error("expected error without arguments")
		}
	})
}

// TestRunRemoveCmd tests the remove command execution.
func TestRunRemoveCmd(t *testing.T) {
	// Note: Not using t.Parallel() because this test captures os.Stdout

	t.Run("removes a watched url but keeps its history", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "webwatch.db")
		url := "https://example.com/news"

		st, err := store.Open(dbPath, store.DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		ctx := context.Background()
		now := time.Now()
		st.AddWatched(ctx, []string{url}, now)
		if _, err := st.WriteSnapshot(ctx, url, "News", "<html>v1</html>", now); err != nil {
			t.Fatalf("WriteSnapshot() error = %v", err)
		}
		if err := st.Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}

		cmd := NewRemoveCmd()
		cmd.SetArgs([]string{"--db", dbPath, url})

		// Capture stdout
		oldStdout := os.Stdout
		r, w, _ := os.Pipe()
		os.Stdout = w

		err = cmd.Execute()

		w.Close()
		os.Stdout = oldStdout

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		r.Close()

		if !strings.Contains(buf.String(), "Deleted 1 url(s).") {
			t.Errorf("expected deletion notice, got %q", buf.String())
		}

		st, err = store.Open(dbPath, store.DefaultOptions())
		if err != nil {
			t.Fatalf("failed to reopen database: %v", err)
		}
		defer st.Close()

		count, err := st.CountWatched(ctx)
		if err != nil {
			t.Fatalf("CountWatched() error = %v", err)
		}
		if count != 0 {
			t.Errorf("expected empty watch list, got %d entries", count)
		}

		// Snapshot survives removal from the watch list
		snap, err := st.GetSnapshot(ctx, url)
		if err != nil {
			t.Fatalf("GetSnapshot() error = %v", err)
		}
		if snap == nil {
			t.Error("expected snapshot to survive watch list removal")
		}
	})

	t.Run("counts removal of an unknown url", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "webwatch.db")

		cmd := NewRemoveCmd()
		cmd.SetArgs([]string{"--db", dbPath, "https://example.com/unknown"})

		// Capture stdout
		oldStdout := os.Stdout
		r, w, _ := os.Pipe()
		os.Stdout = w

		err := cmd.Execute()

		w.Close()
		os.Stdout = oldStdout

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		r.Close()

		// The delete statement ran, so the attempt counts even though no
		// row matched.
		if !strings.Contains(buf.String(), "Deleted 1 url(s).") {
			t.Errorf("expected deletion notice, got %q", buf.String())
		}
	})
}
