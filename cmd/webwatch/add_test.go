package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sonodak/webwatch/internal/store"
)

// TestNewAddCmd tests the add command creation.
func TestNewAddCmd(t *testing.T) {
	t.Parallel()

	cmd := NewAddCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "add URL..." {
			t.Errorf("expected use 'add URL...', got %q", cmd.Use)
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
		c := NewAddCmd()
		c.SetArgs([]string{})
		c.SetOut(bytes.NewBuffer(nil))
		c.SetErr(bytes.NewBuffer(nil))
		if err := c.Execute(); err == nil {
			t.Error("expected error without arguments")
		}
	})
}

// TestRunAddCmd tests the add command execution.
func TestRunAddCmd(t *testing.T) {
	// Note: Not using t.Parallel() because this test captures os.Stdout

	t.Run("adds urls to the watch list", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "webwatch.db")

		cmd := NewAddCmd()
		cmd.SetArgs([]string{"--db", dbPath, "https://example.com/news", "https://example.com/blog"})

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

		if !strings.Contains(buf.String(), "Added 2 url(s).") {
			t.Errorf("expected addition notice, got %q", buf.String())
		}

		st, err := store.Open(dbPath, store.DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer st.Close()

		count, err := st.CountWatched(context.Background())
		if err != nil {
			t.Fatalf("CountWatched() error = %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2 watched urls, got %d", count)
		}
	})

	t.Run("counts repeated urls as requests", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "webwatch.db")

		cmd := NewAddCmd()
		cmd.SetArgs([]string{"--db", dbPath, "https://example.com/news", "https://example.com/news"})

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

		if !strings.Contains(buf.String(), "Added 2 url(s).") {
			t.Errorf("expected request count of 2, got %q", buf.String())
		}

		st, err := store.Open(dbPath, store.DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer st.Close()

		count, err := st.CountWatched(context.Background())
		if err != nil {
			t.Fatalf("CountWatched() error = %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 distinct watched url, got %d", count)
		}
	})
}
