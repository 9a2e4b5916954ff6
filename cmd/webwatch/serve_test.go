package main

import (
	"strings"
	"testing"

	"github.com/sonodak/webwatch/internal/config"
)

// TestNewServeCmd tests the serve command creation.
func TestNewServeCmd(t *testing.T) {
	t.Parallel()

	cmd := NewServeCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "serve" {
			t.Errorf("expected use 'serve', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("documents the endpoints", func(t *testing.T) {
		t.Parallel()
		for _, endpoint := range []string{"/healthz", "/api/watchlist", "/api/snapshot", "/view/snapshot"} {
			if !strings.Contains(cmd.Long, endpoint) {
				t.Errorf("expected long description to mention %q", endpoint)
			}
		}
	})

	t.Run("has addr flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("addr")
		if flag == nil {
			t.Fatal("expected addr flag")
		}
		if flag.DefValue != config.DefaultServeAddr {
			t.Errorf("expected default %q, got %q", config.DefaultServeAddr, flag.DefValue)
		}
	})

	t.Run("has db flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("db") == nil {
			t.Error("expected db flag")
		}
	})
}
