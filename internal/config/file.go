package config

import (
	"fmt"
	"time"
)

// PageConfig holds per-URL configuration for a single watched page.
type PageConfig struct {
	// Window overrides the global staleness window, in minutes, for this
	// page. If zero, the global window is used.
	Window int `yaml:"window,omitempty"`
}

// File represents the structure of the .webwatch configuration file.
type File struct {
	// Database is the SQLite database file path.
	Database string `yaml:"database,omitempty"`

	// Window is the staleness window in minutes applied to every page
	// without a per-page override.
	Window int `yaml:"window,omitempty"`

	// Timeout is the per-request HTTP timeout in Go duration syntax,
	// e.g. "30s" or "2m".
	Timeout string `yaml:"timeout,omitempty"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `yaml:"user_agent,omitempty"`

	// MaxBodyBytes is the maximum response body size in bytes to read.
	MaxBodyBytes int64 `yaml:"max_body_bytes,omitempty"`

	// Pages maps watched URLs to their page-specific configurations.
	// Keys are the full URL as stored in the watch list.
	Pages map[string]PageConfig `yaml:"pages,omitempty"`
}

// Apply overlays the file values onto c. Only keys present in the file
// override the current values, so defaults survive a sparse file and CLI
// flags applied afterwards win over the file.
func (f *File) Apply(c *Config) error {
	if f.Database != "" {
		c.DBPath = f.Database
	}
	if f.Window > 0 {
		c.WindowMinutes = f.Window
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("parse timeout %q: %w", f.Timeout, err)
		}
		c.Timeout = d
	}
	if f.UserAgent != "" {
		c.UserAgent = f.UserAgent
	}
	if f.MaxBodyBytes > 0 {
		c.MaxBodyBytes = f.MaxBodyBytes
	}
	c.Pages = f
	return nil
}

// PageWindows returns the per-URL staleness window overrides from the
// pages section. URLs without a positive override are absent from the map.
// A nil receiver yields an empty map, so callers without a config file can
// pass the result straight through.
func (f *File) PageWindows() map[string]int {
	if f == nil {
		return map[string]int{}
	}
	windows := make(map[string]int, len(f.Pages))
	for url, page := range f.Pages {
		if page.Window > 0 {
			windows[url] = page.Window
		}
	}
	return windows
}
