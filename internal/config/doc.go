// Package config provides configuration structures and utilities for webwatch.
// It defines the runtime options for monitoring runs, the YAML configuration
// file format, and the XDG base directory paths used for persistent state.
package config
