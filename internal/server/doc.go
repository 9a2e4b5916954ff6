// Package server exposes stored monitoring state over a local HTTP API.
//
// The server is read-only: it reports the watch list, current
// snapshots, archived versions, and the fetch log, but never mutates
// them. Monitoring itself stays in the run command. The /view endpoints
// render stored HTML content as Markdown for quick terminal inspection
// with curl.
package server
