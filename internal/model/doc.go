// Package model defines the core data structures used throughout webwatch.
//
// This package contains the following main types:
//   - WatchedURL: An entry in the watch list with its last evaluation time
//   - Snapshot: The current stored content of a URL with its hash
//   - ArchivedSnapshot: A superseded snapshot preserved in the archive
//   - URLResult: The structured outcome of evaluating one URL
//   - RunReport: The aggregate result of one monitoring run
//
// The models are designed to be serializable to JSON for report output.
// Multiple packages (store, monitor, report, server) share these types,
// so centralizing them prevents import cycles.
package model
