// Package monitor implements the per-URL change detection cycle.
//
// For each watched URL, one evaluation decides whether to fetch at all
// (staleness window), then classifies the fetched content against the
// stored snapshot: first successful fetch stores a new snapshot, a hash
// mismatch archives the old version and stores the new one, an identical
// hash leaves stored state untouched. URLs are evaluated strictly in
// sequence; a run is a single pass over the watch list.
package monitor
