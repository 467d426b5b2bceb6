// Package aggregate collapses raw lookup rows into a deterministic, ordered
// set of unique entries.
//
// The same compound frequently arrives several times, once per literature
// reference and once per synonym queried. Entries are keyed by (label, title,
// DOI); the first occurrence wins and insertion order is preserved, so
// aggregation over a fixed input is stable across runs.
package aggregate
