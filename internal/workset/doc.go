// Package workset loads the CSV work set that drives a batch run.
//
// Each row is one compound record: stable key, label (possibly several
// synonyms joined by " or "), optional InChIKey, and optional plant
// provenance. Items are immutable once loaded.
package workset
