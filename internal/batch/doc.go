// Package batch orchestrates a resumable enrichment run over the work set.
//
// The Runner computes the completion set once at startup by scanning the
// existing output, skips items already persisted there, and processes the
// remainder strictly in work-set order: collect references, resolve the
// canonical SMILES through the fallback chain, deduplicate, append the
// section, update counters. Every item is flushed to the output before the
// next one starts, so the process can be killed at any point and resumed.
// A fault in a single item is isolated and counted, never fatal to the run.
package batch
