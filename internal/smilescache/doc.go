// Package smilescache persists successful lookup responses in SQLite so an
// interrupted run does not repeat PubChem calls it already paid for.
//
// The cache is an accelerator only. Resume correctness comes exclusively
// from scanning the output report; deleting the cache file is always safe.
package smilescache
