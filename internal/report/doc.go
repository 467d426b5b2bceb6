// Package report owns the append-only output file: its section format, the
// writer that appends to it, and the checkpoint scan that derives the set of
// completed items from it.
//
// The file doubles as the resume state. Every completed item occupies one
// section opened by a COMPOUND # marker and closed by an explicit terminator
// line; only terminated sections count as done, so a run killed mid-write is
// re-processed instead of silently lost. The format and the scanner live in
// one package because they must never drift apart.
package report
