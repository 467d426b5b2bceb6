// Package main hosts the alkaloid CLI entrypoint and command graph.
//
// The Cobra-based command tree wires configuration, logging, the rate
// limiter, and the lookup clients together, then hands the assembled
// pipeline to the batch runner. Subcommands cover the enrichment run
// itself, checkpoint inspection, and configuration scaffolding.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
