// Package services hosts the external lookup clients and the error taxonomy
// shared by everything that talks to them.
//
// Lookup failures are expected and recovered close to where they happen; the
// sentinel errors here exist so callers can tell a transient source problem
// apart from configuration mistakes that should abort the run.
package services
