// Package config loads, normalizes, and validates alkaloid configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// ALKALOID_WORKSET. The Config type centralizes every knob the CLI needs, so
// downstream code receives sanitized paths and clear validation errors.
package config
