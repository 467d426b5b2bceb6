// Package logging constructs the slog loggers used across alkaloid.
//
// It maps config values onto handler choices (console text or JSON), exposes
// typed attribute helpers so call sites stay terse, and provides a no-op
// logger for components that tolerate a nil logger.
package logging
