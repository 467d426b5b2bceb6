package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSourceUnavailable marks lookup calls that failed for transient
	// reasons: network faults, timeouts, malformed responses.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrNotFound marks lookups that completed but matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrConfiguration marks problems that make the run impossible: missing
	// work set, unwritable output, bad endpoints.
	ErrConfiguration = errors.New("configuration error")
	// ErrItemFault marks unexpected per-item failures the orchestrator
	// isolates rather than propagating.
	ErrItemFault = errors.New("item processing fault")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrSourceUnavailable
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether err should abort the run before processing begins.
func IsFatal(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
