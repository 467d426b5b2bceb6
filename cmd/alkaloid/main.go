package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"alkaloid/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, renderError(err))
		}
		os.Exit(1)
	}
}

// renderError points operators at the configuration for errors that no
// retry can fix.
func renderError(err error) string {
	if services.IsFatal(err) {
		return err.Error() + "\nrun `alkaloid config validate` to check the configuration"
	}
	return err.Error()
}
