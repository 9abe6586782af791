package cli

import (
	"fmt"
	"os"
)

// LogErrf writes a diagnostic to stderr.
func LogErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

// LogErrln writes a diagnostic line to stderr.
func LogErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
