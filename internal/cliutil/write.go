// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// StdinPath is the special file path argument that means "read from stdin".
const StdinPath = "-"

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// DisplayPath returns a display-friendly form of a spec path argument.
// Returns "<stdin>" for StdinPath, otherwise the path as-is.
func DisplayPath(path string) string {
	if path == StdinPath {
		return "<stdin>"
	}
	return path
}
