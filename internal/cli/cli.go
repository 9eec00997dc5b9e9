// Package cli holds the plumbing shared by the commands: a stderr logger
// and output destination handling. Standard output is reserved for the
// generated data so it can be captured verbatim.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a text logger writing to w. Verbose enables debug
// records; otherwise only warnings and errors are emitted.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Output opens path for writing. An empty path or "-" selects stdout, which
// is not closed by the returned Close.
func Output(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}

	return f, nil
}

// Fail prints "<tool>: <err>" and a usage line to stderr and returns the
// exit status for a failed run.
func Fail(stderr io.Writer, tool, usage string, err error) int {
	_, _ = fmt.Fprintf(stderr, "%s: %v\n", tool, err)
	if usage != "" {
		_, _ = fmt.Fprintf(stderr, "Usage: %s %s\n", tool, usage)
	}
	return 1
}
