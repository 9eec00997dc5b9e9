package testutil

import (
	"strings"
	"testing"
)

// Lines splits generator output into lines. A single trailing newline does
// not produce an empty final line.
func Lines(out []byte) []string {
	s := strings.TrimSuffix(string(out), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// RequireLines fails t unless every line index in want holds the expected
// text. Negative indices count from the end.
func RequireLines(t *testing.T, lines []string, want map[int]string) {
	t.Helper()
	for i, w := range want {
		j := i
		if j < 0 {
			j += len(lines)
		}
		if j < 0 || j >= len(lines) {
			t.Fatalf("line %d: out of range (%d lines)", i, len(lines))
		}
		if lines[j] != w {
			t.Errorf("line %d = %q, want %q", i, lines[j], w)
		}
	}
}
