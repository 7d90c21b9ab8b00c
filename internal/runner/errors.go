package runner

import (
	"fmt"
	"strings"
)

// Error reports an external command that could not run or exited non-zero.
type Error struct {
	// Command is the command line that failed.
	Command string
	// ExitCode is the process exit status (0 when the process never ran).
	ExitCode int
	// Stderr is the tail of the captured standard error.
	Stderr string
	// Cause is set when the process could not be started or was canceled.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("command %q", e.Command)
	switch {
	case e.Cause != nil:
		msg += fmt.Sprintf(" failed: %v", e.Cause)
	default:
		msg += fmt.Sprintf(" exited with status %d", e.ExitCode)
	}
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}

const stderrTailLines = 5

func tail(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > stderrTailLines {
		lines = lines[len(lines)-stderrTailLines:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
