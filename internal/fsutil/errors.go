package fsutil

import "fmt"

// Op names the failed filesystem operation.
type Op string

const (
	// OpRead is a file read.
	OpRead Op = "read"
	// OpWrite is a file write.
	OpWrite Op = "write"
	// OpMkdir is a directory creation.
	OpMkdir Op = "mkdir"
	// OpReadDir is a directory listing.
	OpReadDir Op = "list"
)

// Error represents a filesystem failure.
type Error struct {
	// Op is the failed operation.
	Op Op
	// Path is the file or directory involved.
	Path string
	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying cause error for error unwrapping.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(op Op, path string, cause error) *Error {
	return &Error{Op: op, Path: path, Cause: cause}
}
