package structure

import "fmt"

// Error reports a folder that could not be created.
type Error struct {
	// Path is the directory that failed.
	Path string
	// Cause is the underlying filesystem error.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("failed to create folder %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *Error) Unwrap() error {
	return e.Cause
}
