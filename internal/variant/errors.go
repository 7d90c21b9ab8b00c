package variant

import "fmt"

// ErrorType categorizes registry errors.
type ErrorType int

const (
	// UnknownVariant indicates an unsupported (framework, language) pair.
	UnknownVariant ErrorType = iota
	// InvalidStack indicates a --stack value that cannot be parsed.
	InvalidStack
)

// Error represents a registry lookup failure.
type Error struct {
	// Type categorizes the error.
	Type ErrorType
	// Framework is the requested framework.
	Framework string
	// Language is the requested language.
	Language string
	// Input is the raw stack string for InvalidStack errors.
	Input string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Type {
	case InvalidStack:
		return fmt.Sprintf("invalid stack %q (expected <framework>-<language>, e.g. react-ts)", e.Input)
	default:
		return fmt.Sprintf("unknown variant: framework=%q language=%q (supported: %v)", e.Framework, e.Language, Stacks())
	}
}

// Is matches errors of the same Type, so errors.Is(err, ErrUnknownVariant) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Type == e.Type
}

// ErrUnknownVariant is the sentinel for UnknownVariant errors.
var ErrUnknownVariant = &Error{Type: UnknownVariant}

// ErrInvalidStack is the sentinel for InvalidStack errors.
var ErrInvalidStack = &Error{Type: InvalidStack}
