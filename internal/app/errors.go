package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ValidationFailed indicates invalid options (project name, directory).
	ValidationFailed AppErrorType = iota
	// UnknownVariant indicates an unsupported framework/language pair.
	UnknownVariant
	// GenerateFailed indicates the external project generator failed.
	GenerateFailed
	// InstallFailed indicates the base dependency install failed.
	InstallFailed
	// MaterializeFailed indicates the folder layout could not be created.
	MaterializeFailed
	// StarterWriteFailed indicates the starter files could not be written.
	StarterWriteFailed
	// ConfigInitFailed indicates the configuration file could not be written.
	ConfigInitFailed
	// Canceled indicates the run was interrupted.
	Canceled
)

var errorTypeNames = map[AppErrorType]string{
	ValidationFailed:   "ValidationFailed",
	UnknownVariant:     "UnknownVariant",
	GenerateFailed:     "GenerateFailed",
	InstallFailed:      "InstallFailed",
	MaterializeFailed:  "MaterializeFailed",
	StarterWriteFailed: "StarterWriteFailed",
	ConfigInitFailed:   "ConfigInitFailed",
	Canceled:           "Canceled",
}

// String returns the error type name.
func (t AppErrorType) String() string {
	if name, ok := errorTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AppErrorType(%d)", int(t))
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// NewUnknownVariantError creates an unknown variant error.
func NewUnknownVariantError(message string, cause error) *AppError {
	return NewAppError(UnknownVariant, message, cause)
}

// NewGenerateError creates a generator failure error.
func NewGenerateError(message string, cause error) *AppError {
	return NewAppError(GenerateFailed, message, cause)
}

// NewInstallError creates a dependency install error.
func NewInstallError(message string, cause error) *AppError {
	return NewAppError(InstallFailed, message, cause)
}

// NewMaterializeError creates a folder creation error.
func NewMaterializeError(message string, cause error) *AppError {
	return NewAppError(MaterializeFailed, message, cause)
}

// NewStarterWriteError creates a starter file write error.
func NewStarterWriteError(message string, cause error) *AppError {
	return NewAppError(StarterWriteFailed, message, cause)
}
