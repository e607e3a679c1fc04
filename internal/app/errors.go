package app

import (
	"errors"
	"fmt"

	"github.com/tacogips/billingkit/internal/template/generator"
)

// ErrCancelled is returned when the user aborts a prompt. It is the same
// sentinel the generator uses, so errors.Is works across layers.
var ErrCancelled = generator.ErrCancelled

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ValidationFailed indicates invalid input: an unsupported framework and
	// provider pair or a missing argument.
	ValidationFailed AppErrorType = iota
	// ResolutionFailed indicates neither the registry nor the local templates
	// produced a payload.
	ResolutionFailed
	// MaterializeFailed indicates every file of the payload failed to write.
	MaterializeFailed
	// InstallFailed indicates the package manager command failed.
	InstallFailed
	// BuildFailed indicates the registry export failed.
	BuildFailed
	// Cancelled indicates the user aborted the run.
	Cancelled
)

// String returns the string representation of the error type.
func (t AppErrorType) String() string {
	switch t {
	case ValidationFailed:
		return "ValidationFailed"
	case ResolutionFailed:
		return "ResolutionFailed"
	case MaterializeFailed:
		return "MaterializeFailed"
	case InstallFailed:
		return "InstallFailed"
	case BuildFailed:
		return "BuildFailed"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
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

// NewResolutionError creates a resolution error.
func NewResolutionError(message string, cause error) *AppError {
	return NewAppError(ResolutionFailed, message, cause)
}

// NewMaterializeError creates a materialize error.
func NewMaterializeError(message string, cause error) *AppError {
	return NewAppError(MaterializeFailed, message, cause)
}

// NewInstallError creates an install error.
func NewInstallError(message string, cause error) *AppError {
	return NewAppError(InstallFailed, message, cause)
}

// NewBuildError creates a build error.
func NewBuildError(message string, cause error) *AppError {
	return NewAppError(BuildFailed, message, cause)
}

// NewCancelledError wraps ErrCancelled.
func NewCancelledError() *AppError {
	return NewAppError(Cancelled, "operation cancelled", ErrCancelled)
}

// IsCancelled reports whether err is a user cancellation.
func IsCancelled(err error) bool {
	if errors.Is(err, ErrCancelled) {
		return true
	}
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == Cancelled
}

// ErrorType returns the AppErrorType of err, if it is an *AppError.
func ErrorType(err error) (AppErrorType, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type, true
	}
	return 0, false
}
