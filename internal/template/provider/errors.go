package provider

import (
	"errors"
	"fmt"
)

// ProviderErrorType represents the type of provider error.
type ProviderErrorType int

const (
	// ProviderFetchFailed indicates the template could not be fetched.
	ProviderFetchFailed ProviderErrorType = iota
	// ProviderNotFound indicates no template exists for the identifier.
	ProviderNotFound
	// ProviderTimeout indicates the operation timed out.
	ProviderTimeout
	// ProviderInvalidPayload indicates the payload failed to decode or validate.
	ProviderInvalidPayload
	// ProviderUnsupported indicates the (framework, provider) pair is not in the matrix.
	ProviderUnsupported
)

// String returns the string representation of the error type.
func (t ProviderErrorType) String() string {
	switch t {
	case ProviderFetchFailed:
		return "FetchFailed"
	case ProviderNotFound:
		return "NotFound"
	case ProviderTimeout:
		return "Timeout"
	case ProviderInvalidPayload:
		return "InvalidPayload"
	case ProviderUnsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// ProviderError represents a provider-specific error.
type ProviderError struct {
	// Type is the error type classification.
	Type ProviderErrorType
	// Message is the human-readable error message.
	Message string
	// Provider is the provider name (e.g., "registry", "local").
	Provider string
	// Location is the URL or file that caused the error.
	Location string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider error [%s] for '%s': %s (caused by: %v)",
			e.Provider, e.Type.String(), e.Location, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider error [%s] for '%s': %s",
		e.Provider, e.Type.String(), e.Location, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a new ProviderError.
func NewProviderError(typ ProviderErrorType, provider, location, message string, cause error) *ProviderError {
	return &ProviderError{
		Type:     typ,
		Message:  message,
		Provider: provider,
		Location: location,
		Cause:    cause,
	}
}

// NewFetchError creates a fetch failed error.
func NewFetchError(provider, location string, cause error) *ProviderError {
	return NewProviderError(ProviderFetchFailed, provider, location, "failed to fetch template", cause)
}

// NewNotFoundError creates a not found error.
func NewNotFoundError(provider, location string) *ProviderError {
	return NewProviderError(ProviderNotFound, provider, location, "template not found", nil)
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(provider, location string, cause error) *ProviderError {
	return NewProviderError(ProviderTimeout, provider, location, "operation timed out", cause)
}

// NewInvalidPayloadError creates an invalid payload error.
func NewInvalidPayloadError(provider, location, message string, cause error) *ProviderError {
	return NewProviderError(ProviderInvalidPayload, provider, location, message, cause)
}

// ResolutionError is returned when every source failed to produce a payload.
type ResolutionError struct {
	// ID is the template identifier that was requested.
	ID string
	// Attempts holds one error per source, in the order tried.
	Attempts []error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not resolve template %q: %v", e.ID, errors.Join(e.Attempts...))
}

// Unwrap exposes the per-source errors to errors.Is and errors.As.
func (e *ResolutionError) Unwrap() []error {
	return e.Attempts
}
