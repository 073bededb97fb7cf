package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrValidation = errors.New("validation error")

	// ErrUpstreamTransport marks failures to reach the dictionary provider or
	// to read its response: timeouts, DNS, refused connections, undecodable bodies.
	ErrUpstreamTransport = errors.New("upstream error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// UpstreamStatusError is returned when the provider answers with a 4xx or 5xx status.
// The HTTP boundary propagates StatusCode to its own caller unchanged.
type UpstreamStatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *UpstreamStatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	if e.URL == "" {
		return fmt.Sprintf("upstream status %s", status)
	}
	return fmt.Sprintf("upstream status %s for url: %s", status, e.URL)
}

// UpstreamTransportError wraps a failure to reach the provider or to read its
// response. It matches ErrUpstreamTransport with errors.Is.
type UpstreamTransportError struct {
	Err error
}

// NewUpstreamTransportError wraps err as an UpstreamTransportError.
func NewUpstreamTransportError(err error) *UpstreamTransportError {
	return &UpstreamTransportError{Err: err}
}

func (e *UpstreamTransportError) Error() string {
	return "upstream error: " + e.Err.Error()
}

func (e *UpstreamTransportError) Unwrap() error { return e.Err }

func (e *UpstreamTransportError) Is(target error) bool { return target == ErrUpstreamTransport }
