// Package errors provides error handling utilities.
package errors

import (
	"errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeNotFound indicates a generic name has no mapping for a provider
	TypeNotFound Type = "NOT_FOUND"

	// TypeNoFit indicates no instance type satisfies an explicit cores/memory request
	TypeNoFit Type = "NO_FIT"

	// TypeNoGPU indicates the provider offers no GPU SKU satisfying the request
	TypeNoGPU Type = "NO_GPU"

	// TypeUnmappedImage indicates the generic image name has no provider mapping
	TypeUnmappedImage Type = "UNMAPPED_IMAGE"

	// TypeUnmappedLocation indicates the generic location has no provider mapping
	TypeUnmappedLocation Type = "UNMAPPED_LOCATION"

	// TypeNoEligibleProvider indicates no provider survived candidate filtering
	TypeNoEligibleProvider Type = "NO_ELIGIBLE_PROVIDER"

	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeEmit indicates an infrastructure-code emission error
	TypeEmit Type = "EMIT_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error (or anything it wraps) is of a specific type
func IsType(err error, t Type) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// Domain extracts the typed domain error, seeing through wrapping
func Domain(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// TypeOf returns the domain type of an error, or TypeInternal for foreign errors
func TypeOf(err error) Type {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// NotFound creates a lookup error carrying the unresolved key and provider
func NotFound(kind, key, provider string) *Error {
	return Newf(TypeNotFound, "%s not found: %q", kind, key).
		WithContext("key", key).
		WithContext("provider", provider)
}

// NoFit creates a nearest-fit failure for an explicit cores/memory request
func NoFit(provider string, cores int, memoryGB float64) *Error {
	return Newf(TypeNoFit, "no instance type with >= %d vCPU and >= %.1f GB on %s", cores, memoryGB, provider).
		WithContext("provider", provider)
}

// NoGPU creates a GPU resolution failure
func NoGPU(provider, gpuType string, count int) *Error {
	return Newf(TypeNoGPU, "no GPU SKU for type %q count %d on %s", gpuType, count, provider).
		WithContext("provider", provider)
}

// NoEligibleProvider creates a selection failure
func NoEligibleProvider(message string) *Error {
	return New(TypeNoEligibleProvider, message)
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
