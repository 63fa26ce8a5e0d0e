// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeValidation indicates a rejected local input (empty identifier etc.)
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeTransport indicates a failed or rejected network call
	TypeTransport Type = "TRANSPORT_ERROR"

	// TypeApplication indicates a server-reported error body
	TypeApplication Type = "APPLICATION_ERROR"

	// TypeRender indicates a malformed payload field during display derivation
	TypeRender Type = "RENDER_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// GenericMessage is the banner text for failures without a server message.
const GenericMessage = "Error connecting to server. Please try again."

// Error represents a client error with context
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

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(TypeValidation, message)
}

// Transport creates a transport error
func Transport(message string, cause error) *Error {
	return Wrap(TypeTransport, message, cause)
}

// Application creates an application error carrying the server message verbatim
func Application(message string) *Error {
	return New(TypeApplication, message)
}

// Render creates a render error
func Render(message string, cause error) *Error {
	return Wrap(TypeRender, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}

// UserMessage returns the text shown in the error banner for err.
// Application errors surface the server message verbatim; everything
// else collapses to the generic network-failure message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := err.(*Error); ok && e.Type == TypeApplication && e.Message != "" {
		return e.Message
	}
	return GenericMessage
}
