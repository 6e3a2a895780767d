package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorKind represents stable error codes for all failure modes
type ErrorKind string

const (
	// Configuration indicates the engine artifact is missing/unreadable or the config document is bad
	Configuration ErrorKind = "CONFIGURATION"
	// Validation indicates an unknown vcs/analysis kind or a missing input file
	Validation ErrorKind = "VALIDATION"
	// Execution indicates the external process returned a non-zero exit status
	Execution ErrorKind = "EXECUTION"
	// Timeout indicates the external process exceeded its deadline
	Timeout ErrorKind = "TIMEOUT"
	// Parse indicates the engine's tabular output could not be decoded
	Parse ErrorKind = "PARSE"
)

// MaatError represents a failure with a stable kind, message, and optional cause.
// Execution failures additionally carry the captured standard-error text so the
// engine's own diagnostic is not lost.
type MaatError struct {
	Kind    ErrorKind   `json:"kind"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Stderr  string      `json:"stderr,omitempty"`
	cause   error       // Underlying error (not exported to JSON)
}

// NewMaatError creates a new MaatError
func NewMaatError(kind ErrorKind, message string, cause error) *MaatError {
	return &MaatError{
		Kind:    kind,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *MaatError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	if e.Stderr != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Stderr)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *MaatError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *MaatError) WithDetails(details interface{}) *MaatError {
	e.Details = details
	return e
}

// WithStderr attaches captured standard-error text to the error
func (e *MaatError) WithStderr(stderr string) *MaatError {
	e.Stderr = stderr
	return e
}

// KindOf returns the kind of err, or "" when err is not a MaatError
func KindOf(err error) ErrorKind {
	var me *MaatError
	if stderrors.As(err, &me) {
		return me.Kind
	}
	return ""
}

// IsKind reports whether err is a MaatError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
