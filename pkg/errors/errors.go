// Package errors provides structured error types for the cosmos engine.
//
// Every failure surfaced by the core packages is an [*Error] carrying a
// machine-readable [Code]. Callers branch on the code rather than on message
// text:
//
//	tr, err := tree.Decode(n)
//	if errors.Is(err, errors.ErrCodeInvalidArgument) {
//	    // n < 1
//	}
//
// # Error Codes
//
//   - INVALID_ARGUMENT: out-of-domain numeric input (k < 1, n < 1)
//   - NOT_PRIME: primality precondition violated
//   - MALFORMED_INPUT: bracket text fails the balance invariant
//   - UNKNOWN_LEVEL: catalog query for an undefined structural level
//   - OVERFLOW: an exact result does not fit the requested integer type
//
// Errors are reported at the point of the violated precondition. Nothing in
// the core retries, clamps, or logs them.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeNotPrime        Code = "NOT_PRIME"
	ErrCodeMalformedInput  Code = "MALFORMED_INPUT"

	// Catalog errors
	ErrCodeUnknownLevel Code = "UNKNOWN_LEVEL"

	// Arithmetic errors
	ErrCodeOverflow Code = "OVERFLOW"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// InvalidArgument is shorthand for New(ErrCodeInvalidArgument, ...).
func InvalidArgument(format string, args ...any) *Error {
	return New(ErrCodeInvalidArgument, format, args...)
}

// NotPrime reports that p was required to be prime.
func NotPrime(p int) *Error {
	return New(ErrCodeNotPrime, "%d is not prime", p)
}

// Malformed reports a bracket string that violates the balance invariant
// at byte offset pos.
func Malformed(pos int, format string, args ...any) *Error {
	return New(ErrCodeMalformedInput, "at offset %d: %s", pos, fmt.Sprintf(format, args...))
}

// UnknownLevel reports a catalog lookup for a level outside the table.
func UnknownLevel(level int) *Error {
	return New(ErrCodeUnknownLevel, "no structural level %d", level)
}
