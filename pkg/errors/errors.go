// Package errors provides structured error types for maximizer.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, pipeline and solver packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_MISMATCH, *_TOO_LARGE, EMPTY_*: Malformed seed input
//   - ITERATION_LIMIT, CANCELED: Runs stopped before reaching the fixpoint
//   - INTERNAL_*: Unexpected internal errors
//
// Precondition violations inside the solver core (a degree mismatch handed to
// the domination oracle, a symbol index beyond the set capacity) are not
// reported through this package: they panic, because they can only be caused
// by a programming error in the calling layer.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeEmptyInput, "no seed lines in %s", path)
//	if errors.Is(err, errors.ErrCodeEmptyInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
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
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidVariant Code = "INVALID_VARIANT"
	ErrCodeInvalidMatcher Code = "INVALID_MATCHER"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// Seed shape errors
	ErrCodeEmptyInput        Code = "EMPTY_INPUT"
	ErrCodeDegreeMismatch    Code = "DEGREE_MISMATCH"
	ErrCodeAlphabetTooLarge  Code = "ALPHABET_TOO_LARGE"
	ErrCodeFileNotFound      Code = "FILE_NOT_FOUND"
	ErrCodeEmptyCoordinate   Code = "EMPTY_COORDINATE"
	ErrCodeUnsupportedDegree Code = "UNSUPPORTED_DEGREE"

	// Run termination
	ErrCodeIterationLimit Code = "ITERATION_LIMIT"
	ErrCodeCanceled       Code = "CANCELED"

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

// Stopped reports whether err ended a run before its fixpoint, through
// cancellation or the iteration limit. Such runs still return the antichain
// built so far.
func Stopped(err error) bool {
	switch GetCode(err) {
	case ErrCodeCanceled, ErrCodeIterationLimit:
		return true
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
