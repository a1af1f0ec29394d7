// Package errors provides structured error types for pageorder.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - MALFORMED_*: Input lines that cannot be parsed
//   - INVALID_*: Option and configuration validation failures
//   - INTERNAL_*: Unexpected internal errors
//
// Every input error is fatal for the whole run. The parser stops at the first
// malformed line and reports it; there is no skip-and-continue mode.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedRule, "line %d: missing '|' in %q", n, line)
//	if errors.Is(err, errors.ErrCodeMalformedRule) {
//	    // Handle bad rule
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedSequence, origErr, "line %d", n)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeMalformedRule     Code = "MALFORMED_RULE"
	ErrCodeMalformedSequence Code = "MALFORMED_SEQUENCE"
	ErrCodeEmptySequence     Code = "EMPTY_SEQUENCE"
	ErrCodeMissingSeparator  Code = "MISSING_SEPARATOR"

	// Option validation errors
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidMode    Code = "INVALID_MODE"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"
	ErrCodeInvalidBackend Code = "INVALID_BACKEND"

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
	for errors.As(err, &e) {
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}

// IsInputError reports whether err was caused by malformed puzzle input,
// as opposed to options, configuration or internal failures.
func IsInputError(err error) bool {
	switch GetCode(err) {
	case ErrCodeMalformedRule, ErrCodeMalformedSequence, ErrCodeEmptySequence, ErrCodeMissingSeparator:
		return true
	}
	return false
}
