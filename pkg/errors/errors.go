// Package errors provides structured error types for platemap.
//
// Every error raised by the plate engine carries a machine-readable [Code] so
// callers (the CLI, or a UI layer embedding the library) can tell structural
// failures apart without string matching:
//   - INVALID_PLATE_SIZE: a plate size outside 24, 48, 96, 384, 1536
//   - INVALID_LABEL_FORMAT: a well label that is not letters followed by digits
//   - INSUFFICIENT_CAPACITY: the randomizer ran out of destination wells
//   - INVALID_*: other input validation failures
//
// Content-level anomalies (an off-plate CSV cell, a malformed row) are not
// errors; they are logged and skipped by the packages that meet them.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidPlateSize, "invalid number of wells %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidPlateSize) {
//	    // Handle bad plate size
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Plate engine errors
	ErrCodeInvalidPlateSize     Code = "INVALID_PLATE_SIZE"
	ErrCodeInvalidLabelFormat   Code = "INVALID_LABEL_FORMAT"
	ErrCodeInsufficientCapacity Code = "INSUFFICIENT_CAPACITY"

	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle      Code = "INVALID_STYLE"
	ErrCodeInvalidAnnotation Code = "INVALID_ANNOTATION"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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
// Only the outermost *Error in the chain is inspected, so a wrapped error
// reports the code of the wrapper.
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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}
