// Package errors provides structured error types for fontlink.
//
// Every failure the font query compiler can report carries a machine-readable
// [Code] so callers (the CLI, the HTTP service, library users) can branch on
// the rule that was violated instead of matching message text.
//
// # Error Codes
//
// Request shape violations:
//   - EMPTY_INPUT: the request contains no families
//   - INVALID_NAME: a family has no name, or the name is not a string
//   - UNKNOWN_ATTRIBUTE: a family carries an attribute other than weights/italics
//   - INVALID_WEIGHT: a weight entry is neither an integer nor a string
//   - INVALID_ITALIC_PAIR: an italic entry is not an (ital, weight) integer pair
//
// Manifest and I/O errors:
//   - INVALID_MANIFEST, INVALID_FORMAT, FILE_NOT_FOUND
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidName, "family %d has no name", i)
//	if errors.Is(err, errors.ErrCodeInvalidName) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidManifest, origErr, "parse %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Request shape errors
	ErrCodeEmptyInput        Code = "EMPTY_INPUT"
	ErrCodeInvalidName       Code = "INVALID_NAME"
	ErrCodeUnknownAttribute  Code = "UNKNOWN_ATTRIBUTE"
	ErrCodeInvalidWeight     Code = "INVALID_WEIGHT"
	ErrCodeInvalidItalicPair Code = "INVALID_ITALIC_PAIR"

	// Input and manifest errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code      Code   // Machine-readable error code
	Message   string // Human-readable message
	Attribute string // Offending attribute key (UNKNOWN_ATTRIBUTE only)
	Cause     error  // Underlying error (optional)
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

// UnknownAttribute reports an attribute key the compiler does not recognize.
func UnknownAttribute(key string) *Error {
	return &Error{
		Code:      ErrCodeUnknownAttribute,
		Message:   fmt.Sprintf("unknown attribute: %s", key),
		Attribute: key,
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

// GetAttribute returns the offending attribute key carried by err, if any.
func GetAttribute(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Attribute
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
