// Package errors provides the unified error type and factory functions for
// TaskTriage-Engine.  Every layer (engine construction, configuration, CLI)
// uses AppError as the single carrier for structured error information so
// that logging and command output stay consistent.
//
// The classification and parsing entry points are total functions over their
// input domains and never produce an AppError at runtime; this package exists
// for the paths that can legitimately fail: compiling custom patterns,
// loading configuration, and operating the CLI.
package errors

import (
	"errors"
	"fmt"
)

// AppError is the single structured error type used throughout the module.
// It satisfies the standard error interface and supports Go 1.13+ error
// wrapping, so errors.Is / errors.As / errors.Unwrap work transparently.
//
// Usage:
//
//	return errors.New(errors.ErrCodePatternCompile, "cannot compile custom urgency pattern")
//	return errors.Wrap(err, errors.ErrCodeConfigRead, "failed to read config file")
//	return errors.NewValidation("escalation_threshold must be within [0,1]").WithDetail("got 1.3")
type AppError struct {
	// Code uniquely identifies the failure category.
	Code ErrorCode

	// Message is the primary human-readable description.
	Message string

	// Detail carries supplementary context (pattern text, file path, flag
	// values) that aids debugging without bloating Message.
	Detail string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the standard error interface.
// Format: "[<code>] <message>: <detail>", detail omitted when empty.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As
// traversal of the full chain.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail returns a shallow copy of the receiver with Detail set.
// Safe to call on a nil pointer.
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Detail = detail
	return &cp
}

// WithCause returns a shallow copy of the receiver with Cause set.
// Safe to call on a nil pointer.
func (e *AppError) WithCause(cause error) *AppError {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Cause = cause
	return &cp
}

// New constructs an AppError with the given code and message.  An empty
// message falls back to the code's registered default.
func New(code ErrorCode, message string) *AppError {
	if message == "" {
		message = DefaultMessage(code)
	}
	return &AppError{Code: code, Message: message}
}

// Newf constructs an AppError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap constructs an AppError that records cause as the underlying error.
// A nil cause yields a plain New.
func Wrap(cause error, code ErrorCode, message string) *AppError {
	e := New(code, message)
	e.Cause = cause
	return e
}

// NewValidation constructs a validation error.
func NewValidation(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// NewInternal constructs an internal error.
func NewInternal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

// NewNotImplemented constructs a not-implemented error.
func NewNotImplemented(message string) *AppError {
	return New(ErrCodeNotImplemented, message)
}

// CodeOf extracts the ErrorCode from err if it is (or wraps) an AppError;
// otherwise it returns ErrCodeInternal.
func CodeOf(err error) ErrorCode {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ErrCodeInternal
}

// IsCode reports whether err is (or wraps) an AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
