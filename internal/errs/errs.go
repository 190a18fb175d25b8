// Package errs defines the coded error taxonomy shared by the E2E
// harness helpers. Specs match on codes with CodeOf instead of
// string-comparing error text.
package errs

import (
	"errors"
	"fmt"
)

// Code is a harness error code.
type Code string

const (
	// Uninitialized means a helper was used before its setup step.
	Uninitialized Code = "uninitialized"
	// Unauthenticated covers rejected credentials and calls made
	// without a session.
	Unauthenticated Code = "unauthenticated"
	// GatewayHTTP is any non-2xx response from the API gateway.
	GatewayHTTP Code = "gateway_http"
	// Timeout is a wait that exceeded its deadline.
	Timeout Code = "timeout"
	// A11yViolation is a serious or critical accessibility finding.
	A11yViolation Code = "a11y_violation"
	// Internal is the fallback for everything untyped.
	Internal Code = "internal"
)

// Error is a coded harness error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a coded error with message.
func New(code Code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a coded error with message and cause.
func Wrap(code Code, message string, cause error) error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// CodeOf returns the error code, defaulting to internal.
func CodeOf(err error) Code {
	if err == nil {
		return Internal
	}
	var coded *Error
	if errors.As(err, &coded) {
		if coded.Code == "" {
			return Internal
		}
		return coded.Code
	}
	return Internal
}

// MessageOf returns the typed message, or a stable fallback so raw
// transport errors never leak into assertion text.
func MessageOf(err error) string {
	if err == nil {
		return string(Internal)
	}
	var coded *Error
	if errors.As(err, &coded) && coded.Message != "" {
		return coded.Message
	}
	return "internal error"
}
