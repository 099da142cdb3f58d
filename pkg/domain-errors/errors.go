// Package domainerrors carries coded errors across layers.
//
// Services return *Error values built with New or Wrap; transports read the
// Code to choose a response (see pkg/platform/httputil). Callers branch on
// codes with HasCode instead of matching message strings.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error independently of its message.
type Code string

const (
	// CodeBadRequest marks malformed transport input (undecodable body, missing params).
	CodeBadRequest Code = "bad_request"
	// CodeValidation marks well-formed input that fails validation rules.
	CodeValidation Code = "validation_error"
	// CodeInvalidInput marks an invalid argument passed to a domain operation.
	CodeInvalidInput Code = "invalid_input"
	// CodeConflict marks an operation that contradicts existing state.
	CodeConflict Code = "conflict"
	// CodeNotFound marks a missing resource.
	CodeNotFound Code = "not_found"
	// CodeInternal marks an unexpected failure. Messages are not shown to clients.
	CodeInternal Code = "internal_error"
)

// Error is a coded domain error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a coded error.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error.
// A nil err still yields a coded error so callers never lose the code.
func Wrap(err error, code Code, msg string) error {
	return &Error{Code: code, Message: msg, Err: err}
}

// CodeOf returns the code of the outermost *Error in err's chain, or
// CodeInternal when err carries no code.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// HasCode reports whether any *Error in err's chain carries code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is is an alias of HasCode kept for handler call sites.
func Is(err error, code Code) bool {
	return HasCode(err, code)
}
