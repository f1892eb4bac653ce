// Package domainerrors provides coded errors for the notary core.
//
// Services return these so transport layers can translate business outcomes
// into status codes without string matching. Stores return sentinel errors
// (pkg/platform/sentinel) and services wrap them with a code here.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error by its business meaning, not its transport.
type Code string

const (
	// CodeNotFound marks reads that require existence of an absent entity.
	CodeNotFound Code = "not_found"
	// CodeConflict marks duplicate-identifier or duplicate-coordinate creates.
	CodeConflict Code = "conflict"
	// CodeUnauthorized marks a caller lacking the operation-specific right.
	CodeUnauthorized Code = "unauthorized"
	// CodeBadRequest marks invalid arguments, including forbidden self-approval.
	CodeBadRequest Code = "bad_request"
	// CodeInsufficientPayment marks an offer below the listed price.
	CodeInsufficientPayment Code = "insufficient_payment"
	// CodeUnavailable marks operations whose target is not currently listed,
	// and ledger submissions whose outcome is indeterminate.
	CodeUnavailable Code = "unavailable"
	// CodeInternal marks unexpected infrastructure failures.
	CodeInternal Code = "internal_error"
)

// Error carries a code, a human-readable message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match two coded errors by code and message, so tests can
// compare against a freshly constructed value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// New creates a coded error with no underlying cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error. A nil err yields nil.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var de *Error
	for errors.As(err, &de) {
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// Is is a readability alias for HasCode used at call sites that branch on codes.
func Is(err error, code Code) bool { return HasCode(err, code) }

// CodeOf returns the outermost code carried by err, or CodeInternal when err
// carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
