// Package errors defines the failure kinds pmpts reports to the user.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure. Every error shown to the user carries one.
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindUndoUnavailable Kind = "undo_unavailable"
	KindIO              Kind = "io_failure"
	KindInvalid         Kind = "invalid"
)

// Error is a kind-tagged error with an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NotFound reports a prompt or path that does not exist.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a destination that is already occupied.
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// UndoUnavailable reports that there is no recorded action to reverse.
func UndoUnavailable(message string) *Error {
	return &Error{Kind: KindUndoUnavailable, Message: message}
}

// Invalid reports malformed input, such as a name containing a path separator.
func Invalid(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalid, Message: fmt.Sprintf(format, args...)}
}

// IO wraps an underlying filesystem error with the operation that failed.
func IO(cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindIO, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Wrap tags an existing error with a kind and a higher-level message.
func Wrap(cause error, kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf returns the kind carried by err, or "" for untagged errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

func IsConflict(err error) bool { return KindOf(err) == KindConflict }
