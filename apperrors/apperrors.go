// Package apperrors defines the structured error kinds shared by the service
// layer and the HTTP controllers. Services return these instead of raw gorm
// or driver errors so that callers can map failures to specific responses
// rather than catching everything broadly.
package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Kind classifies an error for programmatic handling.
type Kind string

const (
	// KindInvalidInput indicates a missing, malformed, or out-of-range field.
	KindInvalidInput Kind = "INVALID_INPUT"
	// KindNotFound indicates a referenced entity or edge is absent.
	KindNotFound Kind = "NOT_FOUND"
	// KindConflict indicates a uniqueness or duplicate-edge violation.
	KindConflict Kind = "CONFLICT"
	// KindUnsupportedMediaType indicates a non-JSON request body.
	KindUnsupportedMediaType Kind = "UNSUPPORTED_MEDIA_TYPE"
	// KindInternal indicates an unexpected failure. Only this kind is safe
	// to handle generically; every other kind carries a recoverable cause.
	KindInternal Kind = "INTERNAL"
)

// Error carries a kind, a human-readable message, and the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that records cause as the underlying error.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// InvalidInput is shorthand for New(KindInvalidInput, message).
func InvalidInput(message string) *Error {
	return New(KindInvalidInput, message)
}

// NotFound is shorthand for Newf(KindNotFound, ...).
func NotFound(format string, args ...any) *Error {
	return Newf(KindNotFound, format, args...)
}

// Conflict is shorthand for Newf(KindConflict, ...).
func Conflict(format string, args ...any) *Error {
	return Newf(KindConflict, format, args...)
}

// Internal wraps an unexpected failure.
func Internal(cause error) *Error {
	return Wrap(KindInternal, "an unexpected error occurred", cause)
}

// KindOf extracts the Kind from err, defaulting to KindInternal for errors
// that did not originate in this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf extracts the message from err. Internal errors report a fixed
// message so that driver details never reach a client.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "an unexpected error occurred"
}

// FromStore translates a storage-layer error into a structured Error.
// Record-not-found and constraint violations become recoverable kinds;
// anything else is internal.
func FromStore(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Wrap(KindNotFound, "record not found", err)
	}

	var serr sqlite3.Error
	if errors.As(err, &serr) {
		switch serr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return Wrap(KindConflict, constraintMessage(serr, "already exists"), err)
		case sqlite3.ErrConstraintForeignKey:
			return Wrap(KindInvalidInput, "referenced entity does not exist", err)
		case sqlite3.ErrConstraintCheck:
			return Wrap(KindInvalidInput, constraintMessage(serr, "value out of range"), err)
		case sqlite3.ErrConstraintNotNull:
			return Wrap(KindInvalidInput, constraintMessage(serr, "required field missing"), err)
		}
	}
	return Internal(err)
}

// constraintMessage pulls the offending column out of the driver message when
// it names one, e.g. "UNIQUE constraint failed: food.name".
func constraintMessage(serr sqlite3.Error, fallback string) string {
	msg := serr.Error()
	if idx := strings.Index(msg, "failed: "); idx >= 0 {
		return fmt.Sprintf("%s (%s)", fallback, msg[idx+len("failed: "):])
	}
	return fallback
}
