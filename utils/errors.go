package utils

import (
	"errors"
	"fmt"

	"campusbook/models"
)

// ErrorKind classifies a domain error so callers can translate it to a
// transport-level response without string matching.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindNotFound      ErrorKind = "not_found"
	KindConflict      ErrorKind = "conflict"
	KindAuthorization ErrorKind = "authorization"
	KindStorage       ErrorKind = "storage"
)

// Error is the structured error carried across the module. Conflict errors
// additionally carry the set of bookings that blocked the write.
type Error struct {
	Kind      ErrorKind
	Message   string
	Conflicts []models.Booking
	cause     error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Validationf builds a validation error from a format string.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error from a format string.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Authorizationf builds an authorization error from a format string.
func Authorizationf(format string, args ...any) error {
	return &Error{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

// ConflictError builds a conflict error carrying the blocking bookings.
func ConflictError(message string, conflicts []models.Booking) error {
	return &Error{Kind: KindConflict, Message: message, Conflicts: conflicts}
}

// StorageError wraps a backing-store failure.
func StorageError(message string, cause error) error {
	return &Error{Kind: KindStorage, Message: message, cause: cause}
}

// IsKind reports whether err (or anything it wraps) is a domain error of the
// given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ConflictsFrom extracts the blocking bookings from a conflict error, or nil.
func ConflictsFrom(err error) []models.Booking {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindConflict {
		return e.Conflicts
	}
	return nil
}
