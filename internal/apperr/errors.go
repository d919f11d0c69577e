// Package apperr defines the error taxonomy every service operation reports
// through: validation, not-found, permission and storage failures, each with
// an HTTP-equivalent status code the controllers echo into the envelope.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports client-caused bad input (malformed id, missing required
// field, oversized upload).
func Validation(msg string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: msg}
}

// NotFound reports a missing record, or one present but inactive when an
// active-only operation was requested.
func NotFound(msg string) *Error {
	return &Error{Code: http.StatusNotFound, Message: msg}
}

// Permission reports an unauthenticated caller on a privileged operation.
func Permission(msg string) *Error {
	return &Error{Code: http.StatusUnauthorized, Message: msg}
}

// Storage wraps an underlying database or filesystem failure.
func Storage(msg string, err error) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: msg, Err: err}
}

// StatusOf extracts the HTTP-equivalent code, defaulting to 500 for errors
// raised outside the taxonomy.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}
