// Package apperror defines the application error taxonomy and its HTTP mapping.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// Unexpected is a persistence or infrastructure failure.
	Unexpected Kind = iota
	// Validation is a missing or empty required field.
	Validation
	// Conflict is a duplicate unique field at registration.
	Conflict
	// NotFound is a missing credential or task.
	NotFound
	// Authentication is a missing/invalid/expired token, or a credential mismatch at login.
	Authentication
	// Authorization is a task that exists but belongs to another owner.
	Authorization
)

// AppError carries a kind, a client-safe message and an optional wrapped cause.
// The cause is for logs only and never reaches the response body.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// StatusCode maps the kind to its HTTP status.
func (e *AppError) StatusCode() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	case Authentication:
		return http.StatusUnauthorized
	case Authorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// NewValidation returns a Validation error.
func NewValidation(message string) *AppError {
	return &AppError{Kind: Validation, Message: message}
}

// NewConflict returns a Conflict error.
func NewConflict(message string) *AppError {
	return &AppError{Kind: Conflict, Message: message}
}

// NewNotFound returns a NotFound error.
func NewNotFound(message string) *AppError {
	return &AppError{Kind: NotFound, Message: message}
}

// NewAuthentication returns an Authentication error wrapping the diagnostic cause.
func NewAuthentication(message string, cause error) *AppError {
	return &AppError{Kind: Authentication, Message: message, Err: cause}
}

// NewAuthorization returns an Authorization error.
func NewAuthorization(message string) *AppError {
	return &AppError{Kind: Authorization, Message: message}
}

// NewUnexpected returns an Unexpected error wrapping the cause.
func NewUnexpected(message string, cause error) *AppError {
	return &AppError{Kind: Unexpected, Message: message, Err: cause}
}

// From extracts an *AppError from err, or wraps err as Unexpected so that
// every error leaving a service has a kind and a status.
func From(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return NewUnexpected("something went wrong", err)
}

// IsKind reports whether err is an *AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Kind == kind
}
