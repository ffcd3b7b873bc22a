// Package apperror defines the error kinds shared by every layer of the forum.
//
// ERROR KINDS:
// Each AppError wraps exactly one sentinel. The sentinel is the error's kind and
// decides the HTTP status the transport layer sends back:
//
//	ErrInvariant      → 400  bad payload, duplicate username, unknown token
//	ErrAuthentication → 401  wrong credentials
//	ErrAuthorization  → 403  authenticated but not the owner
//	ErrNotFound       → 404  thread / comment / reply does not exist
//
// Anything that is not an AppError is an internal failure (500).
package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrInvariant      = errors.New("invariant violation")
	ErrAuthentication = errors.New("authentication failed")
	ErrAuthorization  = errors.New("not authorized")
	ErrNotFound       = errors.New("not found")
)

type AppError struct {
	Err     error  // kind sentinel
	Message string // Human-readable error message
	Field   string // Optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status bound to the error's kind.
func (e *AppError) StatusCode() int {
	switch {
	case errors.Is(e.Err, ErrInvariant):
		return http.StatusBadRequest
	case errors.Is(e.Err, ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(e.Err, ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(e.Err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Invariant reports a client-correctable input or state problem.
func Invariant(message string) *AppError {
	return &AppError{
		Err:     ErrInvariant,
		Message: message,
	}
}

// InvariantField is Invariant with the offending field recorded.
func InvariantField(field, message string) *AppError {
	return &AppError{
		Err:     ErrInvariant,
		Message: message,
		Field:   field,
	}
}

func Authentication(message string) *AppError {
	return &AppError{
		Err:     ErrAuthentication,
		Message: message,
	}
}

// Authorization returns an AppError indicating the caller lacks permission.
// HTTP handlers map this to 403 Forbidden.
func Authorization(message string) *AppError {
	return &AppError{
		Err:     ErrAuthorization,
		Message: message,
	}
}

func NotFound(message string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: message,
	}
}
