// Package apperror defines the application's error taxonomy.
//
// Services and stores return these typed errors; the HTTP layer translates
// them into status codes and the response envelope. Nothing below the handler
// knows about HTTP.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
)

// AppError wraps a sentinel error with a human-readable message.
// errors.Is walks through Unwrap, so handlers can branch on the sentinel
// while still surfacing the message to the client.
type AppError struct {
	Err     error  // sentinel (ErrNotFound, ErrValidation, ErrConflict)
	Message string // human-readable, safe to return to the client
	Field   string // optional: field causing a validation error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports that no entity of the given kind matched the lookup.
func NotFound(resource string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// ValidationFailed reports the first violated rule for a field.
// Validation is fail-fast: callers see exactly one violation per request.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Conflict reports a violated uniqueness constraint. The message is surfaced
// verbatim to the client (e.g. "Email already exists").
func Conflict(message string) *AppError {
	return &AppError{
		Err:     ErrConflict,
		Message: message,
	}
}
