// Package apperr defines the typed error kinds surfaced at the HTTP boundary.
package apperr

import (
	"fmt"
	"net/http"
)

// Kind classifies an error the way the API layer needs to react to it.
type Kind string

const (
	KindValidation       Kind = "VALIDATION_ERROR"
	KindSolverUnavailable Kind = "SOLVER_UNAVAILABLE"
	KindSolverNonOptimal  Kind = "SOLVER_NON_OPTIMAL"
	KindIRRUndefined      Kind = "IRR_UNDEFINED"
	KindInternal          Kind = "INTERNAL_ERROR"
)

// Error is the typed error carried through handlers and reported via the
// ErrorResponse envelope.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Status returns the HTTP status code this error kind maps to.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindSolverUnavailable, KindSolverNonOptimal, KindIRRUndefined:
		// these are advisory, not client errors; callers still get a 200
		// with the condition reflected in the response body, so they never
		// reach the error middleware in practice. Kept here for completeness.
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", cause: cause}
}

func Internalf(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// As reports whether err is an *Error and returns it.
func As(err error) (*Error, bool) {
	e, ok := err.(*Error)
	return e, ok
}
