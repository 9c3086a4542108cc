// Package apperrors defines the error taxonomy shared by every service.
// All failures are deterministic: retrying with the same inputs against
// the same state reproduces the same error, so nothing here is retryable.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated means no identity or an invalid credential.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the actor was identified but the policy denied the action.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound covers both truly absent resources and resources hidden by
	// country scoping, so callers cannot probe for existence across tenants.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState means the action is not valid for the resource's lifecycle state.
	ErrInvalidState = errors.New("invalid state")
	// ErrConflict means a conditional write lost its precondition or a
	// uniqueness constraint was violated.
	ErrConflict = errors.New("conflict")
	// ErrValidation means malformed input, e.g. a non-positive quantity.
	ErrValidation = errors.New("validation failed")
)

// Status maps a taxonomy error to the HTTP status the transport layer returns.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidState), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
