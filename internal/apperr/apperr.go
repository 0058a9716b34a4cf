// Package apperr defines the domain error taxonomy and its HTTP mapping.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials covers bad email, bad password and inactive
	// accounts at login. The external message never says which.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrUnauthenticated covers missing, malformed or expired tokens and
	// tokens whose principal no longer exists or is inactive.
	ErrUnauthenticated = errors.New("could not validate credentials")

	ErrForbidden = errors.New("operation not permitted")

	ErrDuplicateName     = errors.New("name already exists")
	ErrDuplicateIdentity = errors.New("email or username already exists")

	ErrImmutableRole = errors.New("system roles cannot be modified or deleted")

	ErrNotFound = errors.New("resource not found")

	ErrMalformedIdent = errors.New("invalid identifier format")
)

// Status maps a domain error to its client-facing HTTP status.
// Unknown errors map to 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateName), errors.Is(err, ErrDuplicateIdentity), errors.Is(err, ErrImmutableRole):
		return http.StatusConflict
	case errors.Is(err, ErrMalformedIdent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for err. Internal errors are
// replaced with a generic message so detail never leaks.
func Message(err error) string {
	if Status(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
