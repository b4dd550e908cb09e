// Package service holds the business logic behind the HTTP handlers:
// registration/login and the ownership-scoped movie operations.
package service

import "errors"

// Error kinds returned by the services. Handlers match these with errors.Is
// and map each one to exactly one HTTP status, so no string inspection is
// ever needed at the boundary.
var (
	// ErrValidation marks malformed or out-of-range input. Wrapped errors
	// carry the field-level detail.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks a uniqueness violation (email already registered).
	ErrConflict = errors.New("email already in use")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// with one message, so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotFound means no movie matched (id, owner) — including movies that
	// exist but belong to someone else.
	ErrNotFound = errors.New("movie not found")

	// ErrInvalidID marks a movie id that is not a well-formed UUID.
	ErrInvalidID = errors.New("invalid movie id")

	// ErrNoSigningSecret means the JWT secret is not configured. Fatal to
	// the request, not to the process.
	ErrNoSigningSecret = errors.New("jwt signing secret not configured")
)
