package services

import "errors"

// Sentinel errors the handler boundary translates into HTTP statuses.
var (
	// ErrNotFound signals that no record matched the given id.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUser signals a registration whose username or email
	// is already taken.
	ErrDuplicateUser = errors.New("username or email already in use")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a login failure never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
