package domain

import "errors"

// Sentinel errors surfaced by the repositories and services. The API layer
// translates them into HTTP responses in one place.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	// HTTP Status: 404 Not Found
	ErrUserNotFound = errors.New("user not found")

	// ErrAddressNotFound indicates the requested address does not exist.
	// HTTP Status: 404 Not Found
	ErrAddressNotFound = errors.New("address not found")

	// ErrConflict indicates a storage-level integrity violation
	// (duplicate email, dangling foreign key).
	// HTTP Status: 409 Conflict
	ErrConflict = errors.New("conflicts with existing data")

	// ErrInvalidCredentials indicates a failed email/password check.
	// HTTP Status: 401 Unauthorized
	ErrInvalidCredentials = errors.New("invalid credentials")
)
