package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrUserNotFound indicates no account matches the login handle.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates a malformed, forged or expired bearer token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrDuplicate indicates a uniqueness violation.
	ErrDuplicate = errors.New("duplicate record")
	// ErrValidation indicates rejected request input.
	ErrValidation = errors.New("validation failed")
)
