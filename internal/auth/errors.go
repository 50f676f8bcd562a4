package auth

import "errors"

var (
	ErrMissingField      = errors.New("Missing fields")
	ErrInvalidRole       = errors.New("Invalid role")
	ErrInvalidDomain     = errors.New("Invalid email domain")
	ErrDuplicateUsername = errors.New("Username already exists")

	// Login rejections. Handlers map these to the historical response
	// messages, which do distinguish unknown identifiers from wrong
	// passwords.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrIncorrectPassword = errors.New("Incorrect password")
)
