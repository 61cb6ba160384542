package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials hides whether email or password failed.
	// The reason is to prevent account-enumeration side channels.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken signals registration against an already-registered email.
	ErrEmailTaken = errors.New("email already in use")
	// ErrIDMismatch is returned when an update's path id and body id disagree.
	// The check fires before any store access.
	ErrIDMismatch   = errors.New("id mismatch")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)
