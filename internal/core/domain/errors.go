package domain

import "errors"

// Sentinel errors mapped to HTTP statuses by the central API error handler.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrStartupNotFound    = errors.New("startup not found")
	ErrPitchNotFound      = errors.New("pitch not found")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidInput       = errors.New("invalid input")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)
