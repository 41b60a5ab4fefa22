package service

import "errors"

// Domain errors the HTTP layer maps to status codes. Everything else
// is treated as internal.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenUsed          = errors.New("reset token already used")
	ErrSamePassword       = errors.New("new password must differ from the current one")
	ErrSelfFollow         = errors.New("cannot follow yourself")
)
