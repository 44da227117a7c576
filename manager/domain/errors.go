package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrNilQueryInput      = errors.New("query options is nil")
	ErrValidation         = errors.New("validation failed")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrDuplicate          = errors.New("duplicate record")
	// ErrStatusConflict is returned by a conditional status update that matched no row.
	ErrStatusConflict = errors.New("request status changed concurrently")
	ErrStorage        = errors.New("storage failure")
	// ErrUnhashedPassword guards storage against a password that was never hashed.
	ErrUnhashedPassword = errors.New("password is not hashed")
)
