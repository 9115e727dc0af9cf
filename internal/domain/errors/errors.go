package errors

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict with current state")
	ErrValidation      = errors.New("validation failed")
	ErrAlreadyExists   = errors.New("already exists")
	ErrExternalService = errors.New("external service failure")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
