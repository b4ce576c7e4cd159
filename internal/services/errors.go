package services

import "errors"

var (
	// ErrNotFound: the target record does not exist. Update/delete callers
	// treat it like any other mutation failure.
	ErrNotFound = errors.New("record not found")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)
