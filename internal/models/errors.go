package models

import "errors"

// Domain errors that can be returned by repositories
var (
	// ErrDuplicateAccount indicates an account with the same account number already exists
	ErrDuplicateAccount = errors.New("duplicate account")

	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")
)
