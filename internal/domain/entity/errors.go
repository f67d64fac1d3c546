package entity

import "errors"

// Errors returned across the repository port. Storage adapters log the
// underlying cause and return one of these, never a driver error.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserCreationFailed = errors.New("user creation failed")
	ErrUserUpdateFailed   = errors.New("user update failed")
	ErrUserDeletionFailed = errors.New("user deletion failed")

	// ErrUserLookupFailed means the store could not answer a lookup at all,
	// as opposed to answering that the user does not exist.
	ErrUserLookupFailed = errors.New("user lookup failed")
)
