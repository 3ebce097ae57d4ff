package domain

import "errors"

var (
	// ErrStoreUnavailable is returned when the backing store cannot be
	// reached at request time, including before the first successful
	// connection after startup.
	ErrStoreUnavailable = errors.New("storage unavailable")

	// ErrEmailTaken is the uniqueness violation on users.email.
	ErrEmailTaken = errors.New("email already registered")

	ErrFarmNotFound = errors.New("farm not found")
	ErrUserNotFound = errors.New("user not found")
)
