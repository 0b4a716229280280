package model

import "errors"

var (
	// ErrNotFound is returned when the requested user id does not exist.
	ErrNotFound = errors.New("user not found")
	// ErrNoData is returned when listing all users yields an empty set.
	ErrNoData = errors.New("no users found")
	// ErrInvalidID is returned for structurally invalid user ids.
	ErrInvalidID = errors.New("invalid user id")
	// ErrIDSupplied is returned when a user submitted for creation
	// already carries an id.
	ErrIDSupplied = errors.New("user must not be supplied with an id")
	// ErrRejected is returned when the storage engine refuses to persist
	// the user, e.g. on a constraint violation.
	ErrRejected = errors.New("user rejected by storage")
)
