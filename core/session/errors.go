package session

import "errors"

var (
	// ErrNotFound is returned when the requested key is absent from the store.
	ErrNotFound = errors.New("session: not found")
	// ErrInvalidUser is returned when persisting a nil user record.
	ErrInvalidUser = errors.New("session: invalid user")
	// ErrStoreFailed is returned when the persistence medium rejects an operation.
	ErrStoreFailed = errors.New("session: store operation failed")
)
