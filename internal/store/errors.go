package store

import "errors"

var (
	// ErrNotFound is returned when no record with the requested id exists.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a secondary uniqueness constraint
	// (course code, model code, serial number, ...) would be violated.
	ErrDuplicateKey = errors.New("duplicate key")
)
