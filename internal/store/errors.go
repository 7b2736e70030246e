package store

import "errors"

var (
	// ErrNotFound is returned when no row matches the given id or slug.
	// Deletes on missing ids report it too; repeated deletes are not
	// treated as success.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput marks payloads rejected before reaching the database.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicate marks unique-constraint violations, e.g. product slugs.
	ErrDuplicate = errors.New("already exists")
)
