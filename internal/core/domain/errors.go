package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidIdentifier indicates a table or column name that fails the
	// identifier allow-list. Identifiers are interpolated into statement
	// text, so anything outside the allow-list is rejected before any SQL
	// is built.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)
