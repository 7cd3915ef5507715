package repository

import "errors"

// Repository errors
var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique field collided with an
	// existing entity.
	ErrAlreadyExists = errors.New("already exists")
)
