package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalid indicates a request that is malformed or missing required fields.
	ErrInvalid = errors.New("invalid request")
)
