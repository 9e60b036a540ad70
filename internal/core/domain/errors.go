package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a file extension outside the closed
	// set of ingestible formats.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrNoCache indicates no cache file exists at the configured path.
	// Callers fall back to a full pipeline run.
	ErrNoCache = errors.New("no cache")
)
