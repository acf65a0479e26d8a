package errs

import "errors"

// Sentinel errors shared across the store, engine and HTTP layers.
// Callers wrap them with fmt.Errorf("%w: ...") and the HTTP boundary
// maps them to status codes with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
)
