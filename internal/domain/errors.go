package domain

import "errors"

// Domain error taxonomy. Services wrap these with fmt.Errorf("...: %w", ...)
// and the HTTP layer maps them to response codes with errors.Is. Anything
// not matching one of these is treated as an internal failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)
