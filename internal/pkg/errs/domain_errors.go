package errs

import "errors"

// Sentinel categories shared by the usecase and handler layers.
// Concrete errors are marked with one of these so handlers can map them with errors.Is.
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrAlreadyProcessed = errors.New("already processed")
	ErrInternal         = errors.New("internal error")
)
