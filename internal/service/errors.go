package service

import (
	"errors"
	"fmt"
)

// Error categories. Concrete errors wrap one of these so callers can branch
// with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrStore      = errors.New("store error")
)

var (
	ErrMissingCredentials = fmt.Errorf("%w: username and password are required", ErrValidation)
	ErrUsernameTaken      = fmt.Errorf("%w: username already exists", ErrConflict)
)

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}
