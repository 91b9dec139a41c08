package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by services and adapters. The HTTP layer maps them to status codes.
var (
	// ErrInvalidInput is returned for missing or malformed input and for store constraint violations.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when no matching event, attendance or user exists.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned by repositories on a uniqueness violation.
	ErrConflict = errors.New("already exists")
	// ErrInvalidReference is returned by repositories on a foreign key violation.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrAuthMissing is returned when a request carries no credential.
	ErrAuthMissing = errors.New("credential missing")
	// ErrAuthMismatch is returned when the credential does not belong to the resource owner.
	ErrAuthMismatch = errors.New("credential does not match")
)

// ValidationError collects every problem found while validating a request.
// It unwraps to ErrInvalidInput.
type ValidationError struct {
	Problems []string
}

// NewValidationError returns a ValidationError with the given problems.
func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return ErrInvalidInput.Error()
	}
	return strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
