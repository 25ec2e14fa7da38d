package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is returned when a domain entity fails validation. The more
// specific sentinels below all wrap it, so errors.Is(err, ErrValidation)
// classifies any of them.
var ErrValidation = errors.New("validation failed")

// Specific validation failures.
var (
	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)

	// ErrInvalidUsername is returned when a username is not email-shaped.
	ErrInvalidUsername = fmt.Errorf("%w: username must be a valid email address", ErrValidation)

	// ErrPasswordTooShort is returned when a password is below the minimum length.
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 6 characters long", ErrValidation)

	// ErrPasswordTooLong is returned when a password exceeds bcrypt's input limit.
	ErrPasswordTooLong = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)

	// ErrInvalidPublicationDate is returned when a publication date is not
	// in YYYY-MM-DD form.
	ErrInvalidPublicationDate = fmt.Errorf("%w: publication date must be in YYYY-MM-DD format", ErrValidation)
)

// ErrUnauthorized is returned when an operation is not permitted for the caller.
var ErrUnauthorized = errors.New("unauthorized operation")

// ValidationError describes a validation failure for a named field.
// It wraps a sentinel error so callers can classify it with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
