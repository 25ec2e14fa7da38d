package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate of
	// a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation or
	// violates a database constraint before being stored.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrArticleNotFound indicates that the requested article does not exist.
	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)

	// ErrUsernameExists indicates that a user with the given username already
	// exists. Returned on registration and on username updates.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError carries context about a persistence failure that is not one of
// the classified sentinel conditions, such as a missing table or a schema
// mismatch. The API boundary decides how much of it to reveal.
type StoreError struct {
	Entity    string // The entity type (e.g., "user", "article")
	Operation string // The operation that failed (e.g., "create", "update")
	Relation  string // The database relation involved, when known
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %v", e.Operation, e.Entity, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed", e.Operation, e.Entity)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given context.
func NewStoreError(entity, operation, relation string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Relation:  relation,
		Err:       err,
	}
}
