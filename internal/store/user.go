package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/scholarly/article-api/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password. Returns ErrUsernameExists if the username is taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByUsername retrieves a user by their username (case-sensitive).
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Update persists the full user record. Returns ErrUserNotFound if the
	// user does not exist and ErrUsernameExists when the new username is
	// already held by another user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user by ID. Owned articles are removed with it by the
	// storage layer. Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a UserStore bound to the given transaction so multiple
	// operations can execute atomically.
	WithTx(tx *sql.Tx) UserStore
}
