package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/scholarly/article-api/internal/domain"
	"github.com/scholarly/article-api/internal/service/auth"
	"github.com/scholarly/article-api/internal/store"
)

// UserUpdate carries the fields of a partial profile update. Nil means the
// field was absent from the request and keeps its stored value. The set of
// updatable fields is a deliberate allow-list; unknown payload keys never
// reach this struct.
type UserUpdate struct {
	Username  *string
	FirstName *string
	LastName  *string
}

// UserService provides the user directory operations.
type UserService interface {
	// Register creates a new user with a hashed password.
	// Returns store.ErrUsernameExists if the username is taken.
	Register(ctx context.Context, username, password, firstName, lastName string) (*domain.User, error)

	// Authenticate verifies a username/password pair. An unknown username and
	// a wrong password both fail with auth.ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// Get retrieves a user by ID. Returns store.ErrUserNotFound if absent.
	Get(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// Update applies a partial profile update and returns the updated user.
	// Returns store.ErrUserNotFound if the user does not exist and
	// store.ErrUsernameExists if the new username is held by another user.
	Update(ctx context.Context, userID uuid.UUID, update UserUpdate) (*domain.User, error)

	// UpdatePassword re-hashes and stores a new password with a fresh salt.
	// The caller is responsible for verifying the old password beforehand.
	// Returns store.ErrUserNotFound if the user does not exist.
	UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error

	// Delete removes a user. The storage layer removes the user's articles
	// with it. Returns store.ErrUserNotFound if absent.
	Delete(ctx context.Context, userID uuid.UUID) error
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	db *sql.DB,
	log *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		verifier:  verifier,
		db:        db,
		logger:    log.With("component", "user_service"),
	}
}

var _ UserService = (*UserServiceImpl)(nil)

// Register creates a new user. The username unique constraint in the store is
// the authoritative duplicate check; the pre-check here only shortcuts the
// common case and must not be relied on under concurrency.
func (s *UserServiceImpl) Register(
	ctx context.Context,
	username, password, firstName, lastName string,
) (*domain.User, error) {
	if _, err := s.userStore.GetByUsername(ctx, username); err == nil {
		s.logger.Debug("attempted to register existing username")
		return nil, store.ErrUsernameExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}

	user, err := domain.NewUser(username, password, firstName, lastName)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = "" // Plaintext is not needed past this point

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			return nil, err
		}
		s.logger.Error("failed to save user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Authenticate verifies credentials. Unknown usernames and wrong passwords
// produce the identical error so responses give no enumeration signal.
func (s *UserServiceImpl) Authenticate(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for authentication", "error", err)
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return user, nil
}

// Get retrieves a user by ID.
func (s *UserServiceImpl) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userStore.GetByID(ctx, userID)
}

// Update applies the non-nil fields of update to the stored user.
func (s *UserServiceImpl) Update(
	ctx context.Context,
	userID uuid.UUID,
	update UserUpdate,
) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Username != nil && *update.Username != user.Username {
		if err := domain.ValidateUsername(*update.Username); err != nil {
			return nil, err
		}
		if _, err := s.userStore.GetByUsername(ctx, *update.Username); err == nil {
			s.logger.Debug("attempted to take an existing username", "user_id", userID)
			return nil, store.ErrUsernameExists
		} else if !errors.Is(err, store.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check username availability: %w", err)
		}
		user.Username = *update.Username
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userStore.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", userID)
	return user, nil
}

// UpdatePassword stores a freshly salted hash of newPassword. It does not
// re-check the old password; the handler does that before calling in.
func (s *UserServiceImpl) UpdatePassword(
	ctx context.Context,
	userID uuid.UUID,
	newPassword string,
) error {
	if err := domain.ValidatePassword(newPassword); err != nil {
		return err
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err, "user_id", userID)
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.UpdatedAt = time.Now().UTC()

	if err := s.userStore.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("user password updated", "user_id", userID)
	return nil
}

// Delete removes a user by ID.
func (s *UserServiceImpl) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.userStore.Delete(ctx, userID)
}
