package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/scholarly/article-api/internal/domain"
	"github.com/scholarly/article-api/internal/service"
	"github.com/scholarly/article-api/internal/store"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	// Function fields for customizable behavior
	RegisterFn       func(ctx context.Context, username, password, firstName, lastName string) (*domain.User, error)
	AuthenticateFn   func(ctx context.Context, username, password string) (*domain.User, error)
	GetFn            func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateFn         func(ctx context.Context, userID uuid.UUID, update service.UserUpdate) (*domain.User, error)
	UpdatePasswordFn func(ctx context.Context, userID uuid.UUID, newPassword string) error
	DeleteFn         func(ctx context.Context, userID uuid.UUID) error

	// Default values used when functions aren't explicitly defined
	User *domain.User
	Err  error
}

var _ service.UserService = (*MockUserService)(nil)

// Register implements the service.UserService interface
func (m *MockUserService) Register(
	ctx context.Context,
	username, password, firstName, lastName string,
) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, username, password, firstName, lastName)
	}
	return m.User, m.Err
}

// Authenticate implements the service.UserService interface
func (m *MockUserService) Authenticate(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	if m.AuthenticateFn != nil {
		return m.AuthenticateFn(ctx, username, password)
	}
	return m.User, m.Err
}

// Get implements the service.UserService interface
func (m *MockUserService) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.User == nil {
		return nil, store.ErrUserNotFound
	}
	return m.User, nil
}

// Update implements the service.UserService interface
func (m *MockUserService) Update(
	ctx context.Context,
	userID uuid.UUID,
	update service.UserUpdate,
) (*domain.User, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, update)
	}
	return m.User, m.Err
}

// UpdatePassword implements the service.UserService interface
func (m *MockUserService) UpdatePassword(
	ctx context.Context,
	userID uuid.UUID,
	newPassword string,
) error {
	if m.UpdatePasswordFn != nil {
		return m.UpdatePasswordFn(ctx, userID, newPassword)
	}
	return m.Err
}

// Delete implements the service.UserService interface
func (m *MockUserService) Delete(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID)
	}
	return m.Err
}
