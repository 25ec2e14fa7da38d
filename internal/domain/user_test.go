package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("test@example.com", "secret123", "Ada", "Lovelace")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "test@example.com", user.Username)
		assert.Equal(t, "Ada", user.FirstName)
		assert.Equal(t, "Lovelace", user.LastName)
		assert.Equal(t, "secret123", user.Password)
		assert.False(t, user.CreatedAt.IsZero())
		assert.False(t, user.UpdatedAt.IsZero())
	})

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{
			name:     "empty username",
			username: "",
			password: "secret123",
			wantErr:  ErrValidation,
		},
		{
			name:     "username without at sign",
			username: "not-an-email",
			password: "secret123",
			wantErr:  ErrInvalidUsername,
		},
		{
			name:     "username without domain dot",
			username: "user@localhost",
			password: "secret123",
			wantErr:  ErrInvalidUsername,
		},
		{
			name:     "password too short",
			username: "test@example.com",
			password: "short",
			wantErr:  ErrPasswordTooShort,
		},
		{
			name:     "password too long",
			username: "test@example.com",
			password: strings.Repeat("x", 73),
			wantErr:  ErrPasswordTooLong,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewUser(tc.username, tc.password, "Ada", "Lovelace")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	valid := User{
		ID:             uuid.New(),
		Username:       "test@example.com",
		HashedPassword: "$2a$10$fakehashfakehashfakehash",
	}

	t.Run("valid stored user without plaintext", func(t *testing.T) {
		t.Parallel()
		u := valid
		assert.NoError(t, u.Validate())
	})

	t.Run("nil ID", func(t *testing.T) {
		t.Parallel()
		u := valid
		u.ID = uuid.Nil
		assert.ErrorIs(t, u.Validate(), ErrInvalidID)
	})

	t.Run("neither plaintext nor hash", func(t *testing.T) {
		t.Parallel()
		u := valid
		u.HashedPassword = ""
		assert.ErrorIs(t, u.Validate(), ErrValidation)
	})

	t.Run("plaintext checked when present", func(t *testing.T) {
		t.Parallel()
		u := valid
		u.Password = "tiny"
		assert.ErrorIs(t, u.Validate(), ErrPasswordTooShort)
	})
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewValidationError("username", "must be a valid email address", ErrInvalidUsername)
	assert.Equal(t, "username must be a valid email address", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidUsername))
	assert.True(t, errors.Is(err, ErrValidation))
}
