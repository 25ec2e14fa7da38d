package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("hash and compare round trip", func(t *testing.T) {
		t.Parallel()
		hash, err := hasher.Hash("secret123")
		require.NoError(t, err)
		require.NotEmpty(t, hash)
		assert.NotEqual(t, "secret123", hash)

		assert.NoError(t, hasher.Compare(hash, "secret123"))
		assert.Error(t, hasher.Compare(hash, "wrong-password"))
	})

	t.Run("same password hashes differently", func(t *testing.T) {
		t.Parallel()
		first, err := hasher.Hash("secret123")
		require.NoError(t, err)
		second, err := hasher.Hash("secret123")
		require.NoError(t, err)

		// Each hash carries its own salt.
		assert.NotEqual(t, first, second)
		assert.NoError(t, hasher.Compare(first, "secret123"))
		assert.NoError(t, hasher.Compare(second, "secret123"))
	})

	t.Run("below-minimum cost falls back to default", func(t *testing.T) {
		t.Parallel()
		h := NewBcryptHasher(0)
		hash, err := h.Hash("secret123")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}
