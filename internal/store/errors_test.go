package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	t.Run("entity sentinels wrap the generic ones", func(t *testing.T) {
		t.Parallel()
		assert.True(t, IsNotFoundError(ErrUserNotFound))
		assert.True(t, IsNotFoundError(ErrArticleNotFound))
		assert.True(t, IsDuplicateError(ErrUsernameExists))
		assert.False(t, IsNotFoundError(ErrUsernameExists))
		assert.False(t, IsDuplicateError(ErrUserNotFound))
	})

	t.Run("wrapping preserves classification", func(t *testing.T) {
		t.Parallel()
		wrapped := fmt.Errorf("looking up owner: %w", ErrUserNotFound)
		assert.True(t, IsNotFoundError(wrapped))
		assert.True(t, errors.Is(wrapped, ErrUserNotFound))
	})
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New(`relation "articles" does not exist`)
	err := NewStoreError("article", "list", "articles", cause)

	assert.Contains(t, err.Error(), "list operation on article failed")
	assert.ErrorIs(t, err, cause)

	var storeErr *StoreError
	assert.ErrorAs(t, fmt.Errorf("listing: %w", err), &storeErr)
	assert.Equal(t, "articles", storeErr.Relation)
}
