package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/scholarly/article-api/internal/domain"
)

// SearchField names an article column that the store can match a search term
// against. The set is closed; anything else is rejected before reaching SQL.
type SearchField string

// Searchable article fields.
const (
	SearchFieldTitle    SearchField = "title"
	SearchFieldKeywords SearchField = "keywords"
	SearchFieldDOI      SearchField = "doi"
)

// Valid reports whether f is one of the recognized search fields.
func (f SearchField) Valid() bool {
	switch f {
	case SearchFieldTitle, SearchFieldKeywords, SearchFieldDOI:
		return true
	}
	return false
}

// ArticleStore defines the interface for article persistence.
type ArticleStore interface {
	// Create saves a new article. Returns ErrUserNotFound if the owning user
	// does not exist (foreign key violation).
	Create(ctx context.Context, article *domain.Article) error

	// GetByID retrieves an article by its unique ID.
	// Returns ErrArticleNotFound if the article does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)

	// List returns every article in the store, in store order.
	List(ctx context.Context) ([]*domain.Article, error)

	// ListByUser returns the articles owned by the given user. The result may
	// be empty; the caller checks that the user exists.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Article, error)

	// Search returns the given user's articles whose field matches term.
	// Matching is a case-insensitive substring match.
	Search(ctx context.Context, userID uuid.UUID, term string, field SearchField) ([]*domain.Article, error)

	// Update persists the full article record.
	// Returns ErrArticleNotFound if the article does not exist.
	Update(ctx context.Context, article *domain.Article) error

	// Delete removes an article by ID.
	// Returns ErrArticleNotFound if the article does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns an ArticleStore bound to the given transaction.
	WithTx(tx *sql.Tx) ArticleStore
}
