package mocks

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/scholarly/article-api/internal/domain"
	"github.com/scholarly/article-api/internal/store"
)

// MockArticleStore implements store.ArticleStore for testing
type MockArticleStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, article *domain.Article) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	ListFn       func(ctx context.Context) ([]*domain.Article, error)
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Article, error)
	SearchFn     func(ctx context.Context, userID uuid.UUID, term string, field store.SearchField) ([]*domain.Article, error)
	UpdateFn     func(ctx context.Context, article *domain.Article) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation, keyed by article ID
	Articles    map[uuid.UUID]*domain.Article
	CreateError error
	GetError    error
}

// NewMockArticleStore creates a new mock store with initialized defaults
func NewMockArticleStore() *MockArticleStore {
	return &MockArticleStore{
		Articles: make(map[uuid.UUID]*domain.Article),
	}
}

var _ store.ArticleStore = (*MockArticleStore)(nil)

// Create implements the ArticleStore interface
func (m *MockArticleStore) Create(ctx context.Context, article *domain.Article) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, article)
	}
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Articles[article.ID] = article
	return nil
}

// GetByID implements the ArticleStore interface
func (m *MockArticleStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.GetError != nil {
		return nil, m.GetError
	}
	article, exists := m.Articles[id]
	if !exists {
		return nil, store.ErrArticleNotFound
	}
	return article, nil
}

// List implements the ArticleStore interface
func (m *MockArticleStore) List(ctx context.Context) ([]*domain.Article, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	out := make([]*domain.Article, 0, len(m.Articles))
	for _, article := range m.Articles {
		out = append(out, article)
	}
	return out, nil
}

// ListByUser implements the ArticleStore interface
func (m *MockArticleStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Article, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	out := make([]*domain.Article, 0)
	for _, article := range m.Articles {
		if article.UserID == userID {
			out = append(out, article)
		}
	}
	return out, nil
}

// Search implements the ArticleStore interface. The default implementation
// mirrors the store's case-insensitive substring matching.
func (m *MockArticleStore) Search(
	ctx context.Context,
	userID uuid.UUID,
	term string,
	field store.SearchField,
) ([]*domain.Article, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, userID, term, field)
	}
	needle := strings.ToLower(term)
	out := make([]*domain.Article, 0)
	for _, article := range m.Articles {
		if article.UserID != userID {
			continue
		}
		var match bool
		switch field {
		case store.SearchFieldTitle:
			match = strings.Contains(strings.ToLower(article.Title), needle)
		case store.SearchFieldDOI:
			match = strings.Contains(strings.ToLower(article.DOI), needle)
		case store.SearchFieldKeywords:
			for _, kw := range article.Keywords {
				if strings.Contains(strings.ToLower(kw), needle) {
					match = true
					break
				}
			}
		}
		if match {
			out = append(out, article)
		}
	}
	return out, nil
}

// Update implements the ArticleStore interface
func (m *MockArticleStore) Update(ctx context.Context, article *domain.Article) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, article)
	}
	if _, exists := m.Articles[article.ID]; !exists {
		return store.ErrArticleNotFound
	}
	m.Articles[article.ID] = article
	return nil
}

// Delete implements the ArticleStore interface
func (m *MockArticleStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, exists := m.Articles[id]; !exists {
		return store.ErrArticleNotFound
	}
	delete(m.Articles, id)
	return nil
}

// WithTx implements the ArticleStore interface. The mock has no transaction
// semantics, so it returns itself.
func (m *MockArticleStore) WithTx(tx *sql.Tx) store.ArticleStore {
	return m
}
