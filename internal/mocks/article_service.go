package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/scholarly/article-api/internal/domain"
	"github.com/scholarly/article-api/internal/service"
	"github.com/scholarly/article-api/internal/store"
)

// MockArticleService implements service.ArticleService for testing
type MockArticleService struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, data service.ArticleCreate) (*domain.Article, error)
	GetFn        func(ctx context.Context, articleID uuid.UUID) (*domain.Article, error)
	ListAllFn    func(ctx context.Context) ([]*domain.Article, error)
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Article, error)
	SearchFn     func(ctx context.Context, userID uuid.UUID, term string, field string) ([]*domain.Article, error)
	UpdateFn     func(ctx context.Context, articleID uuid.UUID, update service.ArticleUpdate) (*domain.Article, error)
	DeleteFn     func(ctx context.Context, articleID uuid.UUID) error

	// Default values used when functions aren't explicitly defined
	Article  *domain.Article
	Articles []*domain.Article
	Err      error
}

var _ service.ArticleService = (*MockArticleService)(nil)

// Create implements the service.ArticleService interface
func (m *MockArticleService) Create(
	ctx context.Context,
	data service.ArticleCreate,
) (*domain.Article, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, data)
	}
	return m.Article, m.Err
}

// Get implements the service.ArticleService interface
func (m *MockArticleService) Get(
	ctx context.Context,
	articleID uuid.UUID,
) (*domain.Article, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, articleID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Article == nil {
		return nil, store.ErrArticleNotFound
	}
	return m.Article, nil
}

// ListAll implements the service.ArticleService interface
func (m *MockArticleService) ListAll(ctx context.Context) ([]*domain.Article, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return m.Articles, m.Err
}

// ListByUser implements the service.ArticleService interface
func (m *MockArticleService) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Article, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return m.Articles, m.Err
}

// Search implements the service.ArticleService interface
func (m *MockArticleService) Search(
	ctx context.Context,
	userID uuid.UUID,
	term string,
	field string,
) ([]*domain.Article, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, userID, term, field)
	}
	return m.Articles, m.Err
}

// Update implements the service.ArticleService interface
func (m *MockArticleService) Update(
	ctx context.Context,
	articleID uuid.UUID,
	update service.ArticleUpdate,
) (*domain.Article, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, articleID, update)
	}
	return m.Article, m.Err
}

// Delete implements the service.ArticleService interface
func (m *MockArticleService) Delete(ctx context.Context, articleID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, articleID)
	}
	return m.Err
}
