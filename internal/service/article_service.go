package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/scholarly/article-api/internal/domain"
	"github.com/scholarly/article-api/internal/store"
)

// ArticleCreate carries the fields needed to create an article.
type ArticleCreate struct {
	Title           string
	Authors         []string
	PublicationDate string
	Keywords        []string
	Abstract        string
	Journal         string
	DOI             string
	Pages           string
	UserID          uuid.UUID
}

// ArticleUpdate carries the fields of a partial article update. Nil means the
// field was absent and keeps its stored value. Like UserUpdate, this is an
// explicit allow-list of updatable fields.
type ArticleUpdate struct {
	Title           *string
	Authors         *[]string
	PublicationDate *string
	Keywords        *[]string
	Abstract        *string
	Journal         *string
	DOI             *string
	Pages           *string
}

// ArticleService provides the article catalog operations.
type ArticleService interface {
	// Create persists a new article for an existing owner.
	// Returns store.ErrUserNotFound if the owner does not exist.
	Create(ctx context.Context, data ArticleCreate) (*domain.Article, error)

	// Get retrieves an article by ID.
	// Returns store.ErrArticleNotFound if absent.
	Get(ctx context.Context, articleID uuid.UUID) (*domain.Article, error)

	// ListAll returns every article in the store, unfiltered and unpaginated.
	ListAll(ctx context.Context) ([]*domain.Article, error)

	// ListByUser returns the articles owned by the given user, possibly none.
	// Returns store.ErrUserNotFound if the user does not exist.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Article, error)

	// Search returns the user's articles whose field matches term.
	// The field must be one of title, keywords, or doi, and the term must be
	// non-empty; either failure is a domain validation error.
	// Returns store.ErrUserNotFound if the user does not exist.
	Search(ctx context.Context, userID uuid.UUID, term string, field string) ([]*domain.Article, error)

	// Update applies a partial update and returns the updated article.
	// No ownership re-check happens here; any authenticated caller may
	// update any article by ID, mirroring the routing layer's contract.
	// Returns store.ErrArticleNotFound if absent.
	Update(ctx context.Context, articleID uuid.UUID, update ArticleUpdate) (*domain.Article, error)

	// Delete removes an article by ID.
	// Returns store.ErrArticleNotFound if absent.
	Delete(ctx context.Context, articleID uuid.UUID) error
}

// ArticleServiceImpl implements the ArticleService interface.
type ArticleServiceImpl struct {
	articleStore store.ArticleStore
	userStore    store.UserStore
	logger       *slog.Logger
}

// NewArticleService creates a new ArticleService.
func NewArticleService(
	articleStore store.ArticleStore,
	userStore store.UserStore,
	log *slog.Logger,
) *ArticleServiceImpl {
	return &ArticleServiceImpl{
		articleStore: articleStore,
		userStore:    userStore,
		logger:       log.With("component", "article_service"),
	}
}

var _ ArticleService = (*ArticleServiceImpl)(nil)

// Create persists a new article. The owner check here gives a clean not-found
// error; the foreign key constraint in the store backs it under concurrency.
func (s *ArticleServiceImpl) Create(
	ctx context.Context,
	data ArticleCreate,
) (*domain.Article, error) {
	if _, err := s.userStore.GetByID(ctx, data.UserID); err != nil {
		return nil, err
	}

	article, err := domain.NewArticle(
		data.Title,
		data.Authors,
		data.PublicationDate,
		data.Keywords,
		data.Abstract,
		data.Journal,
		data.DOI,
		data.Pages,
		data.UserID,
	)
	if err != nil {
		return nil, err
	}

	if err := s.articleStore.Create(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Info("article created", "article_id", article.ID, "user_id", article.UserID)
	return article, nil
}

// Get retrieves an article by ID.
func (s *ArticleServiceImpl) Get(
	ctx context.Context,
	articleID uuid.UUID,
) (*domain.Article, error) {
	return s.articleStore.GetByID(ctx, articleID)
}

// ListAll returns every article in the store.
func (s *ArticleServiceImpl) ListAll(ctx context.Context) ([]*domain.Article, error) {
	return s.articleStore.List(ctx)
}

// ListByUser returns the given user's articles.
func (s *ArticleServiceImpl) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Article, error) {
	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.articleStore.ListByUser(ctx, userID)
}

// Search returns the user's articles matching term on the given field.
func (s *ArticleServiceImpl) Search(
	ctx context.Context,
	userID uuid.UUID,
	term string,
	field string,
) ([]*domain.Article, error) {
	if term == "" {
		return nil, domain.NewValidationError("query", "is required", domain.ErrValidation)
	}
	searchField := store.SearchField(field)
	if !searchField.Valid() {
		return nil, domain.NewValidationError(
			"type",
			fmt.Sprintf("must be one of title, keywords, doi; got %q", field),
			domain.ErrValidation,
		)
	}

	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return s.articleStore.Search(ctx, userID, term, searchField)
}

// Update applies the non-nil fields of update to the stored article.
func (s *ArticleServiceImpl) Update(
	ctx context.Context,
	articleID uuid.UUID,
	update ArticleUpdate,
) (*domain.Article, error) {
	article, err := s.articleStore.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		article.Title = *update.Title
	}
	if update.Authors != nil {
		article.Authors = *update.Authors
	}
	if update.PublicationDate != nil {
		if err := domain.ValidatePublicationDate(*update.PublicationDate); err != nil {
			return nil, err
		}
		article.PublicationDate = *update.PublicationDate
	}
	if update.Keywords != nil {
		article.Keywords = *update.Keywords
	}
	if update.Abstract != nil {
		article.Abstract = *update.Abstract
	}
	if update.Journal != nil {
		article.Journal = *update.Journal
	}
	if update.DOI != nil {
		article.DOI = *update.DOI
	}
	if update.Pages != nil {
		article.Pages = *update.Pages
	}
	article.UpdatedAt = time.Now().UTC()

	if err := s.articleStore.Update(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Info("article updated", "article_id", articleID)
	return article, nil
}

// Delete removes an article by ID.
func (s *ArticleServiceImpl) Delete(ctx context.Context, articleID uuid.UUID) error {
	return s.articleStore.Delete(ctx, articleID)
}
