package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/scholarly/article-api/internal/domain"
	"github.com/scholarly/article-api/internal/platform/logger"
	"github.com/scholarly/article-api/internal/store"
)

// PostgresArticleStore implements the store.ArticleStore interface using a
// PostgreSQL database as the storage backend. Authors and keywords are kept
// as jsonb arrays so their order survives the round trip.
type PostgresArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of the
// ArticleStore interface.
func NewPostgresArticleStore(db store.DBTX, log *slog.Logger) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresArticleStore{
		db:     db,
		logger: log.With(slog.String("component", "article_store")),
	}
}

// Ensure PostgresArticleStore implements store.ArticleStore interface
var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// WithTx implements store.ArticleStore.WithTx
func (s *PostgresArticleStore) WithTx(tx *sql.Tx) store.ArticleStore {
	return &PostgresArticleStore{
		db:     tx,
		logger: s.logger,
	}
}

const articleColumns = `id, title, authors, publication_date, keywords, abstract, journal, doi, pages, user_id, created_at, updated_at`

// Create implements store.ArticleStore.Create
// A foreign key violation on user_id surfaces as store.ErrUserNotFound.
func (s *PostgresArticleStore) Create(ctx context.Context, article *domain.Article) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := article.Validate(); err != nil {
		log.Warn("article validation failed during create",
			slog.String("error", err.Error()),
			slog.String("article_id", article.ID.String()))
		return err
	}

	authors, keywords, err := marshalArrays(article)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO articles (` + articleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		article.ID,
		article.Title,
		authors,
		article.PublicationDate,
		keywords,
		article.Abstract,
		article.Journal,
		article.DOI,
		nullablePages(article.Pages),
		article.UserID,
		article.CreatedAt,
		article.UpdatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during article creation",
				slog.String("article_id", article.ID.String()),
				slog.String("user_id", article.UserID.String()))
			return fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
		}
		log.Error("failed to create article",
			slog.String("error", err.Error()),
			slog.String("article_id", article.ID.String()))
		return MapError(err, "article", "create")
	}

	log.Info("article created",
		slog.String("article_id", article.ID.String()),
		slog.String("user_id", article.UserID.String()))
	return nil
}

// GetByID implements store.ArticleStore.GetByID
func (s *PostgresArticleStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

	article, err := scanArticle(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrArticleNotFound
		}
		log.Error("failed to get article by ID",
			slog.String("error", err.Error()),
			slog.String("article_id", id.String()))
		return nil, MapError(err, "article", "get")
	}

	return article, nil
}

// List implements store.ArticleStore.List
func (s *PostgresArticleStore) List(ctx context.Context) ([]*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	return s.queryArticles(ctx, "list", query)
}

// ListByUser implements store.ArticleStore.ListByUser
func (s *PostgresArticleStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE user_id = $1`
	return s.queryArticles(ctx, "list_by_user", query, userID)
}

// Search implements store.ArticleStore.Search
// Matching is a case-insensitive substring match, always scoped to the owner.
func (s *PostgresArticleStore) Search(
	ctx context.Context,
	userID uuid.UUID,
	term string,
	field store.SearchField,
) ([]*domain.Article, error) {
	var predicate string
	switch field {
	case store.SearchFieldTitle:
		predicate = `title ILIKE '%' || $2 || '%'`
	case store.SearchFieldDOI:
		predicate = `doi ILIKE '%' || $2 || '%'`
	case store.SearchFieldKeywords:
		predicate = `EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(keywords) AS kw
			WHERE kw ILIKE '%' || $2 || '%'
		)`
	default:
		return nil, fmt.Errorf("%w: unsupported search field %q", store.ErrInvalidEntity, field)
	}

	query := `SELECT ` + articleColumns + ` FROM articles WHERE user_id = $1 AND ` + predicate
	return s.queryArticles(ctx, "search", query, userID, term)
}

// Update implements store.ArticleStore.Update
func (s *PostgresArticleStore) Update(ctx context.Context, article *domain.Article) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := article.Validate(); err != nil {
		log.Warn("article validation failed during update",
			slog.String("error", err.Error()),
			slog.String("article_id", article.ID.String()))
		return err
	}

	authors, keywords, err := marshalArrays(article)
	if err != nil {
		return err
	}

	query := `
		UPDATE articles
		SET title = $2, authors = $3, publication_date = $4, keywords = $5,
		    abstract = $6, journal = $7, doi = $8, pages = $9, updated_at = $10
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		article.ID,
		article.Title,
		authors,
		article.PublicationDate,
		keywords,
		article.Abstract,
		article.Journal,
		article.DOI,
		nullablePages(article.Pages),
		article.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to update article",
			slog.String("error", err.Error()),
			slog.String("article_id", article.ID.String()))
		return MapError(err, "article", "update")
	}

	return CheckRowsAffected(result, store.ErrArticleNotFound)
}

// Delete implements store.ArticleStore.Delete
func (s *PostgresArticleStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete article",
			slog.String("error", err.Error()),
			slog.String("article_id", id.String()))
		return MapError(err, "article", "delete")
	}

	if err := CheckRowsAffected(result, store.ErrArticleNotFound); err != nil {
		return err
	}

	log.Info("article deleted", slog.String("article_id", id.String()))
	return nil
}

func (s *PostgresArticleStore) queryArticles(
	ctx context.Context,
	operation, query string,
	args ...any,
) ([]*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query articles",
			slog.String("error", err.Error()),
			slog.String("operation", operation))
		return nil, MapError(err, "article", operation)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	articles := make([]*domain.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			log.Error("failed to scan article row",
				slog.String("error", err.Error()),
				slog.String("operation", operation))
			return nil, MapError(err, "article", operation)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err, "article", operation)
	}

	return articles, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*domain.Article, error) {
	var (
		article  domain.Article
		authors  []byte
		keywords []byte
		pages    sql.NullString
	)

	err := row.Scan(
		&article.ID,
		&article.Title,
		&authors,
		&article.PublicationDate,
		&keywords,
		&article.Abstract,
		&article.Journal,
		&article.DOI,
		&pages,
		&article.UserID,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(authors, &article.Authors); err != nil {
		return nil, fmt.Errorf("failed to unmarshal authors: %w", err)
	}
	if err := json.Unmarshal(keywords, &article.Keywords); err != nil {
		return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
	}
	article.Pages = pages.String

	return &article, nil
}

func marshalArrays(article *domain.Article) ([]byte, []byte, error) {
	authors, err := json.Marshal(article.Authors)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal authors: %w", err)
	}
	keywords, err := json.Marshal(article.Keywords)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal keywords: %w", err)
	}
	return authors, keywords, nil
}

func nullablePages(pages string) sql.NullString {
	return sql.NullString{String: pages, Valid: pages != ""}
}
