package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// publicationDateRegex checks shape only. A date like 2024-02-31 passes;
// calendar validity is deliberately not enforced.
var publicationDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Article represents the metadata of a scientific article owned by a user.
// Authors and Keywords are ordered; their order is preserved through storage.
// Pages holds either a page count or a free-text range ("123-145"), so it is
// kept as a string.
type Article struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Authors         []string  `json:"authors"`
	PublicationDate string    `json:"publication_date"`
	Keywords        []string  `json:"keywords"`
	Abstract        string    `json:"abstract"`
	Journal         string    `json:"journal"`
	DOI             string    `json:"doi"`
	Pages           string    `json:"pages,omitempty"`
	UserID          uuid.UUID `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewArticle creates a new Article with a fresh UUID and timestamps.
// The owner referenced by userID must exist; the store enforces that.
func NewArticle(
	title string,
	authors []string,
	publicationDate string,
	keywords []string,
	abstract, journal, doi, pages string,
	userID uuid.UUID,
) (*Article, error) {
	article := &Article{
		ID:              uuid.New(),
		Title:           title,
		Authors:         authors,
		PublicationDate: publicationDate,
		Keywords:        keywords,
		Abstract:        abstract,
		Journal:         journal,
		DOI:             doi,
		Pages:           pages,
		UserID:          userID,
		CreatedAt:       time.Now().UTC(),
		UpdatedAt:       time.Now().UTC(),
	}

	if err := article.Validate(); err != nil {
		return nil, err
	}

	return article, nil
}

// Validate checks the article's fields against the domain rules.
func (a *Article) Validate() error {
	if a.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if a.Title == "" {
		return NewValidationError("title", "is required", ErrValidation)
	}
	if a.UserID == uuid.Nil {
		return NewValidationError("user_id", "is required", ErrInvalidID)
	}
	if err := ValidatePublicationDate(a.PublicationDate); err != nil {
		return err
	}
	return nil
}

// ValidatePublicationDate checks that a date string is in YYYY-MM-DD form.
func ValidatePublicationDate(date string) error {
	if date == "" {
		return NewValidationError("publication_date", "is required", ErrValidation)
	}
	if !publicationDateRegex.MatchString(date) {
		return NewValidationError(
			"publication_date",
			"must be in YYYY-MM-DD format",
			ErrInvalidPublicationDate,
		)
	}
	return nil
}
