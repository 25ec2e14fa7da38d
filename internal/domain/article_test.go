package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validArticleArgs() (string, []string, string, []string, string, string, string, string, uuid.UUID) {
	return "Attention Is All You Need",
		[]string{"Vaswani", "Shazeer"},
		"2017-06-12",
		[]string{"transformers", "attention"},
		"We propose a new architecture.",
		"NeurIPS",
		"10.48550/arXiv.1706.03762",
		"11",
		uuid.New()
}

func TestNewArticle(t *testing.T) {
	t.Parallel()

	t.Run("valid article", func(t *testing.T) {
		t.Parallel()
		title, authors, date, keywords, abstract, journal, doi, pages, userID := validArticleArgs()
		article, err := NewArticle(title, authors, date, keywords, abstract, journal, doi, pages, userID)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, article.ID)
		assert.Equal(t, title, article.Title)
		assert.Equal(t, authors, article.Authors)
		assert.Equal(t, keywords, article.Keywords)
		assert.Equal(t, userID, article.UserID)
		assert.Equal(t, "11", article.Pages)
		assert.False(t, article.CreatedAt.IsZero())
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()
		_, authors, date, keywords, abstract, journal, doi, pages, userID := validArticleArgs()
		_, err := NewArticle("", authors, date, keywords, abstract, journal, doi, pages, userID)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing owner", func(t *testing.T) {
		t.Parallel()
		title, authors, date, keywords, abstract, journal, doi, pages, _ := validArticleArgs()
		_, err := NewArticle(title, authors, date, keywords, abstract, journal, doi, pages, uuid.Nil)
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("malformed publication date", func(t *testing.T) {
		t.Parallel()
		title, authors, _, keywords, abstract, journal, doi, pages, userID := validArticleArgs()
		_, err := NewArticle(title, authors, "June 2017", keywords, abstract, journal, doi, pages, userID)
		assert.ErrorIs(t, err, ErrInvalidPublicationDate)
	})
}

func TestValidatePublicationDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		date    string
		wantErr error
	}{
		{name: "valid date", date: "2024-01-15", wantErr: nil},
		{name: "shape only, calendar not enforced", date: "2024-02-31", wantErr: nil},
		{name: "empty", date: "", wantErr: ErrValidation},
		{name: "missing day", date: "2024-01", wantErr: ErrInvalidPublicationDate},
		{name: "slashes", date: "2024/01/15", wantErr: ErrInvalidPublicationDate},
		{name: "trailing text", date: "2024-01-15T00:00", wantErr: ErrInvalidPublicationDate},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePublicationDate(tc.date)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
