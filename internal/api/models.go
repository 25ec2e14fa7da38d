package api

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/scholarly/article-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username  string `json:"username"   validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6,max=72"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// UpdateUserRequest defines the payload for partial profile updates.
// Nil fields were absent from the request and stay unchanged; unrecognized
// keys in the payload are ignored.
type UpdateUserRequest struct {
	Username  *string `json:"username"   validate:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// UpdatePasswordRequest defines the payload for the password change endpoint.
// The new password is validated before any store access happens.
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=72"`
}

// FlexiblePages accepts either a JSON number or a string for the pages field,
// normalizing both to a string.
type FlexiblePages string

// UnmarshalJSON implements json.Unmarshaler.
func (p *FlexiblePages) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = FlexiblePages(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("pages must be a number or a string")
	}
	*p = FlexiblePages(n.String())
	return nil
}

// CreateArticleRequest defines the payload for the article creation endpoint.
// Authors and keywords must be JSON arrays of strings.
type CreateArticleRequest struct {
	Title           string        `json:"title"            validate:"required"`
	Authors         []string      `json:"authors"          validate:"required"`
	PublicationDate string        `json:"publication_date" validate:"required"`
	Keywords        []string      `json:"keywords"         validate:"required"`
	Abstract        string        `json:"abstract"         validate:"required"`
	Journal         string        `json:"journal"          validate:"required"`
	DOI             string        `json:"doi"              validate:"required"`
	Pages           FlexiblePages `json:"pages"`
	UserID          uuid.UUID     `json:"user_id"          validate:"required"`
}

// UpdateArticleRequest defines the payload for partial article updates.
type UpdateArticleRequest struct {
	Title           *string        `json:"title"`
	Authors         *[]string      `json:"authors"`
	PublicationDate *string        `json:"publication_date"`
	Keywords        *[]string      `json:"keywords"`
	Abstract        *string        `json:"abstract"`
	Journal         *string        `json:"journal"`
	DOI             *string        `json:"doi"`
	Pages           *FlexiblePages `json:"pages"`
}

// UserResponse is the client-facing shape of a user. The password hash never
// appears here.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// TokensResponse carries an issued token pair, or just a fresh access token
// on refresh.
type TokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// AuthData is the success payload for registration and login.
type AuthData struct {
	User   UserResponse   `json:"user"`
	Tokens TokensResponse `json:"tokens"`
}

// ArticleResponse is the client-facing shape of an article.
type ArticleResponse struct {
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
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func articleToResponse(article *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:              article.ID,
		Title:           article.Title,
		Authors:         article.Authors,
		PublicationDate: article.PublicationDate,
		Keywords:        article.Keywords,
		Abstract:        article.Abstract,
		Journal:         article.Journal,
		DOI:             article.DOI,
		Pages:           article.Pages,
		UserID:          article.UserID,
	}
}

func articlesToResponse(articles []*domain.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, articleToResponse(a))
	}
	return out
}
