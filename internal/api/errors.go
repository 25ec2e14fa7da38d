package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/scholarly/article-api/internal/api/shared"
	"github.com/scholarly/article-api/internal/domain"
	"github.com/scholarly/article-api/internal/service/auth"
	"github.com/scholarly/article-api/internal/store"
)

// ErrorMapper is the single place where typed domain failures become HTTP
// responses. Handlers never pick status codes themselves; they hand the error
// here. In development mode, persistence failures caused by a missing
// relation name the table so a broken local setup is obvious; in production
// that detail is hidden.
type ErrorMapper struct {
	Development bool
}

// NewErrorMapper creates an ErrorMapper.
func NewErrorMapper(development bool) *ErrorMapper {
	return &ErrorMapper{Development: development}
}

// StatusCode maps an error to its HTTP status code.
func (m *ErrorMapper) StatusCode(err error) int {
	var validationErr *domain.ValidationError
	var storeErr *store.StoreError

	switch {
	// Validation errors
	case errors.As(err, &validationErr),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Constraint violations surfacing from the store
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Persistence failures
	case errors.As(err, &storeErr):
		return http.StatusInternalServerError

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// Message returns a sanitized, client-facing message for an error. Internal
// detail never leaks; validation errors pass their field-level message
// through because it is the client's own input being described.
func (m *ErrorMapper) Message(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *domain.ValidationError
	var storeErr *store.StoreError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()

	case errors.Is(err, auth.ErrInvalidCredentials):
		// Identical for unknown usernames and wrong passwords.
		return "Invalid credentials"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrArticleNotFound):
		return "Article not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username is already taken by another user"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.As(err, &storeErr):
		if m.Development && storeErr.Relation != "" {
			return fmt.Sprintf(
				"A database table '%s' is missing. Please check your database setup.",
				storeErr.Relation,
			)
		}
		return "Internal Server Error"

	default:
		return "Internal Server Error"
	}
}

// Respond writes the error response for err: one response per failure, with
// the full error logged and only the sanitized message sent to the client.
func (m *ErrorMapper) Respond(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, m.StatusCode(err), m.Message(err), err)
}
