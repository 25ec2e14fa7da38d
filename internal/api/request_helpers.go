package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/scholarly/article-api/internal/domain"
)

// getPathUUID reads a URL path parameter and parses it as a UUID. A missing
// or malformed value is a validation error against the parameter name.
func getPathUUID(r *http.Request, param string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return uuid.Nil, domain.NewValidationError(param, "is required", domain.ErrInvalidID)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(
			param,
			fmt.Sprintf("must be a valid UUID; got %q", raw),
			domain.ErrInvalidID,
		)
	}
	return id, nil
}
