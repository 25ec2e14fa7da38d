package api

import (
	"log/slog"
	"net/http"

	"github.com/scholarly/article-api/internal/api/shared"
	"github.com/scholarly/article-api/internal/service"
)

// ArticleHandler handles the article catalog endpoints. All routes here sit
// behind the authentication middleware.
type ArticleHandler struct {
	articleService service.ArticleService
	errorMapper    *ErrorMapper
	logger         *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler with the given dependencies.
func NewArticleHandler(
	articleService service.ArticleService,
	errorMapper *ErrorMapper,
	log *slog.Logger,
) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		errorMapper:    errorMapper,
		logger:         log.With("component", "article_handler"),
	}
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateArticleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.FormatValidationError(err))
		return
	}

	article, err := h.articleService.Create(r.Context(), service.ArticleCreate{
		Title:           req.Title,
		Authors:         req.Authors,
		PublicationDate: req.PublicationDate,
		Keywords:        req.Keywords,
		Abstract:        req.Abstract,
		Journal:         req.Journal,
		DOI:             req.DOI,
		Pages:           string(req.Pages),
		UserID:          req.UserID,
	})
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, map[string]interface{}{
		"article": articleToResponse(article),
	})
}

// List handles GET /articles. The full catalog is returned, not just the
// caller's articles.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleService.ListAll(r.Context())
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, map[string]interface{}{
		"articles": articlesToResponse(articles),
	})
}

// Get handles GET /articles/{id}.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathUUID(r, "id")
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	article, err := h.articleService.Get(r.Context(), articleID)
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, map[string]interface{}{
		"article": articleToResponse(article),
	})
}

// ListByUser handles GET /articles/user/{user_id}.
func (h *ArticleHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "user_id")
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	articles, err := h.articleService.ListByUser(r.Context(), userID)
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, map[string]interface{}{
		"articles": articlesToResponse(articles),
	})
}

// Search handles GET /articles/search/{user_id}?query=...&type=... within the
// given user's articles. Matching is case-insensitive substring on the chosen
// field; type defaults to title when absent.
func (h *ArticleHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "user_id")
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	query := r.URL.Query().Get("query")
	searchType := r.URL.Query().Get("type")
	if searchType == "" {
		searchType = "title"
	}

	articles, err := h.articleService.Search(r.Context(), userID, query, searchType)
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, map[string]interface{}{
		"articles": articlesToResponse(articles),
	})
}

// Update handles PUT /articles/{id}. Absent fields keep their stored values.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathUUID(r, "id")
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	var req UpdateArticleRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	update := service.ArticleUpdate{
		Title:           req.Title,
		Authors:         req.Authors,
		PublicationDate: req.PublicationDate,
		Keywords:        req.Keywords,
		Abstract:        req.Abstract,
		Journal:         req.Journal,
		DOI:             req.DOI,
	}
	if req.Pages != nil {
		pages := string(*req.Pages)
		update.Pages = &pages
	}

	article, err := h.articleService.Update(r.Context(), articleID, update)
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, map[string]interface{}{
		"article": articleToResponse(article),
	})
}

// Delete handles DELETE /articles/{id}.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathUUID(r, "id")
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	if err := h.articleService.Delete(r.Context(), articleID); err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, map[string]interface{}{
		"message": "Article deleted successfully",
	})
}
