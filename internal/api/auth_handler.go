package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/scholarly/article-api/internal/api/middleware"
	"github.com/scholarly/article-api/internal/api/shared"
	"github.com/scholarly/article-api/internal/service"
	"github.com/scholarly/article-api/internal/service/auth"
)

// AuthHandler handles registration, login, and token refresh.
type AuthHandler struct {
	userService service.UserService
	jwtService  auth.JWTService
	errorMapper *ErrorMapper
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userService service.UserService,
	jwtService auth.JWTService,
	errorMapper *ErrorMapper,
	log *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		errorMapper: errorMapper,
		logger:      log.With("component", "auth_handler"),
	}
}

// refreshData is the success payload for a token refresh. Only a fresh
// access token is issued; the refresh token the client holds stays valid
// until its own expiry.
type refreshData struct {
	Tokens TokensResponse `json:"tokens"`
}

// Register handles POST /users/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.FormatValidationError(err))
		return
	}

	user, err := h.userService.Register(r.Context(), req.Username, req.Password, req.FirstName, req.LastName)
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	tokens, err := h.issueTokenPair(r, user.ID)
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, AuthData{
		User:   userToResponse(user),
		Tokens: tokens,
	})
}

// Login handles POST /users/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.FormatValidationError(err))
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	tokens, err := h.issueTokenPair(r, user.ID)
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, AuthData{
		User:   userToResponse(user),
		Tokens: tokens,
	})
}

// RefreshToken handles POST /users/token. The refresh token travels in the
// Authorization header the same way access tokens do on protected routes.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.BearerToken(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), token)
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	// The user may have been deleted since the refresh token was issued.
	if _, err := h.userService.Get(r.Context(), claims.UserID); err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	accessToken, err := h.jwtService.GenerateToken(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("failed to generate access token", "error", err, "user_id", claims.UserID)
		h.errorMapper.Respond(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, refreshData{
		Tokens: TokensResponse{AccessToken: accessToken},
	})
}

func (h *AuthHandler) issueTokenPair(r *http.Request, userID uuid.UUID) (TokensResponse, error) {
	accessToken, err := h.jwtService.GenerateToken(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to generate access token", "error", err, "user_id", userID)
		return TokensResponse{}, err
	}
	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to generate refresh token", "error", err, "user_id", userID)
		return TokensResponse{}, err
	}
	return TokensResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
