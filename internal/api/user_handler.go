package api

import (
	"log/slog"
	"net/http"

	"github.com/scholarly/article-api/internal/api/shared"
	"github.com/scholarly/article-api/internal/service"
	"github.com/scholarly/article-api/internal/service/auth"
)

// UserHandler handles the user profile endpoints. All routes here sit behind
// the authentication middleware; the handlers still operate on the ID in the
// path, not the token, mirroring the routing contract.
type UserHandler struct {
	userService service.UserService
	verifier    auth.PasswordVerifier
	errorMapper *ErrorMapper
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userService service.UserService,
	verifier auth.PasswordVerifier,
	errorMapper *ErrorMapper,
	log *slog.Logger,
) *UserHandler {
	return &UserHandler{
		userService: userService,
		verifier:    verifier,
		errorMapper: errorMapper,
		logger:      log.With("component", "user_handler"),
	}
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "id")
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, map[string]interface{}{
		"user": userToResponse(user),
	})
}

// Update handles PUT /users/{id}. Absent fields keep their stored values;
// unrecognized payload keys are ignored.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "id")
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.FormatValidationError(err))
		return
	}

	user, err := h.userService.Update(r.Context(), userID, service.UserUpdate{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, map[string]interface{}{
		"user": userToResponse(user),
	})
}

// UpdatePassword handles PUT /users/{id}/password. The new password is
// validated before any store access, so a malformed request never costs a
// database round trip; the old password is then verified against the stored
// hash before the change is applied.
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "id")
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	var req UpdatePasswordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, shared.FormatValidationError(err))
		return
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.OldPassword); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Old password is incorrect")
		return
	}

	if err := h.userService.UpdatePassword(r.Context(), userID, req.NewPassword); err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, map[string]interface{}{
		"message": "Password updated successfully",
	})
}

// Delete handles DELETE /users/{id}. The user's articles are removed with the
// account.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "id")
	if err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	if err := h.userService.Delete(r.Context(), userID); err != nil {
		h.errorMapper.Respond(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, map[string]interface{}{
		"message": "User deleted successfully",
	})
}
