package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/checkdaily/checkdaily/internal/logger"
	"github.com/checkdaily/checkdaily/internal/service"
	"github.com/checkdaily/checkdaily/internal/store"
	"github.com/checkdaily/checkdaily/internal/utils"
	"github.com/checkdaily/checkdaily/models"
)

func profileResponse(user models.User) models.ProfileResponse {
	return models.ProfileResponse{
		UserID:            user.UserID,
		Username:          user.Username,
		Email:             user.Email,
		DisplayName:       user.DisplayName,
		Bio:               user.Bio,
		ProfilePictureURL: user.ProfilePictureURL,
		CreatedAt:         user.CreatedAt,
	}
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	profile, err := h.services.ProfileService.Profile(ctx, user.UserID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during fetching profile")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, profileResponse(profile), http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.UpdateProfile(ctx, user.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid profile data provided")
			writeError(w, "username and email must not be empty", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			log.Err(err).Msg("username or email already taken")
			writeError(w, "profile update failed", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during updating profile")
			writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, profileResponse(profile), http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.DeleteAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.ProfileService.DeleteAccount(ctx, user.UserID, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Err(err).Msg("account deletion rejected: wrong password")
			writeError(w, "invalid password", http.StatusUnauthorized)
			return
		}
		log.Err(err).Msg("unexpected error occurred during deleting account")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Info().Int64("id", user.UserID).Msg("account deleted")

	utils.WriteJSON(w, models.DeleteAccountResponse{
		Success: true,
		Message: "account deleted successfully",
	}, http.StatusOK)
}
