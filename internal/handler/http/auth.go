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

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, user, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid registration data provided")
			writeError(w, "username, email and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserAlreadyExists):
			// deliberately vague so callers cannot probe which field collided
			log.Err(err).Msg("username or email already taken")
			writeError(w, "registration failed", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully registered")

	publicUser := user.Public()
	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "registration successful",
		Token:   token.SignedString,
		User:    &publicUser,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid login data provided")
			writeError(w, "email and password are required", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			// unknown email and wrong password produce the same response
			log.Err(err).Msg("invalid email/password")
			writeError(w, "invalid email or password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	publicUser := user.Public()
	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		Message: "login successful",
		Token:   token.SignedString,
		User:    &publicUser,
	}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.MeResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, http.StatusOK)
}
