package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/checkdaily/checkdaily/internal/logger"
	"github.com/checkdaily/checkdaily/internal/service"
	"github.com/checkdaily/checkdaily/internal/store"
	"github.com/checkdaily/checkdaily/internal/utils"
	"github.com/checkdaily/checkdaily/models"
)

func (h *Handler) listChecks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	checks, err := h.services.CheckService.ListChecks(ctx, user.UserID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during listing checks")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CheckListResponse{Checks: checks}, http.StatusOK)
}

func (h *Handler) getCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	checkID := chi.URLParam(r, "checkID")

	check, err := h.services.CheckService.GetCheck(ctx, user.UserID, checkID)
	if err != nil {
		if errors.Is(err, store.ErrCheckNotFound) {
			log.Err(err).Str("check_id", checkID).Msg("check not found")
			writeError(w, "check not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during fetching check")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, check, http.StatusOK)
}

func (h *Handler) createCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CheckCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	check, err := h.services.CheckService.CreateCheck(ctx, user.UserID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Msg("invalid check data provided")
			writeError(w, "check name is required", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during creating check")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	log.Debug().Str("check_id", check.ID).Msg("check created")

	utils.WriteJSON(w, check, http.StatusCreated)
}

func (h *Handler) updateCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	checkID := chi.URLParam(r, "checkID")

	var req models.CheckUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	check, err := h.services.CheckService.UpdateCheck(ctx, user.UserID, checkID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid check data provided")
			writeError(w, "invalid check data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrCheckNotFound):
			log.Err(err).Str("check_id", checkID).Msg("check not found")
			writeError(w, "check not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during updating check")
			writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}
	}

	utils.WriteJSON(w, check, http.StatusOK)
}

func (h *Handler) deleteCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	checkID := chi.URLParam(r, "checkID")

	if err := h.services.CheckService.DeleteCheck(ctx, user.UserID, checkID); err != nil {
		if errors.Is(err, store.ErrCheckNotFound) {
			log.Err(err).Str("check_id", checkID).Msg("check not found")
			writeError(w, "check not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during deleting check")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkToday(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	checkID := chi.URLParam(r, "checkID")

	check, err := h.services.CheckService.CheckToday(ctx, user.UserID, checkID)
	if err != nil {
		if errors.Is(err, store.ErrCheckNotFound) {
			log.Err(err).Str("check_id", checkID).Msg("check not found")
			writeError(w, "check not found", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during checking today")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, check, http.StatusOK)
}
