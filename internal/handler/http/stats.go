package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/checkdaily/checkdaily/internal/logger"
	"github.com/checkdaily/checkdaily/internal/service"
	"github.com/checkdaily/checkdaily/internal/utils"
)

func (h *Handler) yearlyActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in request context")
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	year := time.Now().UTC().Year()
	if rawYear := r.URL.Query().Get("year"); rawYear != "" {
		parsed, err := strconv.Atoi(rawYear)
		if err != nil {
			log.Err(err).Str("year", rawYear).Msg("non-numeric year parameter")
			writeError(w, "year must be a number", http.StatusBadRequest)
			return
		}
		year = parsed
	}

	activity, err := h.services.StatsService.YearlyActivity(ctx, user.UserID, year)
	if err != nil {
		if errors.Is(err, service.ErrInvalidYear) {
			log.Err(err).Int("year", year).Msg("year out of range")
			writeError(w, "year out of range", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during aggregating yearly activity")
		writeError(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, activity, http.StatusOK)
}
