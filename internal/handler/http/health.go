package http

import (
	"net/http"

	"github.com/checkdaily/checkdaily/internal/utils"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": "Welcome to CheckDaily API"}, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "healthy"}, http.StatusOK)
}
