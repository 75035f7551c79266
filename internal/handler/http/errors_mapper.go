package http

import (
	"errors"
	"net/http"

	"github.com/checkdaily/checkdaily/internal/service"
	"github.com/checkdaily/checkdaily/internal/store"
	"github.com/checkdaily/checkdaily/internal/utils"
	"github.com/checkdaily/checkdaily/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrInvalidYear:         http.StatusBadRequest,

	store.ErrUserAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:      http.StatusNotFound,
	store.ErrCheckNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders the uniform JSON error envelope. The detail string is
// what the client sees, which keeps internal error text out of responses.
func writeError(w http.ResponseWriter, detail string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Success: false, Message: detail}, statusCode)
}
