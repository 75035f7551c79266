package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data, sets the JSON content type, and writes the body
// with the given status code. Every handler response goes through here so
// the headers stay consistent across the API.
//
// Marshaling failures answer 500 and return a wrapped error; the status
// code requested by the caller is not sent in that case.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
