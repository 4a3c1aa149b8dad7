package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// QueryResponse is the JSON body of /api/query.
type QueryResponse struct {
	Found   bool   `json:"found"`
	Amount  string `json:"amount,omitempty"`
	Boxes   string `json:"boxes,omitempty"`
	Message string `json:"message,omitempty"`
}

// notFoundMessage is the neutral empty-result message; no-match is a
// normal outcome, not an error.
const notFoundMessage = "No data found for this combination of inputs."

// YearsResponse is the JSON body of /api/years.
type YearsResponse struct {
	Years []string `json:"years"`
}

// ErrorResponse is the JSON body of a 4xx/5xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed encoding response", "error", err)
	}
}

// writeBadRequest answers a malformed request with a JSON error.
func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}
