package http

import (
	"encoding/json"
	"net/http"
	"time"

	"vendite/internal/services"
)

// handleHealth performs basic liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	health := map[string]interface{}{
		"status":        "ok",
		"timestamp":     time.Now().Format(time.RFC3339),
		"uptime":        time.Since(s.started).String(),
		"cache_entries": s.queries.CacheSize(),
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(health)
}

// handleYears returns the ledger's year options, sentinel first.
func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, YearsResponse{Years: s.queries.Years()})
}

// handleQuery answers a point query as JSON. No-match is a 200 with
// found=false, never an error status.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}

	params, err := ParseQueryParams(r.URL.Query())
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	result := s.queries.Query(r.Context(), params.Country, params.Product, params.Filter)
	if !result.Found {
		writeJSON(w, http.StatusOK, QueryResponse{Found: false, Message: notFoundMessage})
		return
	}
	writeJSON(w, http.StatusOK, QueryResponse{Found: true, Amount: result.Amount, Boxes: result.Boxes})
}

// indexData feeds the query form template.
type indexData struct {
	Years    []string
	Country  string
	Product  string
	Date     string
	Year     string
	Searched bool
	Result   services.Result
	Message  string
	Error    string
}

// handleIndex renders the query form, running the query when the form
// was submitted.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		http.Error(w, "templates unavailable", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	data := indexData{
		Years:   s.queries.Years(),
		Country: sanitizeInput(q.Get("country")),
		Product: sanitizeInput(q.Get("product")),
		Date:    sanitizeInput(q.Get("date")),
		Year:    sanitizeInput(q.Get("year")),
	}

	params, err := ParseQueryParams(q)
	switch {
	case err != nil:
		data.Error = err.Error()
	case params.HasInput():
		data.Searched = true
		data.Result = s.queries.Query(r.Context(), params.Country, params.Product, params.Filter)
		if !data.Result.Found {
			data.Message = notFoundMessage
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}
