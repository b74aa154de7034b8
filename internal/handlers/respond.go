package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pzaremba/book-library-api/internal/query"
)

// ListResponse is the envelope for collection endpoints
// swagger:model ListResponse
type ListResponse struct {
	Success         bool             `json:"success"`
	Data            []map[string]any `json:"data"`
	NumberOfRecords int              `json:"number_of_records"`
	Pagination      query.Pagination `json:"pagination"`
}

// DataResponse is the envelope for single-record endpoints
// swagger:model DataResponse
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// TokenResponse is the envelope for auth endpoints
// swagger:model TokenResponse
type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// ErrorResponse is the envelope for failures carrying a single message
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ValidationErrorResponse is the envelope for field validation failures
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Success bool                `json:"success"`
	Errors  map[string][]string `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, DataResponse{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Message: message})
}

func respondValidation(w http.ResponseWriter, errs map[string][]string) {
	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{Success: false, Errors: errs})
}

func respondInternal(w http.ResponseWriter) {
	respondError(w, http.StatusInternalServerError, "Internal server error")
}

// chiID returns the raw {id} route parameter for error messages.
func chiID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// idParam reads the {id} route parameter.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id parameter")
	}
	return id, nil
}

// selectFields restricts a payload to the client-selected fields. An empty
// selection keeps everything.
func selectFields(m map[string]any, fields []string) map[string]any {
	if len(fields) == 0 {
		return m
	}
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if v, ok := m[f]; ok {
			out[f] = v
		}
	}
	return out
}
