// Package rest exposes the journal over JSON/HTTP.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

func writeValidationError(w http.ResponseWriter, ve *domain.ValidationError) {
	fields := make([]fieldError, len(ve.Errors))
	for i, e := range ve.Errors {
		fields[i] = fieldError{Field: e.Field, Message: e.Message}
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:  "validation failed",
		Code:   "VALIDATION",
		Fields: fields,
	})
}
