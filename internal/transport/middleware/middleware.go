// Package middleware holds the HTTP middleware of the API: request ids,
// access logging, panic recovery, CORS, authentication and rate limiting.
package middleware

import (
	"encoding/json"
	"net/http"
)

// Middleware is a function that wraps an http.Handler. It matches the
// signature chi expects in Router.Use.
type Middleware = func(http.Handler) http.Handler

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: message, Code: code}) //nolint:errcheck
}
