package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

// statusMapping pairs a domain error with its HTTP representation.
// Specific conditions come before the sentinels they wrap.
type statusMapping struct {
	err     error
	status  int
	code    string
	message string
}

var errorMappings = []statusMapping{
	{domain.ErrNoCoupleConfigured, http.StatusConflict, "SETUP_REQUIRED", "pair with your partner first"},
	{domain.ErrNoPromptActive, http.StatusConflict, "NO_PROMPT", "no prompt is active today"},
	{domain.ErrDuplicateEntry, http.StatusConflict, "ALREADY_ANSWERED", "you already answered today's prompt"},
	{domain.ErrVaultEnded, http.StatusConflict, "VAULT_ENDED", "this vault has ended"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHENTICATED", "unauthorized"},
	{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN", "forbidden"},
	{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "not found"},
	{domain.ErrAlreadyExists, http.StatusConflict, "ALREADY_EXISTS", "already exists"},
	{domain.ErrConflict, http.StatusConflict, "CONFLICT", "conflict"},
}

// respondError writes the HTTP form of a service error. Storage outages are
// a 503; other unknown errors are logged and hidden behind a 500.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeValidationError(w, ve)
		return
	}
	if errors.Is(err, domain.ErrValidation) {
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	if errors.Is(err, domain.ErrUnavailable) {
		log.WarnContext(r.Context(), "storage unavailable", slog.String("error", err.Error()))
		w.Header().Set("Retry-After", "5")
		writeError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "service temporarily unavailable")
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			writeError(w, m.status, m.code, m.message)
			return
		}
	}

	log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
}
