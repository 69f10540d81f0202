package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

type wrappedService interface {
	GetWrapped(ctx context.Context, year int, vaultID *uuid.UUID) (*domain.Wrapped, error)
}

// WrappedHandler serves the year-end summary.
type WrappedHandler struct {
	svc wrappedService
	log *slog.Logger
}

// NewWrappedHandler creates a WrappedHandler.
func NewWrappedHandler(svc wrappedService, logger *slog.Logger) *WrappedHandler {
	return &WrappedHandler{svc: svc, log: logger.With("handler", "wrapped")}
}

// Get handles GET /wrapped/{year}?vaultId= and GET /wrapped?vaultId=. Without
// a year the service picks the requester's current local year.
func (h *WrappedHandler) Get(w http.ResponseWriter, r *http.Request) {
	var year int
	if raw := chi.URLParam(r, "year"); raw != "" {
		var err error
		year, err = strconv.Atoi(raw)
		if err != nil {
			respondError(w, r, h.log, domain.NewValidationError("year", "must be a number"))
			return
		}
		if year == 0 {
			respondError(w, r, h.log, domain.NewValidationError("year", "must be a calendar year"))
			return
		}
	}

	vaultID, err := uuidQuery(r, "vaultId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	wr, err := h.svc.GetWrapped(r.Context(), year, vaultID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWrappedResponse(wr))
}
