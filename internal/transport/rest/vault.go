package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vault-backend/internal/domain"
	"github.com/heartmarshall/vault-backend/internal/service/vault"
)

type vaultService interface {
	CreateVault(ctx context.Context) (*domain.Couple, error)
	JoinVault(ctx context.Context, input vault.JoinInput) (*vault.View, error)
	ListVaults(ctx context.Context) ([]vault.View, error)
	GetActiveVault(ctx context.Context) (*vault.View, error)
	UpdateVault(ctx context.Context, input vault.UpdateInput) (*domain.Couple, error)
	EndVault(ctx context.Context, input vault.EndInput) (*domain.Couple, error)
}

// VaultHandler serves couple management endpoints.
type VaultHandler struct {
	svc      vaultService
	validate *Validator
	log      *slog.Logger
}

// NewVaultHandler creates a VaultHandler.
func NewVaultHandler(svc vaultService, validate *Validator, logger *slog.Logger) *VaultHandler {
	return &VaultHandler{svc: svc, validate: validate, log: logger.With("handler", "vault")}
}

type joinVaultRequest struct {
	InviteCode string `json:"inviteCode" validate:"required,max=32"`
}

type updateVaultRequest struct {
	AnniversaryDate *string `json:"anniversaryDate" validate:"omitempty,date"`
}

type endVaultRequest struct {
	EndedDate string `json:"endedDate" validate:"omitempty,date"`
}

// Create handles POST /vaults.
func (h *VaultHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.CreateVault(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toVaultResponse(c, nil))
}

// Join handles POST /vaults/join.
func (h *VaultHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req joinVaultRequest
	if err := h.validate.decode(r, w, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	v, err := h.svc.JoinVault(r.Context(), vault.JoinInput{InviteCode: req.InviteCode})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVaultResponse(v.Couple, v.Partner))
}

// List handles GET /vaults.
func (h *VaultHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListVaults(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]vaultResponse, len(views))
	for i, v := range views {
		out[i] = toVaultResponse(v.Couple, v.Partner)
	}
	writeJSON(w, http.StatusOK, out)
}

// Active handles GET /vaults/active.
func (h *VaultHandler) Active(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetActiveVault(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVaultResponse(v.Couple, v.Partner))
}

// Update handles PATCH /vaults/active. A null anniversaryDate clears the
// anniversary.
func (h *VaultHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateVaultRequest
	if err := h.validate.decode(r, w, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var input vault.UpdateInput
	if req.AnniversaryDate != nil {
		input.AnniversaryDate = parseDate(*req.AnniversaryDate)
	}

	c, err := h.svc.UpdateVault(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVaultResponse(c, nil))
}

// End handles POST /vaults/active/end. The body is optional.
func (h *VaultHandler) End(w http.ResponseWriter, r *http.Request) {
	var req endVaultRequest
	if err := h.validate.decodeOptional(r, w, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	c, err := h.svc.EndVault(r.Context(), vault.EndInput{EndedDate: parseDate(req.EndedDate)})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVaultResponse(c, nil))
}
