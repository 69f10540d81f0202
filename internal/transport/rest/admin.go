package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
	"github.com/heartmarshall/vault-backend/internal/service/audit"
	"github.com/heartmarshall/vault-backend/internal/service/prompt"
)

type promptService interface {
	CreatePrompt(ctx context.Context, input prompt.CreateInput) (*domain.Prompt, error)
	ListPrompts(ctx context.Context, input prompt.ListInput) ([]domain.Prompt, error)
	UpdatePrompt(ctx context.Context, id uuid.UUID, input prompt.UpdateInput) (*domain.Prompt, error)
}

type roleService interface {
	SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error)
}

type historyService interface {
	ListHistory(ctx context.Context, input audit.HistoryInput) ([]domain.AuditRecord, error)
}

// AdminHandler serves admin REST endpoints. Routes are mounted behind
// RequireAdmin; the services check the role again.
type AdminHandler struct {
	prompts  promptService
	roles    roleService
	history  historyService
	validate *Validator
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(prompts promptService, roles roleService, history historyService, validate *Validator, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		prompts:  prompts,
		roles:    roles,
		history:  history,
		validate: validate,
		log:      logger.With("handler", "admin"),
	}
}

type createPromptRequest struct {
	Text       string `json:"text" validate:"required,max=500"`
	Category   string `json:"category" validate:"required,prompt_category"`
	ActiveDate string `json:"activeDate" validate:"required,date"`
}

type updatePromptRequest struct {
	Text       *string `json:"text" validate:"omitempty,max=500"`
	Category   *string `json:"category" validate:"omitempty,prompt_category"`
	ActiveDate *string `json:"activeDate" validate:"omitempty,date"`
}

type listPromptsQuery struct {
	From string `json:"from" validate:"required,date"`
	To   string `json:"to" validate:"required,date"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type historyQuery struct {
	EntityType string `json:"entityType" validate:"required,oneof=PROMPT USER"`
	Limit      int    `json:"limit" validate:"min=0,max=200"`
}

// CreatePrompt handles POST /admin/prompts.
func (h *AdminHandler) CreatePrompt(w http.ResponseWriter, r *http.Request) {
	var req createPromptRequest
	if err := h.validate.decode(r, w, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	p, err := h.prompts.CreatePrompt(r.Context(), prompt.CreateInput{
		Text:       req.Text,
		Category:   domain.PromptCategory(strings.ToUpper(req.Category)),
		ActiveDate: *parseDate(req.ActiveDate),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPromptResponse(p))
}

// ListPrompts handles GET /admin/prompts?from=&to=.
func (h *AdminHandler) ListPrompts(w http.ResponseWriter, r *http.Request) {
	q := listPromptsQuery{
		From: r.URL.Query().Get("from"),
		To:   r.URL.Query().Get("to"),
	}
	if err := h.validate.Validate(q); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	prompts, err := h.prompts.ListPrompts(r.Context(), prompt.ListInput{
		From: *parseDate(q.From),
		To:   *parseDate(q.To),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]*promptResponse, len(prompts))
	for i := range prompts {
		out[i] = toPromptResponse(&prompts[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// UpdatePrompt handles PATCH /admin/prompts/{promptID}.
func (h *AdminHandler) UpdatePrompt(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "promptID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req updatePromptRequest
	if err := h.validate.decode(r, w, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := prompt.UpdateInput{Text: req.Text}
	if req.Category != nil {
		c := domain.PromptCategory(strings.ToUpper(*req.Category))
		input.Category = &c
	}
	if req.ActiveDate != nil {
		input.ActiveDate = parseDate(*req.ActiveDate)
	}

	p, err := h.prompts.UpdatePrompt(r.Context(), id, input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPromptResponse(p))
}

// SetUserRole handles PUT /admin/users/{userID}/role.
func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "userID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req setRoleRequest
	if err := h.validate.decode(r, w, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	u, err := h.roles.SetUserRole(r.Context(), id, domain.UserRole(req.Role))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// History handles GET /admin/audit/{entityType}/{entityID}.
func (h *AdminHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "entityID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	q := historyQuery{EntityType: strings.ToUpper(chi.URLParam(r, "entityType"))}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if q.Limit, err = strconv.Atoi(raw); err != nil {
			respondError(w, r, h.log, domain.NewValidationError("limit", "must be a number"))
			return
		}
	}
	if err := h.validate.Validate(q); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	records, err := h.history.ListHistory(r.Context(), audit.HistoryInput{
		EntityType: domain.AuditEntity(q.EntityType),
		EntityID:   id,
		Limit:      q.Limit,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]auditRecordResponse, len(records))
	for i := range records {
		out[i] = toAuditRecordResponse(&records[i])
	}
	writeJSON(w, http.StatusOK, out)
}
