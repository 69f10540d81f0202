package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
	"github.com/heartmarshall/vault-backend/internal/service/journal"
)

type journalService interface {
	GetTodayView(ctx context.Context) (*domain.TodayView, error)
	SubmitEntry(ctx context.Context, input journal.SubmitInput) (*domain.Entry, error)
	EditEntry(ctx context.Context, entryID uuid.UUID, input journal.EditInput) (*domain.Entry, error)
	ListHistory(ctx context.Context, vaultID *uuid.UUID) ([]domain.HistoryMonth, error)
	GetEntryDetail(ctx context.Context, entryID uuid.UUID) (*domain.HistoryItem, error)
}

// JournalHandler serves the daily prompt and entry endpoints.
type JournalHandler struct {
	svc      journalService
	validate *Validator
	log      *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, validate *Validator, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, validate: validate, log: logger.With("handler", "journal")}
}

type submitEntryRequest struct {
	PromptID    string  `json:"promptId" validate:"omitempty,uuid"`
	Text        string  `json:"text" validate:"required"`
	PhotoRef    *string `json:"photoRef" validate:"omitempty,max=1024"`
	LocationTag string  `json:"locationTag" validate:"max=200"`
}

type editEntryRequest struct {
	Text        string  `json:"text" validate:"required"`
	PhotoRef    *string `json:"photoRef" validate:"omitempty,max=1024"`
	LocationTag *string `json:"locationTag" validate:"omitempty,max=200"`
}

// Today handles GET /journal/today.
func (h *JournalHandler) Today(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetTodayView(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTodayResponse(view))
}

// Submit handles POST /journal/entries.
func (h *JournalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitEntryRequest
	if err := h.validate.decode(r, w, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := journal.SubmitInput{
		Text:        req.Text,
		PhotoRef:    req.PhotoRef,
		LocationTag: req.LocationTag,
	}
	if req.PromptID != "" {
		id := uuid.MustParse(req.PromptID)
		input.PromptID = &id
	}

	entry, err := h.svc.SubmitEntry(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryResponse(entry))
}

// Edit handles PATCH /journal/entries/{entryID}.
func (h *JournalHandler) Edit(w http.ResponseWriter, r *http.Request) {
	entryID, err := uuidParam(r, "entryID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req editEntryRequest
	if err := h.validate.decode(r, w, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.EditEntry(r.Context(), entryID, journal.EditInput{
		Text:        req.Text,
		PhotoRef:    req.PhotoRef,
		LocationTag: req.LocationTag,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// History handles GET /journal/history?vaultId=.
func (h *JournalHandler) History(w http.ResponseWriter, r *http.Request) {
	vaultID, err := uuidQuery(r, "vaultId")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	months, err := h.svc.ListHistory(r.Context(), vaultID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]historyMonthResponse, len(months))
	for i, m := range months {
		items := make([]historyItemResponse, len(m.Items))
		for j := range m.Items {
			items[j] = toHistoryItemResponse(&m.Items[j])
		}
		out[i] = historyMonthResponse{Month: m.Key, Items: items}
	}
	writeJSON(w, http.StatusOK, out)
}

// Entry handles GET /journal/entries/{entryID}.
func (h *JournalHandler) Entry(w http.ResponseWriter, r *http.Request) {
	entryID, err := uuidParam(r, "entryID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	item, err := h.svc.GetEntryDetail(r.Context(), entryID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryItemResponse(item))
}
