package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
	"github.com/heartmarshall/vault-backend/pkg/ctxutil"
)

// monthKeyLayout renders history group keys like "January 2025".
const monthKeyLayout = "January 2006"

// ListHistory returns the requester's entries grouped by the month of their
// prompt, newest first. Partner entries are attached only where both members
// answered. A non-nil vaultID restricts the history to that vault, which may
// have ended.
func (s *Service) ListHistory(ctx context.Context, vaultID *uuid.UUID) ([]domain.HistoryMonth, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if vaultID != nil {
		couple, err := s.couples.GetByID(ctx, *vaultID)
		if err != nil {
			return nil, fmt.Errorf("journal.ListHistory: %w", err)
		}
		if !couple.Includes(userID) {
			return nil, fmt.Errorf("journal.ListHistory: vault %s: %w", *vaultID, domain.ErrNotFound)
		}
	}

	entries, err := s.entries.ListByUser(ctx, userID, vaultID)
	if err != nil {
		return nil, fmt.Errorf("journal.ListHistory: %w", err)
	}

	// Entries may span several vaults; partner lookups are per vault.
	promptsByCouple := make(map[uuid.UUID][]uuid.UUID)
	for _, e := range entries {
		promptsByCouple[e.CoupleID] = append(promptsByCouple[e.CoupleID], e.PromptID)
	}

	partners := make(map[uuid.UUID]map[uuid.UUID]domain.Entry, len(promptsByCouple))
	for coupleID, promptIDs := range promptsByCouple {
		byPrompt, err := s.entries.ListPartnerEntries(ctx, coupleID, userID, promptIDs)
		if err != nil {
			return nil, fmt.Errorf("journal.ListHistory: %w", err)
		}
		partners[coupleID] = byPrompt
	}

	var months []domain.HistoryMonth
	for i := range entries {
		own := &entries[i]
		item := domain.HistoryItem{Prompt: own.Prompt, OwnEntry: own}
		if p, ok := partners[own.CoupleID][own.PromptID]; ok {
			item.PartnerEntry = &p
		}
		item.Unlocked = domain.IsUnlocked(item.OwnEntry, item.PartnerEntry)

		key := historyKey(own)
		if n := len(months); n == 0 || months[n-1].Key != key {
			months = append(months, domain.HistoryMonth{Key: key})
		}
		months[len(months)-1].Items = append(months[len(months)-1].Items, item)
	}

	return months, nil
}

// GetEntryDetail returns one of the requester's entries, together with the
// partner's answer when both members answered.
func (s *Service) GetEntryDetail(ctx context.Context, entryID uuid.UUID) (*domain.HistoryItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	own, err := s.ownEntry(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("journal.GetEntryDetail: %w", err)
	}

	partner, err := optional[domain.Entry](s.entries.GetPartnerEntry(ctx, own.CoupleID, own.PromptID, userID))
	if err != nil {
		return nil, fmt.Errorf("journal.GetEntryDetail: %w", err)
	}

	return &domain.HistoryItem{
		Prompt:       own.Prompt,
		OwnEntry:     own,
		PartnerEntry: partner,
		Unlocked:     domain.IsUnlocked(own, partner),
	}, nil
}

func historyKey(e *domain.Entry) string {
	if e.Prompt != nil {
		return e.Prompt.ActiveDate.Format(monthKeyLayout)
	}
	return e.CreatedAt.Format(monthKeyLayout)
}
