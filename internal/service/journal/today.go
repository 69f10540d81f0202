package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
	"github.com/heartmarshall/vault-backend/pkg/ctxutil"
)

// GetTodayView returns what the requester may see of today's prompt.
// The partner's entry is only loaded once the requester has answered.
func (s *Service) GetTodayView(ctx context.Context) (*domain.TodayView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ss, err := s.openSession(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("journal.GetTodayView: %w", err)
	}

	partner, err := s.users.GetByID(ctx, ss.partner)
	if err != nil {
		return nil, fmt.Errorf("journal.GetTodayView load partner: %w", err)
	}

	prompt, err := optional[domain.Prompt](s.prompts.GetByDate(ctx, ss.today(s.now())))
	if err != nil {
		return nil, fmt.Errorf("journal.GetTodayView load prompt: %w", err)
	}

	var own, other *domain.Entry
	if prompt != nil {
		own, err = optional[domain.Entry](s.entries.GetByUserAndPrompt(ctx, userID, prompt.ID))
		if err != nil {
			return nil, fmt.Errorf("journal.GetTodayView load entry: %w", err)
		}
	}
	if own != nil {
		other, err = optional[domain.Entry](s.entries.GetPartnerEntry(ctx, ss.couple.ID, prompt.ID, userID))
		if err != nil {
			return nil, fmt.Errorf("journal.GetTodayView load partner entry: %w", err)
		}
	}

	view := domain.Reveal(prompt, own, other)
	view.Partner = &domain.Partner{ID: partner.ID, Name: partner.Name()}
	return &view, nil
}

// SubmitEntry records the requester's answer to today's prompt.
// Returns ErrNoPromptActive when no prompt is scheduled for today and
// ErrDuplicateEntry when the requester already answered it.
func (s *Service) SubmitEntry(ctx context.Context, input SubmitInput) (*domain.Entry, error) {
	input.normalize()
	if err := input.Validate(s.cfg.MaxEntryLength); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ss, err := s.openSession(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("journal.SubmitEntry: %w", err)
	}

	now := s.now()
	prompt, err := optional[domain.Prompt](s.prompts.GetByDate(ctx, ss.today(now)))
	if err != nil {
		return nil, fmt.Errorf("journal.SubmitEntry load prompt: %w", err)
	}
	if prompt == nil {
		return nil, domain.ErrNoPromptActive
	}
	if input.PromptID != nil && *input.PromptID != prompt.ID {
		return nil, domain.NewValidationError("prompt_id", "not today's prompt")
	}

	entry := &domain.Entry{
		ID:          uuid.New(),
		UserID:      userID,
		PromptID:    prompt.ID,
		CoupleID:    ss.couple.ID,
		PhotoRef:    input.PhotoRef,
		LocationTag: input.LocationTag,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}
	entry.SetText(input.Text)

	// Concurrent submits race on the (user, prompt) unique key; the loser
	// gets ErrDuplicateEntry from the repository.
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("journal.SubmitEntry: %w", err)
	}
	entry.Prompt = prompt

	s.log.InfoContext(ctx, "entry submitted",
		slog.String("user_id", userID.String()),
		slog.String("prompt_id", prompt.ID.String()),
		slog.Int("word_count", entry.WordCount))

	return entry, nil
}

// EditEntry rewrites one of the requester's entries while the partner has not
// answered the same prompt yet.
func (s *Service) EditEntry(ctx context.Context, entryID uuid.UUID, input EditInput) (*domain.Entry, error) {
	input.normalize()
	if err := input.Validate(s.cfg.MaxEntryLength); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.ownEntry(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("journal.EditEntry: %w", err)
	}

	couple, err := s.couples.GetByID(ctx, entry.CoupleID)
	if err != nil {
		return nil, fmt.Errorf("journal.EditEntry load couple: %w", err)
	}
	if couple.IsEnded {
		return nil, domain.ErrVaultEnded
	}

	partner, err := optional[domain.Entry](s.entries.GetPartnerEntry(ctx, entry.CoupleID, entry.PromptID, userID))
	if err != nil {
		return nil, fmt.Errorf("journal.EditEntry load partner entry: %w", err)
	}
	if partner != nil {
		return nil, fmt.Errorf("journal.EditEntry: entry already revealed: %w", domain.ErrConflict)
	}

	entry.SetText(input.Text)
	if input.PhotoRef != nil {
		entry.PhotoRef = input.PhotoRef
		if *input.PhotoRef == "" {
			entry.PhotoRef = nil
		}
	}
	if input.LocationTag != nil {
		entry.LocationTag = *input.LocationTag
	}
	entry.UpdatedAt = s.now().UTC()

	// The write re-checks for a partner answer, so a reveal that lands
	// after the check above still ends in ErrConflict.
	if err := s.entries.UpdateContent(ctx, entry); err != nil {
		return nil, fmt.Errorf("journal.EditEntry: %w", err)
	}

	s.log.InfoContext(ctx, "entry edited",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entry.ID.String()))

	return entry, nil
}

// ownEntry loads an entry and hides entries of other users behind ErrNotFound.
func (s *Service) ownEntry(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.UserID != userID {
		return nil, fmt.Errorf("entry %s: %w", entryID, domain.ErrNotFound)
	}
	return entry, nil
}
