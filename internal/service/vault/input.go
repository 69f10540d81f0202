package vault

import (
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

// JoinInput holds parameters for joining a vault.
type JoinInput struct {
	InviteCode string
}

// Validate validates the join input.
func (i JoinInput) Validate() error {
	if i.InviteCode == "" {
		return domain.NewValidationError("invite_code", "required")
	}
	if utf8.RuneCountInString(i.InviteCode) > 32 {
		return domain.NewValidationError("invite_code", "too long")
	}
	return nil
}

// UpdateInput holds parameters for updating a vault. A nil AnniversaryDate
// clears the anniversary.
type UpdateInput struct {
	AnniversaryDate *time.Time
}

// Validate rejects anniversaries in the future relative to now.
func (i UpdateInput) Validate(now time.Time) error {
	if i.AnniversaryDate != nil && notYet(*i.AnniversaryDate, now) {
		return domain.NewValidationError("anniversary_date", "must not be in the future")
	}
	return nil
}

// EndInput holds parameters for ending a vault. A nil EndedDate means today.
type EndInput struct {
	EndedDate *time.Time
}

// Validate rejects end dates in the future relative to now.
func (i EndInput) Validate(now time.Time) error {
	if i.EndedDate != nil && notYet(*i.EndedDate, now) {
		return domain.NewValidationError("ended_date", "must not be in the future")
	}
	return nil
}

// notYet reports whether date lies after the latest calendar date currently
// observed anywhere on earth (UTC+14).
func notYet(date, now time.Time) bool {
	latest := domain.LocalDate(now, time.FixedZone("UTC+14", 14*60*60))
	return domain.DaysBetween(latest, date) > 0
}
