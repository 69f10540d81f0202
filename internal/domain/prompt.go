package domain

import (
	"time"

	"github.com/google/uuid"
)

// Prompt is the shared question of one calendar day.
type Prompt struct {
	ID       uuid.UUID
	Text     string
	Category PromptCategory
	// ActiveDate is a calendar date stored as midnight UTC.
	ActiveDate time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActiveOn reports whether the prompt is scheduled for the given calendar date.
func (p *Prompt) IsActiveOn(date time.Time) bool {
	return SameDate(p.ActiveDate, date)
}
