package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one user's answer to one prompt inside a vault.
type Entry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PromptID    uuid.UUID
	CoupleID    uuid.UUID
	TextContent string
	PhotoRef    *string
	// WordCount is derived from TextContent; use SetText to keep them in sync.
	WordCount      int
	SentimentScore *float64
	LocationTag    string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Prompt *Prompt
}

// SetText replaces the content and recomputes the word count.
func (e *Entry) SetText(text string) {
	e.TextContent = text
	e.WordCount = CountWords(text)
}

// CountWords returns the number of whitespace-separated tokens in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}
