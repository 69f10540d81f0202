package domain

import (
	"time"

	"github.com/google/uuid"
)

// CategoryCount is the number of entries answered in a prompt category.
type CategoryCount struct {
	Category PromptCategory
	Count    int
}

// MonthCount is the number of entries created in a month.
type MonthCount struct {
	Month time.Month
	Count int
}

// MonthSentiment is the average sentiment of a couple's entries in a month.
type MonthSentiment struct {
	Month time.Month
	Score float64
}

// LocationCount is the number of entries written at a tagged location.
type LocationCount struct {
	Tag   string
	Count int
}

// UserTotals is the word and entry count of a user over a period.
type UserTotals struct {
	Words   int
	Entries int
}

// PairedPrompt is a prompt both members of a couple answered, with the
// figures of both entries.
// UserA is the member with the lower id.
type PairedPrompt struct {
	Prompt     Prompt
	UserA      uuid.UUID
	UserB      uuid.UUID
	WordsA     int
	WordsB     int
	SentimentA *float64
	SentimentB *float64
}

// CombinedWords returns the word count of both entries together.
func (p PairedPrompt) CombinedWords() int {
	return p.WordsA + p.WordsB
}

// Wrapped is the year-end summary for one user.
type Wrapped struct {
	Year              int
	UserID            uuid.UUID
	TotalWords        int
	TotalEntries      int
	CategoryBreakdown []CategoryCount
	MonthlyActivity   []MonthCount
	LongestEntry      *Entry

	Couple *CoupleWrapped
}

// CoupleWrapped is the year-end summary for the user's active vault.
type CoupleWrapped struct {
	CoupleID         uuid.UUID
	Partner          *Partner
	TotalWords       int
	ResponseRate     float64
	TopVibes         []CategoryCount
	MostWordsPrompt  *PairedPrompt
	AverageSentiment *float64
	SyncScore        *float64
	MonthlySentiment []MonthSentiment
	HappiestMonth    *MonthSentiment
	Moments          Moments
	Places           []LocationCount
	DaysTogether     *int
}

// Moments counts the prompts both members answered, grouped by how their
// sentiment lined up. A missing score counts as neutral.
type Moments struct {
	SharedJoy int
	ToughDays int
	// Support counts prompts where one member was clearly up and the other
	// down; SupportGiven is the share where the requester was the one up.
	Support      int
	SupportGiven int
}
