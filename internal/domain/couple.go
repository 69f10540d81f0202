package domain

import (
	"time"

	"github.com/google/uuid"
)

// Couple pairs two users into a shared vault. User2 is nil until the partner
// joins with the invite code.
type Couple struct {
	ID              uuid.UUID
	User1ID         uuid.UUID
	User2ID         *uuid.UUID
	InviteCode      string
	AnniversaryDate *time.Time
	IsEnded         bool
	EndedDate       *time.Time
	CreatedAt       time.Time
}

// IsPaired returns true once both members are present.
func (c *Couple) IsPaired() bool {
	return c.User2ID != nil
}

// Includes reports whether userID is a member of the couple.
func (c *Couple) Includes(userID uuid.UUID) bool {
	if c.User1ID == userID {
		return true
	}
	return c.User2ID != nil && *c.User2ID == userID
}

// PartnerOf returns the other member, or false if userID is not a member or
// the couple is not paired yet.
func (c *Couple) PartnerOf(userID uuid.UUID) (uuid.UUID, bool) {
	switch {
	case c.User2ID == nil:
		return uuid.Nil, false
	case c.User1ID == userID:
		return *c.User2ID, true
	case *c.User2ID == userID:
		return c.User1ID, true
	}
	return uuid.Nil, false
}

// Members returns the ids of all present members.
func (c *Couple) Members() []uuid.UUID {
	if c.User2ID == nil {
		return []uuid.UUID{c.User1ID}
	}
	return []uuid.UUID{c.User1ID, *c.User2ID}
}

// DaysTogether returns the number of days from the anniversary to the given
// date, or false when no anniversary is set.
func (c *Couple) DaysTogether(until time.Time) (int, bool) {
	if c.AnniversaryDate == nil {
		return 0, false
	}
	return DaysBetween(*c.AnniversaryDate, until), true
}
