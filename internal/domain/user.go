package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user together with the
// profile fields the journal needs.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	DisplayName  string
	Timezone     string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Name returns the display name, falling back to the username.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Location returns the user's timezone, UTC when unset or unknown.
func (u *User) Location() *time.Location {
	return ParseTimezone(u.Timezone)
}

// Partner is the public view of the other member of a couple.
type Partner struct {
	ID   uuid.UUID
	Name string
}
