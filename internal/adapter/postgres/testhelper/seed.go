package testhelper

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// prompts.active_date is globally unique and the container is shared, so every
// test that schedules prompts takes its own calendar year.
var nextYear atomic.Int64

func init() {
	nextYear.Store(2200 + rand.Int64N(500)*10)
}

// UniqueYear returns a calendar year no other test in this process uses.
func UniqueYear() int {
	return int(nextYear.Add(1))
}

// Date returns the calendar date as midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedUser creates a user with default profile values.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		DisplayName:  "Test User " + suffix,
		Timezone:     "UTC",
		Role:         domain.UserRoleUser,
		PasswordHash: "hash-" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, display_name, timezone, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.Username, user.DisplayName, user.Timezone, string(user.Role),
		user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedCouple creates a paired, active couple of two fresh users and registers
// both active memberships.
func SeedCouple(t *testing.T, pool *pgxpool.Pool) (domain.Couple, domain.User, domain.User) {
	t.Helper()
	ctx := context.Background()

	u1 := SeedUser(t, pool)
	u2 := SeedUser(t, pool)

	couple := domain.Couple{
		ID:         uuid.New(),
		User1ID:    u1.ID,
		User2ID:    &u2.ID,
		InviteCode: "code-" + uniqueSuffix(),
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO couples (id, user1_id, user2_id, invite_code, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		couple.ID, couple.User1ID, couple.User2ID, couple.InviteCode, couple.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCouple insert couple: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO active_memberships (user_id, couple_id) VALUES ($1, $3), ($2, $3)`,
		u1.ID, u2.ID, couple.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCouple insert memberships: %v", err)
	}

	return couple, u1, u2
}

// SeedPrompt schedules a prompt on the given date.
func SeedPrompt(t *testing.T, pool *pgxpool.Pool, date time.Time, category domain.PromptCategory) domain.Prompt {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Prompt{
		ID:         uuid.New(),
		Text:       "Prompt " + uniqueSuffix(),
		Category:   category,
		ActiveDate: date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO prompts (id, text, category, active_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Text, string(p.Category), p.ActiveDate, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPrompt insert: %v", err)
	}

	return p
}

// SeedEntry inserts an answer created at the given instant.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID, coupleID uuid.UUID, prompt domain.Prompt, text string, createdAt time.Time) domain.Entry {
	t.Helper()
	ctx := context.Background()

	e := domain.Entry{
		ID:        uuid.New(),
		UserID:    userID,
		PromptID:  prompt.ID,
		CoupleID:  coupleID,
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}
	e.SetText(text)
	e.UpdatedAt = e.CreatedAt

	_, err := pool.Exec(ctx,
		`INSERT INTO entries (id, user_id, prompt_id, couple_id, text_content, word_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.UserID, e.PromptID, e.CoupleID, e.TextContent, e.WordCount, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert: %v", err)
	}

	return e
}
