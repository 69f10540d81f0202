package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntity names the kind of record an admin action touched.
type AuditEntity string

const (
	AuditEntityPrompt AuditEntity = "PROMPT"
	AuditEntityUser   AuditEntity = "USER"
)

func (e AuditEntity) String() string { return string(e) }

// IsValid reports whether e is a known entity type.
func (e AuditEntity) IsValid() bool {
	switch e {
	case AuditEntityPrompt, AuditEntityUser:
		return true
	}
	return false
}

// AuditAction is what an admin did to the entity.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
)

// AuditRecord is one admin change. Changes maps a field name to its
// {"old", "new"} pair; creations carry only "new".
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	EntityType AuditEntity
	EntityID   uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// FieldChange builds a Changes value for an updated field.
func FieldChange(before, after any) map[string]any {
	return map[string]any{"old": before, "new": after}
}
