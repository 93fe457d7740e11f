package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntity identifies the kind of record an audit entry describes.
type AuditEntity string

const (
	AuditEntityBriefing AuditEntity = "BRIEFING"
	AuditEntityRequest  AuditEntity = "REQUEST"
)

func (e AuditEntity) String() string { return string(e) }

func (e AuditEntity) IsValid() bool {
	return e == AuditEntityBriefing || e == AuditEntityRequest
}

// AuditAction is the administrative action recorded.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionConvert AuditAction = "CONVERT"
	AuditActionReject  AuditAction = "REJECT"
	AuditActionRebuild AuditAction = "REBUILD"
)

func (a AuditAction) String() string { return string(a) }

// AuditRecord is an append-only trail entry for changes that have no
// request ledger of their own.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     *uuid.UUID
	EntityType AuditEntity
	EntityID   uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
