package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company is a client company as seen by the engine. The directory itself is
// managed elsewhere; only id and display name are read here.
type Company struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Briefing is a client-submitted request-for-work awaiting agency triage.
// It is immutable once CONVERTED or REJECTED.
type Briefing struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	CreatedByUserID uuid.UUID
	Title           string
	Description     *string
	Status          BriefingStatus
	CreatedAt       time.Time
}

// IsPending reports whether the briefing can still be converted or rejected.
func (b Briefing) IsPending() bool {
	return b.Status == BriefingStatusPending
}

// Request is the materialized projection of a request's event ledger.
// Status, AssigneeID, RevisionCount, Priority, DueDate and UpdatedAt are
// derived fields: they are only written together with a ledger append.
type Request struct {
	ID            uuid.UUID
	CompanyID     uuid.UUID
	BriefingID    *uuid.UUID
	Title         string
	Description   *string
	Type          RequestType
	Priority      RequestPriority
	Department    Department
	Status        RequestStatus
	AssigneeID    *uuid.UUID
	DueDate       *time.Time
	RevisionCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RequestEvent is an immutable ledger entry. FromStatus/ToStatus are set only on
// STATUS_CHANGED (ToStatus also on CREATED). RevisionNumber is set only on
// REVISION_ADDED. AssigneeID, DueDate and Priority carry the value an event
// sets so the projection can be rebuilt from the ledger alone.
type RequestEvent struct {
	ID              uuid.UUID
	RequestID       uuid.UUID
	ActorID         *uuid.UUID
	EventType       EventType
	FromStatus      *RequestStatus
	ToStatus        *RequestStatus
	Message         *string
	VisibleToClient bool
	RevisionNumber  *int
	AssigneeID      *uuid.UUID
	DueDate         *time.Time
	Priority        *RequestPriority
	CreatedAt       time.Time
	Seq             int64
}

// IsStatusChange reports whether the event moves the request between statuses.
func (e RequestEvent) IsStatusChange() bool {
	return e.EventType == EventTypeStatusChanged
}

// RequestFilter narrows request listings. Nil fields are ignored.
type RequestFilter struct {
	CompanyID   *uuid.UUID
	Status      *RequestStatus
	Priority    *RequestPriority
	Type        *RequestType
	Department  *Department
	DueBefore   *time.Time
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
	Offset      int
}

// BriefingFilter narrows briefing listings. Nil fields are ignored.
type BriefingFilter struct {
	CompanyID *uuid.UUID
	Status    *BriefingStatus
}

// Now returns the current UTC time at the precision PostgreSQL stores.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NewRequestParams holds the caller-supplied fields of a new request.
type NewRequestParams struct {
	CompanyID   uuid.UUID
	BriefingID  *uuid.UUID
	Title       string
	Description *string
	Type        RequestType
	Priority    RequestPriority
	Department  Department
	DueDate     *time.Time
}

// NewRequest builds a request in its initial state. Type defaults to OTHER
// and priority to MEDIUM.
func NewRequest(p NewRequestParams, at time.Time) Request {
	if p.Type == "" {
		p.Type = RequestTypeOther
	}
	if p.Priority == "" {
		p.Priority = RequestPriorityMedium
	}
	return Request{
		ID:          uuid.New(),
		CompanyID:   p.CompanyID,
		BriefingID:  p.BriefingID,
		Title:       p.Title,
		Description: p.Description,
		Type:        p.Type,
		Priority:    p.Priority,
		Department:  p.Department,
		Status:      RequestStatusNew,
		DueDate:     p.DueDate,
		CreatedAt:   at,
		UpdatedAt:   at,
	}
}

// GenesisEvent is the first ledger entry of req. It is always client-visible
// and carries the initial priority and due date for replay.
func GenesisEvent(req Request, actorID *uuid.UUID) RequestEvent {
	to := RequestStatusNew
	priority := req.Priority
	return RequestEvent{
		ID:              uuid.New(),
		RequestID:       req.ID,
		ActorID:         actorID,
		EventType:       EventTypeCreated,
		ToStatus:        &to,
		VisibleToClient: ResolveVisibility(EventTypeCreated, "", nil),
		AssigneeID:      req.AssigneeID,
		DueDate:         req.DueDate,
		Priority:        &priority,
		CreatedAt:       req.CreatedAt,
	}
}
