package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Projection is the request state derived by folding its ledger.
type Projection struct {
	RequestID     uuid.UUID
	Status        RequestStatus
	AssigneeID    *uuid.UUID
	RevisionCount int
	Priority      RequestPriority
	DueDate       *time.Time
	UpdatedAt     time.Time
	EventCount    int
}

// Replay folds an ordered ledger into a Projection. It fails when the ledger
// does not start with a genesis event or when any event is inconsistent with
// the state it is applied to.
func Replay(requestID uuid.UUID, events []RequestEvent) (Projection, error) {
	p := Projection{RequestID: requestID}
	for i, e := range events {
		if err := p.Apply(e); err != nil {
			return Projection{}, fmt.Errorf("replay request %s event #%d (%s): %w", requestID, i, e.ID, err)
		}
	}
	if p.EventCount == 0 {
		return Projection{}, fmt.Errorf("replay request %s: empty ledger: %w", requestID, ErrInvalidState)
	}
	return p, nil
}

// Apply folds a single event into the projection.
func (p *Projection) Apply(e RequestEvent) error {
	if e.RequestID != p.RequestID {
		return fmt.Errorf("event belongs to request %s: %w", e.RequestID, ErrValidation)
	}
	if p.EventCount == 0 && e.EventType != EventTypeCreated {
		return fmt.Errorf("first event is %s, want %s: %w", e.EventType, EventTypeCreated, ErrInvalidState)
	}

	switch e.EventType {
	case EventTypeCreated:
		if p.EventCount != 0 {
			return fmt.Errorf("duplicate genesis event: %w", ErrInvalidState)
		}
		if e.ToStatus == nil || *e.ToStatus != RequestStatusNew {
			return fmt.Errorf("genesis must enter %s: %w", RequestStatusNew, ErrInvalidState)
		}
		p.Status = RequestStatusNew
		p.Priority = RequestPriorityMedium
		if e.Priority != nil {
			p.Priority = *e.Priority
		}
		p.DueDate = e.DueDate
		p.AssigneeID = e.AssigneeID
		p.UpdatedAt = e.CreatedAt

	case EventTypeStatusChanged:
		if e.FromStatus == nil || e.ToStatus == nil {
			return fmt.Errorf("status change without from/to: %w", ErrInvalidState)
		}
		if *e.FromStatus != p.Status {
			return &ConflictError{RequestID: p.RequestID, Expected: *e.FromStatus, Actual: p.Status}
		}
		if err := ValidateTransition(*e.FromStatus, *e.ToStatus); err != nil {
			return err
		}
		p.Status = *e.ToStatus
		p.UpdatedAt = e.CreatedAt

	case EventTypeAssigned:
		p.AssigneeID = e.AssigneeID
		p.UpdatedAt = e.CreatedAt

	case EventTypeRevisionAdded:
		if e.RevisionNumber == nil || *e.RevisionNumber != p.RevisionCount+1 {
			return fmt.Errorf("revision number out of sequence after %d: %w", p.RevisionCount, ErrInvalidState)
		}
		p.RevisionCount = *e.RevisionNumber
		p.UpdatedAt = e.CreatedAt

	case EventTypeDueDateChanged:
		p.DueDate = e.DueDate
		p.UpdatedAt = e.CreatedAt

	case EventTypePriorityChanged:
		if e.Priority == nil {
			return fmt.Errorf("priority change without priority: %w", ErrInvalidState)
		}
		p.Priority = *e.Priority
		p.UpdatedAt = e.CreatedAt

	case EventTypeCommentAdded:
		// Comments do not touch the projection.

	default:
		return fmt.Errorf("unknown event type %q: %w", e.EventType, ErrValidation)
	}

	p.EventCount++
	return nil
}

// Drift lists the projection fields that differ from the materialized request.
// An empty result means the row matches its ledger.
func (p Projection) Drift(r Request) []string {
	var fields []string
	if p.Status != r.Status {
		fields = append(fields, "status")
	}
	if !equalUUIDPtr(p.AssigneeID, r.AssigneeID) {
		fields = append(fields, "assignee_id")
	}
	if p.RevisionCount != r.RevisionCount {
		fields = append(fields, "revision_count")
	}
	if p.Priority != r.Priority {
		fields = append(fields, "priority")
	}
	if !equalTimePtr(p.DueDate, r.DueDate) {
		fields = append(fields, "due_date")
	}
	return fields
}

func equalUUIDPtr(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
