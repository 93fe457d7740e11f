package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// Assign hands a non-terminal request to an agency user.
func (s *Service) Assign(ctx context.Context, in AssignInput) (domain.RequestEvent, error) {
	if err := auth.RequireAgency(ctx); err != nil {
		return domain.RequestEvent{}, err
	}
	if err := in.validate(); err != nil {
		return domain.RequestEvent{}, err
	}

	req, err := s.openRequest(ctx, in.RequestID)
	if err != nil {
		return domain.RequestEvent{}, err
	}

	assignee := in.AssigneeID
	ev := s.newEvent(ctx, req.ID, domain.EventTypeAssigned, in.ActorID, nil)
	ev.AssigneeID = &assignee

	stored, err := s.events.Append(ctx, ev)
	if err != nil {
		return domain.RequestEvent{}, fmt.Errorf("append assignment: %w", err)
	}

	s.log.InfoContext(ctx, "request assigned",
		slog.String("request_id", req.ID.String()),
		slog.String("assignee_id", assignee.String()),
	)
	return stored, nil
}

// AddComment records a comment in any status. Client users may comment on
// their own company's requests; their comments are always client-visible.
func (s *Service) AddComment(ctx context.Context, in AddCommentInput) (domain.RequestEvent, error) {
	if err := in.validate(s.cfg.MaxMessageLength); err != nil {
		return domain.RequestEvent{}, err
	}

	req, err := s.requests.GetByID(ctx, in.RequestID)
	if err != nil {
		return domain.RequestEvent{}, fmt.Errorf("get request: %w", err)
	}
	if !auth.CanAccess(ctx, req.CompanyID) {
		return domain.RequestEvent{}, fmt.Errorf("request %s: %w", req.ID, domain.ErrNotFound)
	}

	ev := s.newEvent(ctx, req.ID, domain.EventTypeCommentAdded, in.ActorID, in.VisibleToClient)
	ev.Message = trimOrNil(&in.Message)

	stored, err := s.events.Append(ctx, ev)
	if err != nil {
		return domain.RequestEvent{}, fmt.Errorf("append comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("request_id", req.ID.String()),
		slog.Bool("visible_to_client", stored.VisibleToClient),
	)
	return stored, nil
}

// AddRevision records the next revision of a non-terminal request. The
// revision number is assigned by the store together with the counter
// increment, so concurrent revisions never share a number.
func (s *Service) AddRevision(ctx context.Context, in AddRevisionInput) (domain.RequestEvent, error) {
	if err := auth.RequireAgency(ctx); err != nil {
		return domain.RequestEvent{}, err
	}
	if err := in.validate(s.cfg.MaxMessageLength); err != nil {
		return domain.RequestEvent{}, err
	}

	req, err := s.openRequest(ctx, in.RequestID)
	if err != nil {
		return domain.RequestEvent{}, err
	}

	ev := s.newEvent(ctx, req.ID, domain.EventTypeRevisionAdded, in.ActorID, nil)
	ev.Message = trimOrNil(in.Message)

	stored, err := s.events.Append(ctx, ev)
	if err != nil {
		return domain.RequestEvent{}, fmt.Errorf("append revision: %w", err)
	}

	attrs := []any{slog.String("request_id", req.ID.String())}
	if stored.RevisionNumber != nil {
		attrs = append(attrs, slog.Int("revision", *stored.RevisionNumber))
	}
	s.log.InfoContext(ctx, "revision added", attrs...)
	return stored, nil
}

// ChangeDueDate sets or clears the due date of a non-terminal request.
func (s *Service) ChangeDueDate(ctx context.Context, in ChangeDueDateInput) (domain.RequestEvent, error) {
	if err := auth.RequireAgency(ctx); err != nil {
		return domain.RequestEvent{}, err
	}
	if err := in.validate(); err != nil {
		return domain.RequestEvent{}, err
	}

	req, err := s.openRequest(ctx, in.RequestID)
	if err != nil {
		return domain.RequestEvent{}, err
	}

	ev := s.newEvent(ctx, req.ID, domain.EventTypeDueDateChanged, in.ActorID, nil)
	if in.DueDate != nil {
		due := in.DueDate.UTC().Truncate(time.Microsecond)
		ev.DueDate = &due
	}

	stored, err := s.events.Append(ctx, ev)
	if err != nil {
		return domain.RequestEvent{}, fmt.Errorf("append due date change: %w", err)
	}

	s.log.InfoContext(ctx, "due date changed", slog.String("request_id", req.ID.String()))
	return stored, nil
}

// ChangePriority sets the priority of a non-terminal request.
func (s *Service) ChangePriority(ctx context.Context, in ChangePriorityInput) (domain.RequestEvent, error) {
	if err := auth.RequireAgency(ctx); err != nil {
		return domain.RequestEvent{}, err
	}
	if err := in.validate(); err != nil {
		return domain.RequestEvent{}, err
	}

	req, err := s.openRequest(ctx, in.RequestID)
	if err != nil {
		return domain.RequestEvent{}, err
	}

	priority := in.Priority
	ev := s.newEvent(ctx, req.ID, domain.EventTypePriorityChanged, in.ActorID, nil)
	ev.Priority = &priority

	stored, err := s.events.Append(ctx, ev)
	if err != nil {
		return domain.RequestEvent{}, fmt.Errorf("append priority change: %w", err)
	}

	s.log.InfoContext(ctx, "priority changed",
		slog.String("request_id", req.ID.String()),
		slog.String("priority", string(priority)),
	)
	return stored, nil
}
