package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// ChangeStatus validates the edge from the request's current status and
// appends the transition. The append is compare-and-set on the status read
// here, so a concurrent transition surfaces as *domain.ConflictError and the
// caller may re-read and retry.
func (s *Service) ChangeStatus(ctx context.Context, in ChangeStatusInput) (domain.RequestEvent, error) {
	if err := auth.RequireAgency(ctx); err != nil {
		return domain.RequestEvent{}, err
	}
	if err := in.validate(s.cfg.MaxMessageLength); err != nil {
		return domain.RequestEvent{}, err
	}

	req, err := s.requests.GetByID(ctx, in.RequestID)
	if err != nil {
		return domain.RequestEvent{}, fmt.Errorf("get request: %w", err)
	}

	if err := domain.ValidateTransition(req.Status, in.ToStatus); err != nil {
		return domain.RequestEvent{}, err
	}

	from, to := req.Status, in.ToStatus
	ev := s.newEvent(ctx, req.ID, domain.EventTypeStatusChanged, in.ActorID, in.VisibleToClient)
	ev.FromStatus = &from
	ev.ToStatus = &to
	ev.Message = trimOrNil(in.Message)

	stored, err := s.events.Append(ctx, ev)
	if err != nil {
		return domain.RequestEvent{}, fmt.Errorf("append status change: %w", err)
	}

	s.log.InfoContext(ctx, "request status changed",
		slog.String("request_id", req.ID.String()),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
	)

	return stored, nil
}

// newEvent fills the fields shared by every ledger write: attribution,
// write-time visibility and timestamp.
func (s *Service) newEvent(ctx context.Context, requestID uuid.UUID, t domain.EventType, actor *uuid.UUID, visible *bool) domain.RequestEvent {
	return domain.RequestEvent{
		ID:              uuid.New(),
		RequestID:       requestID,
		ActorID:         auth.ResolveActor(ctx, actor),
		EventType:       t,
		VisibleToClient: domain.ResolveVisibility(t, auth.ActorRole(ctx), visible),
		CreatedAt:       domain.Now(),
	}
}

// openRequest loads a request that must still accept changes.
func (s *Service) openRequest(ctx context.Context, id uuid.UUID) (domain.Request, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return domain.Request{}, fmt.Errorf("get request: %w", err)
	}
	if req.Status.IsTerminal() {
		return domain.Request{}, fmt.Errorf("request %s is %s: %w", id, req.Status, domain.ErrInvalidState)
	}
	return req, nil
}
