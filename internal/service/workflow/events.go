package workflow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// ListEvents returns a request's ledger in order. Client callers always get
// the client-visible projection, whatever onlyVisibleToClient says.
func (s *Service) ListEvents(ctx context.Context, requestID uuid.UUID, onlyVisibleToClient bool) ([]domain.RequestEvent, error) {
	if auth.CompanyScope(ctx) != nil {
		onlyVisibleToClient = true
	}
	if onlyVisibleToClient {
		return s.ListEventsVisibleToClient(ctx, requestID)
	}

	if _, err := s.accessibleRequest(ctx, requestID); err != nil {
		return nil, err
	}

	events, err := s.events.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// ListEventsVisibleToClient returns only the events marked visible to
// clients. Hidden events are dropped whole.
func (s *Service) ListEventsVisibleToClient(ctx context.Context, requestID uuid.UUID) ([]domain.RequestEvent, error) {
	if _, err := s.accessibleRequest(ctx, requestID); err != nil {
		return nil, err
	}

	events, err := s.events.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return domain.FilterVisibleToClient(events), nil
}

// accessibleRequest loads a request the caller may see. Requests of another
// company look exactly like missing ones.
func (s *Service) accessibleRequest(ctx context.Context, id uuid.UUID) (domain.Request, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return domain.Request{}, fmt.Errorf("get request: %w", err)
	}
	if !auth.CanAccess(ctx, req.CompanyID) {
		return domain.Request{}, fmt.Errorf("request %s: %w", id, domain.ErrNotFound)
	}
	return req, nil
}
