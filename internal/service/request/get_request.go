package request

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// GetRequest returns a request the caller may see.
func (s *Service) GetRequest(ctx context.Context, id uuid.UUID) (domain.Request, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return domain.Request{}, fmt.Errorf("get request: %w", err)
	}
	if !auth.CanAccess(ctx, req.CompanyID) {
		return domain.Request{}, fmt.Errorf("request %s: %w", id, domain.ErrNotFound)
	}
	return req, nil
}

// ListRequests returns one page of requests, newest first. Client callers
// only ever see their own company.
func (s *Service) ListRequests(ctx context.Context, in ListInput) (ListResult, error) {
	if err := in.validate(); err != nil {
		return ListResult{}, err
	}

	limit := clampLimit(in.Limit, s.cfg.MaxListLimit, s.cfg.DefaultListLimit)

	filter := domain.RequestFilter{
		CompanyID:   in.CompanyID,
		Status:      in.Status,
		Priority:    in.Priority,
		Type:        in.Type,
		Department:  in.Department,
		DueBefore:   in.DueBefore,
		CreatedFrom: in.CreatedFrom,
		CreatedTo:   in.CreatedTo,
		Limit:       limit,
		Offset:      in.Offset,
	}
	if scope := auth.CompanyScope(ctx); scope != nil {
		filter.CompanyID = scope
	}

	requests, total, err := s.requests.List(ctx, filter)
	if err != nil {
		return ListResult{}, fmt.Errorf("list requests: %w", err)
	}
	if requests == nil {
		requests = []domain.Request{}
	}

	return ListResult{
		Requests:   requests,
		TotalCount: total,
		Limit:      limit,
		Offset:     in.Offset,
	}, nil
}

// clampLimit applies the default for 0 and caps at maxLimit.
func clampLimit(limit, maxLimit, def int) int {
	if limit <= 0 {
		return def
	}
	return min(limit, maxLimit)
}
