package briefing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// GetBriefing returns a briefing the caller may see.
func (s *Service) GetBriefing(ctx context.Context, id uuid.UUID) (domain.Briefing, error) {
	b, err := s.briefings.GetByID(ctx, id)
	if err != nil {
		return domain.Briefing{}, fmt.Errorf("get briefing: %w", err)
	}
	if !auth.CanAccess(ctx, b.CompanyID) {
		return domain.Briefing{}, fmt.Errorf("briefing %s: %w", id, domain.ErrNotFound)
	}
	return b, nil
}

// ListBriefings returns briefings newest first. Client callers only see
// their own company.
func (s *Service) ListBriefings(ctx context.Context, filter domain.BriefingFilter) ([]domain.Briefing, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}
	if scope := auth.CompanyScope(ctx); scope != nil {
		filter.CompanyID = scope
	}

	briefings, err := s.briefings.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list briefings: %w", err)
	}
	if briefings == nil {
		briefings = []domain.Briefing{}
	}
	return briefings, nil
}

// History returns the audit trail of a briefing, newest first.
func (s *Service) History(ctx context.Context, id uuid.UUID) ([]domain.AuditRecord, error) {
	if err := auth.RequireAgency(ctx); err != nil {
		return nil, err
	}
	if _, err := s.briefings.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get briefing: %w", err)
	}

	records, err := s.audit.GetByEntity(ctx, domain.AuditEntityBriefing, id, s.cfg.MaxListLimit)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	if records == nil {
		records = []domain.AuditRecord{}
	}
	return records, nil
}
