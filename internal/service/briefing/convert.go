package briefing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// Convert creates a NEW request from a pending briefing and marks the
// briefing CONVERTED. The briefing flip, the request row and its genesis
// event commit together or not at all.
func (s *Service) Convert(ctx context.Context, in ConvertInput) (domain.Request, error) {
	if err := auth.RequireAgency(ctx); err != nil {
		return domain.Request{}, err
	}
	if err := in.validate(); err != nil {
		return domain.Request{}, err
	}

	actor := auth.ResolveActor(ctx, in.ActorID)

	var created domain.Request
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		b, err := s.briefings.GetForUpdate(ctx, in.BriefingID)
		if err != nil {
			return fmt.Errorf("lock briefing: %w", err)
		}
		if !b.IsPending() {
			return fmt.Errorf("briefing %s is %s: %w", b.ID, b.Status, domain.ErrInvalidState)
		}

		briefingID := b.ID
		req := domain.NewRequest(domain.NewRequestParams{
			CompanyID:   b.CompanyID,
			BriefingID:  &briefingID,
			Title:       b.Title,
			Description: b.Description,
			Department:  in.Department,
		}, domain.Now())

		created, err = s.requests.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		if _, err := s.events.Append(ctx, domain.GenesisEvent(created, actor)); err != nil {
			return fmt.Errorf("append genesis: %w", err)
		}
		if _, err := s.briefings.Resolve(ctx, b.ID, domain.BriefingStatusConverted); err != nil {
			return fmt.Errorf("resolve briefing: %w", err)
		}

		if err := s.audit.Log(ctx, domain.AuditRecord{
			UserID:     actor,
			EntityType: domain.AuditEntityBriefing,
			EntityID:   b.ID,
			Action:     domain.AuditActionConvert,
			Changes: map[string]any{
				"status":     map[string]any{"old": b.Status, "new": domain.BriefingStatusConverted},
				"request_id": created.ID,
				"department": created.Department,
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Request{}, err
	}

	s.log.InfoContext(ctx, "briefing converted",
		slog.String("briefing_id", in.BriefingID.String()),
		slog.String("request_id", created.ID.String()),
		slog.String("department", string(created.Department)),
	)
	return created, nil
}

// Reject marks a pending briefing REJECTED. No request is created.
func (s *Service) Reject(ctx context.Context, in RejectInput) (domain.Briefing, error) {
	if err := auth.RequireAgency(ctx); err != nil {
		return domain.Briefing{}, err
	}
	if err := in.validate(); err != nil {
		return domain.Briefing{}, err
	}

	actor := auth.ResolveActor(ctx, in.ActorID)

	var rejected domain.Briefing
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		rejected, err = s.briefings.Resolve(ctx, in.BriefingID, domain.BriefingStatusRejected)
		if err != nil {
			return fmt.Errorf("resolve briefing: %w", err)
		}

		if err := s.audit.Log(ctx, domain.AuditRecord{
			UserID:     actor,
			EntityType: domain.AuditEntityBriefing,
			EntityID:   rejected.ID,
			Action:     domain.AuditActionReject,
			Changes: map[string]any{
				"status": map[string]any{"old": domain.BriefingStatusPending, "new": domain.BriefingStatusRejected},
			},
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Briefing{}, err
	}

	s.log.InfoContext(ctx, "briefing rejected", slog.String("briefing_id", rejected.ID.String()))
	return rejected, nil
}
