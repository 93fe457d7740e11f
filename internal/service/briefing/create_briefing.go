package briefing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// CreateBriefing records a PENDING briefing owned by the caller's company.
func (s *Service) CreateBriefing(ctx context.Context, in CreateInput) (domain.Briefing, error) {
	if err := in.validate(s.cfg.MaxTitleLength); err != nil {
		return domain.Briefing{}, err
	}

	companyID := in.CompanyID
	if scope := auth.CompanyScope(ctx); scope != nil {
		companyID = *scope
	}
	if companyID == uuid.Nil {
		return domain.Briefing{}, domain.NewValidationError("company_id", "required")
	}

	author := auth.ResolveActor(ctx, in.ActorID)
	if author == nil {
		return domain.Briefing{}, domain.NewValidationError("actor_id", "required")
	}

	b := domain.Briefing{
		ID:              uuid.New(),
		CompanyID:       companyID,
		CreatedByUserID: *author,
		Title:           domain.NormalizeTitle(in.Title),
		Description:     trimOrNil(in.Description),
		Status:          domain.BriefingStatusPending,
		CreatedAt:       domain.Now(),
	}

	var created domain.Briefing
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.briefings.Create(ctx, b)
		if err != nil {
			return fmt.Errorf("create briefing: %w", err)
		}
		return s.audit.Log(ctx, domain.AuditRecord{
			UserID:     author,
			EntityType: domain.AuditEntityBriefing,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"company_id": created.CompanyID,
				"title":      created.Title,
			},
		})
	})
	if err != nil {
		return domain.Briefing{}, err
	}

	s.log.InfoContext(ctx, "briefing created",
		slog.String("briefing_id", created.ID.String()),
		slog.String("company_id", created.CompanyID.String()),
	)
	return created, nil
}
