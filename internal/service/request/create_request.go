package request

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// CreateRequest opens a request without a briefing. The row and its genesis
// event commit together.
func (s *Service) CreateRequest(ctx context.Context, in CreateInput) (domain.Request, error) {
	if err := auth.RequireAgency(ctx); err != nil {
		return domain.Request{}, err
	}
	if err := in.validate(s.cfg.MaxTitleLength); err != nil {
		return domain.Request{}, err
	}

	params := domain.NewRequestParams{
		CompanyID:   in.CompanyID,
		Title:       domain.NormalizeTitle(in.Title),
		Description: trimOrNil(in.Description),
		Type:        in.Type,
		Priority:    in.Priority,
		Department:  in.Department,
	}
	if in.DueDate != nil {
		due := in.DueDate.UTC().Truncate(time.Microsecond)
		params.DueDate = &due
	}
	req := domain.NewRequest(params, domain.Now())

	var created domain.Request
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.requests.Create(ctx, req)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		if _, err := s.events.Append(ctx, domain.GenesisEvent(created, auth.ResolveActor(ctx, in.ActorID))); err != nil {
			return fmt.Errorf("append genesis: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Request{}, err
	}

	s.log.InfoContext(ctx, "request created",
		slog.String("request_id", created.ID.String()),
		slog.String("company_id", created.CompanyID.String()),
	)
	return created, nil
}
