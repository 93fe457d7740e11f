package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// ProjectionReport compares a materialized request with its replayed ledger.
type ProjectionReport struct {
	Request    domain.Request
	Projection domain.Projection
	Drift      []string
	Rebuilt    bool
}

// InSync reports whether the row matched its ledger.
func (r ProjectionReport) InSync() bool { return len(r.Drift) == 0 }

// VerifyProjection replays the ledger and reports which materialized fields
// disagree with it. Nothing is written.
func (s *Service) VerifyProjection(ctx context.Context, requestID uuid.UUID) (ProjectionReport, error) {
	if err := auth.RequireAdmin(ctx); err != nil {
		return ProjectionReport{}, err
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return ProjectionReport{}, fmt.Errorf("get request: %w", err)
	}
	return s.compare(ctx, req)
}

// RebuildProjection overwrites the materialized request from its ledger when
// they disagree, and records the overwrite in the audit trail. The row is
// locked for the duration so no append can interleave.
func (s *Service) RebuildProjection(ctx context.Context, requestID uuid.UUID) (ProjectionReport, error) {
	if err := auth.RequireAdmin(ctx); err != nil {
		return ProjectionReport{}, err
	}

	var report ProjectionReport
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		req, err := s.requests.GetForUpdate(ctx, requestID)
		if err != nil {
			return fmt.Errorf("lock request: %w", err)
		}

		report, err = s.compare(ctx, req)
		if err != nil {
			return err
		}
		if report.InSync() {
			return nil
		}

		rebuilt, err := s.requests.ApplyProjection(ctx, report.Projection)
		if err != nil {
			return fmt.Errorf("apply projection: %w", err)
		}

		if err := s.audit.Log(ctx, domain.AuditRecord{
			UserID:     auth.ResolveActor(ctx, nil),
			EntityType: domain.AuditEntityRequest,
			EntityID:   requestID,
			Action:     domain.AuditActionRebuild,
			Changes:    driftChanges(report.Request, rebuilt, report.Drift),
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		report.Request = rebuilt
		report.Rebuilt = true
		return nil
	})
	if err != nil {
		return ProjectionReport{}, err
	}

	if report.Rebuilt {
		s.log.WarnContext(ctx, "projection rebuilt from ledger",
			slog.String("request_id", requestID.String()),
			slog.Any("drift", report.Drift),
		)
	}
	return report, nil
}

func (s *Service) compare(ctx context.Context, req domain.Request) (ProjectionReport, error) {
	events, err := s.events.ListByRequest(ctx, req.ID)
	if err != nil {
		return ProjectionReport{}, fmt.Errorf("list events: %w", err)
	}

	p, err := domain.Replay(req.ID, events)
	if err != nil {
		return ProjectionReport{}, err
	}

	return ProjectionReport{
		Request:    req,
		Projection: p,
		Drift:      p.Drift(req),
	}, nil
}

// driftChanges records old and new values of every drifted field.
func driftChanges(before, after domain.Request, drift []string) map[string]any {
	changes := make(map[string]any, len(drift))
	for _, field := range drift {
		var old, cur any
		switch field {
		case "status":
			old, cur = before.Status, after.Status
		case "assignee_id":
			old, cur = before.AssigneeID, after.AssigneeID
		case "revision_count":
			old, cur = before.RevisionCount, after.RevisionCount
		case "priority":
			old, cur = before.Priority, after.Priority
		case "due_date":
			old, cur = before.DueDate, after.DueDate
		}
		changes[field] = map[string]any{"old": old, "new": cur}
	}
	return changes
}
