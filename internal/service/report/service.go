// Package report serves the lifecycle metrics. All of them are read-only and
// restricted to agency callers.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/config"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

type reportRepo interface {
	Overdue(ctx context.Context, at time.Time) (int, error)
	CycleTime(ctx context.Context, w domain.ReportWindow) (domain.CycleTime, error)
	Rework(ctx context.Context, w domain.ReportWindow) (domain.ReworkStats, error)
	RequestsByStatus(ctx context.Context, w domain.ReportWindow) ([]domain.StatusCount, error)
}

//go:generate moq -out report_mock_test.go -pkg report . reportRepo

// Service provides report queries.
type Service struct {
	reports reportRepo
	cfg     config.ReportsConfig
	log     *slog.Logger
}

// NewService creates a new report service.
func NewService(log *slog.Logger, reports reportRepo, cfg config.ReportsConfig) *Service {
	return &Service{
		reports: reports,
		cfg:     cfg,
		log:     log.With("service", "report"),
	}
}

// WindowInput is a requested reporting interval [From, To).
type WindowInput struct {
	From *time.Time
	To   *time.Time
}

func (s *Service) window(in WindowInput) (domain.ReportWindow, error) {
	var errs []domain.FieldError
	if in.From == nil {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if in.To == nil {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.ReportWindow{}, &domain.ValidationError{Errors: errs}
	}

	w := domain.ReportWindow{From: in.From.UTC(), To: in.To.UTC()}
	if !w.From.Before(w.To) {
		return domain.ReportWindow{}, domain.NewValidationError("from", "must be before to")
	}
	if w.To.Sub(w.From) > s.cfg.MaxWindow() {
		return domain.ReportWindow{}, domain.NewValidationError("to", fmt.Sprintf("window exceeds %d days", s.cfg.MaxWindowDays))
	}
	return w, nil
}

// Overdue counts open requests due before at, or before now when at is nil.
func (s *Service) Overdue(ctx context.Context, at *time.Time) (int, error) {
	if err := auth.RequireAgency(ctx); err != nil {
		return 0, err
	}

	ref := domain.Now()
	if at != nil {
		ref = at.UTC()
	}

	total, err := s.reports.Overdue(ctx, ref)
	if err != nil {
		return 0, fmt.Errorf("overdue report: %w", err)
	}
	return total, nil
}

// AvgCycleTime is the mean genesis-to-terminal time of requests created in
// the window that have finished.
func (s *Service) AvgCycleTime(ctx context.Context, in WindowInput) (domain.CycleTime, error) {
	if err := auth.RequireAgency(ctx); err != nil {
		return domain.CycleTime{}, err
	}
	w, err := s.window(in)
	if err != nil {
		return domain.CycleTime{}, err
	}

	ct, err := s.reports.CycleTime(ctx, w)
	if err != nil {
		return domain.CycleTime{}, fmt.Errorf("cycle time report: %w", err)
	}
	return ct, nil
}

// ReworkMetrics counts the requests created in the window that were sent
// back for changes within it.
func (s *Service) ReworkMetrics(ctx context.Context, in WindowInput) (domain.ReworkStats, error) {
	if err := auth.RequireAgency(ctx); err != nil {
		return domain.ReworkStats{}, err
	}
	w, err := s.window(in)
	if err != nil {
		return domain.ReworkStats{}, err
	}

	stats, err := s.reports.Rework(ctx, w)
	if err != nil {
		return domain.ReworkStats{}, fmt.Errorf("rework report: %w", err)
	}
	return stats, nil
}

// RequestsByStatus groups requests created in the window by current status.
// Absent statuses are not zero-filled.
func (s *Service) RequestsByStatus(ctx context.Context, in WindowInput) ([]domain.StatusCount, error) {
	if err := auth.RequireAgency(ctx); err != nil {
		return nil, err
	}
	w, err := s.window(in)
	if err != nil {
		return nil, err
	}

	rows, err := s.reports.RequestsByStatus(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("requests by status report: %w", err)
	}
	if rows == nil {
		rows = []domain.StatusCount{}
	}
	return rows, nil
}
