package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/reviso-backend/internal/domain"
	"github.com/heartmarshall/reviso-backend/internal/service/report"
)

type reportService interface {
	Overdue(ctx context.Context, at *time.Time) (int, error)
	AvgCycleTime(ctx context.Context, in report.WindowInput) (domain.CycleTime, error)
	ReworkMetrics(ctx context.Context, in report.WindowInput) (domain.ReworkStats, error)
	RequestsByStatus(ctx context.Context, in report.WindowInput) ([]domain.StatusCount, error)
}

// ReportHandler serves the lifecycle metrics.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// Overdue handles GET /reports/overdue?at=.
func (h *ReportHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	at := q.optTime("at")
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	total, err := h.svc.Overdue(r.Context(), at)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, overdueResponse{Total: total})
}

// AvgCycleTime handles GET /reports/avg-cycle-time?from&to.
func (h *ReportHandler) AvgCycleTime(w http.ResponseWriter, r *http.Request) {
	in, ok := h.window(w, r)
	if !ok {
		return
	}

	ct, err := h.svc.AvgCycleTime(r.Context(), in)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, cycleTimeResponse{
		AvgDays:    ct.Days(),
		AvgHours:   ct.Hours(),
		AvgSeconds: ct.AvgSeconds,
	})
}

// ReworkMetrics handles GET /reports/rework-metrics?from&to.
func (h *ReportHandler) ReworkMetrics(w http.ResponseWriter, r *http.Request) {
	in, ok := h.window(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.ReworkMetrics(r.Context(), in)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, reworkResponse{
		ReworkCount:      stats.ReworkCount,
		TotalCount:       stats.TotalCount,
		ReworkPercentage: stats.Percentage(),
	})
}

// RequestsByStatus handles GET /reports/requests-by-status?from&to.
func (h *ReportHandler) RequestsByStatus(w http.ResponseWriter, r *http.Request) {
	in, ok := h.window(w, r)
	if !ok {
		return
	}

	counts, err := h.svc.RequestsByStatus(r.Context(), in)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	out := make([]statusCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, statusCountResponse{Status: string(c.Status), Total: c.Total})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ReportHandler) window(w http.ResponseWriter, r *http.Request) (report.WindowInput, bool) {
	q := newQueryParser(r)
	in := report.WindowInput{From: q.optTime("from"), To: q.optTime("to")}
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return report.WindowInput{}, false
	}
	return in, true
}
