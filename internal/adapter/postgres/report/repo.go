// Package report computes lifecycle metrics from the request ledger and
// the materialized requests table. Every window is half-open: [from, to).
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/reviso-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// cycleTimeSQL pairs each genesis event in the window with the first
// transition of that request into a terminal status.
const cycleTimeSQL = `
WITH genesis AS (
	SELECT request_id, created_at AS started_at
	FROM request_events
	WHERE event_type = 'CREATED' AND created_at >= $1 AND created_at < $2
), finished AS (
	SELECT e.request_id, MIN(e.created_at) AS finished_at
	FROM request_events e
	JOIN genesis g ON g.request_id = e.request_id
	WHERE e.event_type = 'STATUS_CHANGED' AND e.to_status = ANY($3)
	GROUP BY e.request_id
)
SELECT count(*), COALESCE(AVG(EXTRACT(EPOCH FROM f.finished_at - g.started_at)), 0)::float8
FROM genesis g
JOIN finished f ON f.request_id = g.request_id`

// Repo runs report queries against PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Overdue counts open requests whose due date is before at.
func (r *Repo) Overdue(ctx context.Context, at time.Time) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From("requests").
		Where(squirrel.Lt{"due_date": at}).
		Where(squirrel.NotEq{"status": postgres.TerminalStatusValues()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build overdue: %w", err)
	}

	var total int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("overdue: %w", err)
	}
	return total, nil
}

// CycleTime averages genesis-to-terminal durations for requests created in w.
// Requests still open are left out.
func (r *Repo) CycleTime(ctx context.Context, w domain.ReportWindow) (domain.CycleTime, error) {
	var ct domain.CycleTime
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, cycleTimeSQL, w.From, w.To, postgres.TerminalStatusValues()).
		Scan(&ct.Requests, &ct.AvgSeconds)
	if err != nil {
		return domain.CycleTime{}, fmt.Errorf("cycle time: %w", err)
	}
	return ct, nil
}

// Rework counts requests created in w and, among them, those moved to
// CHANGES_REQUESTED inside w.
func (r *Repo) Rework(ctx context.Context, w domain.ReportWindow) (domain.ReworkStats, error) {
	reworked := squirrel.Expr(`count(*) FILTER (WHERE EXISTS (
		SELECT 1 FROM request_events e
		WHERE e.request_id = requests.id
		  AND e.event_type = 'STATUS_CHANGED'
		  AND e.to_status = ?
		  AND e.created_at >= ? AND e.created_at < ?))`,
		string(domain.RequestStatusChangesRequested), w.From, w.To)

	query, args, err := postgres.Builder().
		Select().
		Column(reworked).
		Column("count(*)").
		From("requests").
		Where(squirrel.GtOrEq{"created_at": w.From}).
		Where(squirrel.Lt{"created_at": w.To}).
		ToSql()
	if err != nil {
		return domain.ReworkStats{}, fmt.Errorf("build rework: %w", err)
	}

	var stats domain.ReworkStats
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&stats.ReworkCount, &stats.TotalCount); err != nil {
		return domain.ReworkStats{}, fmt.Errorf("rework: %w", err)
	}
	return stats, nil
}

// RequestsByStatus groups requests created in w by their current status.
// Absent statuses produce no row.
func (r *Repo) RequestsByStatus(ctx context.Context, w domain.ReportWindow) ([]domain.StatusCount, error) {
	query, args, err := postgres.Builder().
		Select("status", "count(*) AS total").
		From("requests").
		Where(squirrel.GtOrEq{"created_at": w.From}).
		Where(squirrel.Lt{"created_at": w.To}).
		GroupBy("status").
		OrderBy("total DESC", "status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build requests by status: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("requests by status: %w", err)
	}
	defer rows.Close()

	out := []domain.StatusCount{}
	for rows.Next() {
		var status string
		var total int
		if err := rows.Scan(&status, &total); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		out = append(out, domain.StatusCount{Status: domain.RequestStatus(status), Total: total})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("requests by status: %w", err)
	}
	return out, nil
}
