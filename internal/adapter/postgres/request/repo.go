// Package request implements the materialized request projection using PostgreSQL.
// Rows are inserted on creation and rewritten only by the ledger store or
// by a projection rebuild.
package request

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/reviso-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

var columns = []string{
	"id", "company_id", "briefing_id", "title", "description", "type", "priority",
	"department", "status", "assignee_id", "due_date", "revision_count", "created_at", "updated_at",
}

// Repo provides request persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new request repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new request row. The caller appends the genesis event in
// the same transaction.
func (r *Repo) Create(ctx context.Context, req domain.Request) (domain.Request, error) {
	query, args, err := postgres.Builder().
		Insert("requests").
		Columns(columns...).
		Values(
			req.ID, req.CompanyID, req.BriefingID, req.Title, req.Description,
			string(req.Type), string(req.Priority), string(req.Department), string(req.Status),
			req.AssigneeID, req.DueDate, req.RevisionCount, req.CreatedAt, req.UpdatedAt,
		).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return domain.Request{}, fmt.Errorf("build insert request: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanRequest(row)
	if err != nil {
		return domain.Request{}, postgres.MapError(err, "request", req.ID)
	}
	return created, nil
}

// ApplyProjection overwrites the ledger-derived fields of a request.
func (r *Repo) ApplyProjection(ctx context.Context, p domain.Projection) (domain.Request, error) {
	query, args, err := postgres.Builder().
		Update("requests").
		Set("status", string(p.Status)).
		Set("assignee_id", p.AssigneeID).
		Set("revision_count", p.RevisionCount).
		Set("priority", string(p.Priority)).
		Set("due_date", p.DueDate).
		Set("updated_at", p.UpdatedAt).
		Where(squirrel.Eq{"id": p.RequestID}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return domain.Request{}, fmt.Errorf("build update request: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	updated, err := scanRequest(row)
	if err != nil {
		return domain.Request{}, postgres.MapError(err, "request", p.RequestID)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a request by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Request, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate returns a request and locks its row until the transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Request, error) {
	if !postgres.InTx(ctx) {
		return domain.Request{}, fmt.Errorf("request %s: row lock outside transaction", id)
	}
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, suffix string) (domain.Request, error) {
	b := postgres.Builder().Select(columns...).From("requests").Where(squirrel.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return domain.Request{}, fmt.Errorf("build select request: %w", err)
	}

	req, err := scanRequest(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Request{}, postgres.MapError(err, "request", id)
	}
	return req, nil
}

// List returns one page of requests matching the filter, newest first, along
// with the total number of matches.
func (r *Repo) List(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, int, error) {
	where := filterConditions(filter)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder().Select("count(*)").From("requests").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count requests: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count requests: %w", err)
	}

	b := postgres.Builder().
		Select(columns...).
		From("requests").
		Where(where).
		OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list requests: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var out []domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan request: %w", err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}

	return out, total, nil
}

// ListIDs returns the ids of all requests created before the cutoff, oldest first.
func (r *Repo) ListIDs(ctx context.Context, createdBefore time.Time) ([]uuid.UUID, error) {
	query, args, err := postgres.Builder().
		Select("id").
		From("requests").
		Where(squirrel.Lt{"created_at": createdBefore}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list request ids: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list request ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("list request ids: %w", err)
	}
	return ids, nil
}

func filterConditions(f domain.RequestFilter) squirrel.And {
	where := squirrel.And{}
	if f.CompanyID != nil {
		where = append(where, squirrel.Eq{"company_id": *f.CompanyID})
	}
	if f.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*f.Status)})
	}
	if f.Priority != nil {
		where = append(where, squirrel.Eq{"priority": string(*f.Priority)})
	}
	if f.Type != nil {
		where = append(where, squirrel.Eq{"type": string(*f.Type)})
	}
	if f.Department != nil {
		where = append(where, squirrel.Eq{"department": string(*f.Department)})
	}
	if f.DueBefore != nil {
		where = append(where, squirrel.Lt{"due_date": *f.DueBefore})
	}
	if f.CreatedFrom != nil {
		where = append(where, squirrel.GtOrEq{"created_at": *f.CreatedFrom})
	}
	if f.CreatedTo != nil {
		where = append(where, squirrel.Lt{"created_at": *f.CreatedTo})
	}
	return where
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func joinColumns() string {
	return strings.Join(columns, ", ")
}

func scanRequest(row pgx.Row) (domain.Request, error) {
	var req domain.Request
	var typ, priority, department, status string
	err := row.Scan(
		&req.ID, &req.CompanyID, &req.BriefingID, &req.Title, &req.Description,
		&typ, &priority, &department, &status,
		&req.AssigneeID, &req.DueDate, &req.RevisionCount, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return domain.Request{}, err
	}
	req.Type = domain.RequestType(typ)
	req.Priority = domain.RequestPriority(priority)
	req.Department = domain.Department(department)
	req.Status = domain.RequestStatus(status)
	req.CreatedAt = req.CreatedAt.UTC()
	req.UpdatedAt = req.UpdatedAt.UTC()
	if req.DueDate != nil {
		due := req.DueDate.UTC()
		req.DueDate = &due
	}
	return req, nil
}
