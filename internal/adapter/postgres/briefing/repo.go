// Package briefing implements the Briefing repository using PostgreSQL.
package briefing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/reviso-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

var columns = []string{"id", "company_id", "created_by_user_id", "title", "description", "status", "created_at"}

// Repo provides briefing persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new briefing repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new briefing.
func (r *Repo) Create(ctx context.Context, b domain.Briefing) (domain.Briefing, error) {
	query, args, err := postgres.Builder().
		Insert("briefings").
		Columns(columns...).
		Values(b.ID, b.CompanyID, b.CreatedByUserID, b.Title, b.Description, string(b.Status), b.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Briefing{}, fmt.Errorf("build insert briefing: %w", err)
	}

	created, err := scanBriefing(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Briefing{}, postgres.MapError(err, "briefing", b.ID)
	}
	return created, nil
}

// GetByID returns a briefing by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Briefing, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate returns a briefing and locks its row until the transaction ends,
// so concurrent conversions of the same briefing run one after the other.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Briefing, error) {
	if !postgres.InTx(ctx) {
		return domain.Briefing{}, fmt.Errorf("briefing %s: row lock outside transaction", id)
	}
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock bool) (domain.Briefing, error) {
	b := postgres.Builder().Select(columns...).From("briefings").Where(squirrel.Eq{"id": id})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return domain.Briefing{}, fmt.Errorf("build select briefing: %w", err)
	}

	got, err := scanBriefing(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return domain.Briefing{}, postgres.MapError(err, "briefing", id)
	}
	return got, nil
}

// List returns briefings matching the filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.BriefingFilter) ([]domain.Briefing, error) {
	b := postgres.Builder().Select(columns...).From("briefings").OrderBy("created_at DESC", "id")
	if filter.CompanyID != nil {
		b = b.Where(squirrel.Eq{"company_id": *filter.CompanyID})
	}
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list briefings: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list briefings: %w", err)
	}
	defer rows.Close()

	out := []domain.Briefing{}
	for rows.Next() {
		got, err := scanBriefing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan briefing: %w", err)
		}
		out = append(out, got)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list briefings: %w", err)
	}
	return out, nil
}

// Resolve moves a PENDING briefing to a terminal status. A briefing that is
// no longer PENDING fails with domain.ErrInvalidState.
func (r *Repo) Resolve(ctx context.Context, id uuid.UUID, to domain.BriefingStatus) (domain.Briefing, error) {
	query, args, err := postgres.Builder().
		Update("briefings").
		Set("status", string(to)).
		Where(squirrel.Eq{"id": id, "status": string(domain.BriefingStatusPending)}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Briefing{}, fmt.Errorf("build resolve briefing: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	got, err := scanBriefing(q.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		current, getErr := r.GetByID(ctx, id)
		if getErr != nil {
			return domain.Briefing{}, getErr
		}
		return domain.Briefing{}, fmt.Errorf("briefing %s is %s: %w", id, current.Status, domain.ErrInvalidState)
	}
	if err != nil {
		return domain.Briefing{}, postgres.MapError(err, "briefing", id)
	}
	return got, nil
}

func scanBriefing(row pgx.Row) (domain.Briefing, error) {
	var b domain.Briefing
	var status string
	err := row.Scan(&b.ID, &b.CompanyID, &b.CreatedByUserID, &b.Title, &b.Description, &status, &b.CreatedAt)
	if err != nil {
		return domain.Briefing{}, err
	}
	b.Status = domain.BriefingStatus(status)
	b.CreatedAt = b.CreatedAt.UTC()
	return b, nil
}
