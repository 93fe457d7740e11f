// Package company reads the company directory from PostgreSQL.
package company

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/reviso-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// Repo provides read access to companies.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new company repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a company by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Company, error) {
	var c domain.Company
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT id, name, created_at FROM companies WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return domain.Company{}, postgres.MapError(err, "company", id)
	}
	return c, nil
}

// GetByIDs returns the companies among ids in no particular order.
// Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Company, error) {
	if len(ids) == 0 {
		return []domain.Company{}, nil
	}

	query, args, err := postgres.Builder().
		Select("id", "name", "created_at").
		From("companies").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build companies by ids: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get companies by ids: %w", err)
	}
	companies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Company, error) {
		var c domain.Company
		err := row.Scan(&c.ID, &c.Name, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("get companies by ids: %w", err)
	}
	return companies, nil
}
