// Package dataloader batches the per-HTTP-request lookups made while
// rendering responses. Loaders call repositories directly; callers only ask
// for ids they were already authorized to see.
package dataloader

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/reviso-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type companyRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Company, error)
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	CompanyByID *dataloader.Loader[uuid.UUID, domain.Company]
}

// NewLoaders creates a fresh set of loaders. Results are cached for the
// lifetime of the set, so create one per request.
func NewLoaders(companies companyRepo) *Loaders {
	return &Loaders{
		CompanyByID: dataloader.NewBatchedLoader(
			companyBatchFn(companies),
			dataloader.WithWait[uuid.UUID, domain.Company](wait),
			dataloader.WithBatchCapacity[uuid.UUID, domain.Company](maxBatch),
		),
	}
}

func companyBatchFn(repo companyRepo) dataloader.BatchFunc[uuid.UUID, domain.Company] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.Company] {
		results := make([]*dataloader.Result[domain.Company], len(keys))

		companies, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[domain.Company]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]domain.Company, len(companies))
		for _, c := range companies {
			byID[c.ID] = c
		}
		for i, key := range keys {
			if c, ok := byID[key]; ok {
				results[i] = &dataloader.Result[domain.Company]{Data: c}
			} else {
				results[i] = &dataloader.Result[domain.Company]{Error: fmt.Errorf("company %s: %w", key, domain.ErrNotFound)}
			}
		}
		return results
	}
}

// CompanyNames resolves the display names of ids in one batch. Unknown ids
// are left out of the result.
func (l *Loaders) CompanyNames(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]string {
	companies, _ := l.CompanyByID.LoadMany(ctx, ids)()
	names := make(map[uuid.UUID]string, len(ids))
	for i, c := range companies {
		if c.ID != uuid.Nil {
			names[ids[i]] = c.Name
		}
	}
	return names
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext returns the request's loaders, or nil outside the middleware.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// Middleware attaches a fresh set of loaders to every request.
func Middleware(companies companyRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(companies))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
