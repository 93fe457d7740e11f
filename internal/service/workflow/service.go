// Package workflow drives a request through its lifecycle. Every mutation is
// a ledger append; the event store applies it to the materialized request.
package workflow

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/config"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

type requestRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Request, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Request, error)
	ApplyProjection(ctx context.Context, p domain.Projection) (domain.Request, error)
}

type eventStore interface {
	Append(ctx context.Context, e domain.RequestEvent) (domain.RequestEvent, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.RequestEvent, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

//go:generate moq -out workflow_mock_test.go -pkg workflow . requestRepo eventStore auditLogger txManager

// Service provides request lifecycle operations.
type Service struct {
	requests requestRepo
	events   eventStore
	audit    auditLogger
	tx       txManager
	cfg      config.WorkflowConfig
	log      *slog.Logger
}

// NewService creates a new workflow service.
func NewService(
	log *slog.Logger,
	requests requestRepo,
	events eventStore,
	audit auditLogger,
	tx txManager,
	cfg config.WorkflowConfig,
) *Service {
	return &Service{
		requests: requests,
		events:   events,
		audit:    audit,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "workflow"),
	}
}
