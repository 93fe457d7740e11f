// Package request creates requests directly and serves request reads.
package request

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/config"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

type requestRepo interface {
	Create(ctx context.Context, req domain.Request) (domain.Request, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Request, error)
	List(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, int, error)
}

type eventStore interface {
	Append(ctx context.Context, e domain.RequestEvent) (domain.RequestEvent, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

//go:generate moq -out request_mock_test.go -pkg request . requestRepo eventStore txManager

// Service provides request creation and reads.
type Service struct {
	requests requestRepo
	events   eventStore
	tx       txManager
	cfg      config.WorkflowConfig
	log      *slog.Logger
}

// NewService creates a new request service.
func NewService(
	log *slog.Logger,
	requests requestRepo,
	events eventStore,
	tx txManager,
	cfg config.WorkflowConfig,
) *Service {
	return &Service{
		requests: requests,
		events:   events,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "request"),
	}
}
