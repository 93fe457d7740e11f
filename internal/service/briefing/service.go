// Package briefing triages client briefings: conversion into a tracked
// request or rejection. Both are terminal for the briefing.
package briefing

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/config"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

type briefingRepo interface {
	Create(ctx context.Context, b domain.Briefing) (domain.Briefing, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Briefing, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (domain.Briefing, error)
	List(ctx context.Context, filter domain.BriefingFilter) ([]domain.Briefing, error)
	Resolve(ctx context.Context, id uuid.UUID, to domain.BriefingStatus) (domain.Briefing, error)
}

type requestRepo interface {
	Create(ctx context.Context, req domain.Request) (domain.Request, error)
}

type eventStore interface {
	Append(ctx context.Context, e domain.RequestEvent) (domain.RequestEvent, error)
}

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, entityType domain.AuditEntity, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

//go:generate moq -out briefing_mock_test.go -pkg briefing . briefingRepo requestRepo eventStore auditRepo txManager

// Service provides briefing operations.
type Service struct {
	briefings briefingRepo
	requests  requestRepo
	events    eventStore
	audit     auditRepo
	tx        txManager
	cfg       config.WorkflowConfig
	log       *slog.Logger
}

// NewService creates a new briefing service.
func NewService(
	log *slog.Logger,
	briefings briefingRepo,
	requests requestRepo,
	events eventStore,
	audit auditRepo,
	tx txManager,
	cfg config.WorkflowConfig,
) *Service {
	return &Service{
		briefings: briefings,
		requests:  requests,
		events:    events,
		audit:     audit,
		tx:        tx,
		cfg:       cfg,
		log:       log.With("service", "briefing"),
	}
}
