// Package ledger implements the append-only request event store using PostgreSQL.
//
// Append is the only write path for ledger-derived request fields: each
// event and its effect on the materialized requests row commit together.
// Status changes are compare-and-set on the status the caller observed.
//
// A request's ledger is ordered by seq. Every append after genesis takes the
// request row lock before its seq is drawn, so seq order is commit order, and
// its created_at is raised under that lock to at least the previous event's,
// so timestamps never run backwards along the ledger.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/reviso-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

const eventColumns = `seq, id, request_id, actor_id, event_type, from_status, to_status, message,
	visible_to_client, revision_number, assignee_id, due_date, priority, created_at`

const insertEventSQL = `
INSERT INTO request_events (id, request_id, actor_id, event_type, from_status, to_status, message,
	visible_to_client, revision_number, assignee_id, due_date, priority, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING seq`

const lockRequestSQL = `
SELECT (SELECT e.created_at FROM request_events e WHERE e.request_id = r.id ORDER BY e.seq DESC LIMIT 1)
FROM requests r
WHERE r.id = $1
FOR UPDATE OF r`

const listEventsSQL = `
SELECT ` + eventColumns + `
FROM request_events
WHERE request_id = $1
ORDER BY seq`

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store is the PostgreSQL request event store.
type Store struct {
	pool *pgxpool.Pool
	tx   txManager
}

// New creates a new event store.
func New(pool *pgxpool.Pool, tx txManager) *Store {
	return &Store{pool: pool, tx: tx}
}

// Append persists an event and applies it to the materialized request row in
// one transaction, joining the caller's transaction when there is one. ID and
// CreatedAt are assigned when zero; RevisionNumber is assigned for revisions.
// The returned CreatedAt is never earlier than that of the request's
// previous event.
//
// A status change whose FromStatus no longer matches the stored status fails
// with *domain.ConflictError. Assignment, revision, due date and priority
// events on a terminal request fail with domain.ErrInvalidState.
func (s *Store) Append(ctx context.Context, e domain.RequestEvent) (domain.RequestEvent, error) {
	if !e.EventType.IsValid() {
		return domain.RequestEvent{}, domain.NewValidationError("event_type", "unknown event type")
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, s.pool)

		if err := s.project(ctx, q, &e); err != nil {
			return err
		}

		err := q.QueryRow(ctx, insertEventSQL,
			e.ID, e.RequestID, e.ActorID, string(e.EventType),
			statusPtr(e.FromStatus), statusPtr(e.ToStatus), e.Message,
			e.VisibleToClient, e.RevisionNumber, e.AssigneeID, e.DueDate, priorityPtr(e.Priority),
			e.CreatedAt,
		).Scan(&e.Seq)
		if err != nil {
			return postgres.MapError(err, "request_event", e.ID)
		}
		return nil
	})
	if err != nil {
		return domain.RequestEvent{}, err
	}

	return e, nil
}

// lock takes the request row lock and raises e.CreatedAt to the timestamp of
// the request's latest event. Appends on one request are serialized from here
// until commit.
func (s *Store) lock(ctx context.Context, q postgres.Querier, e *domain.RequestEvent) error {
	var last *time.Time
	err := q.QueryRow(ctx, lockRequestSQL, e.RequestID).Scan(&last)
	if err != nil {
		return postgres.MapError(err, "request", e.RequestID)
	}
	if last != nil && e.CreatedAt.Before(*last) {
		e.CreatedAt = last.UTC()
	}
	return nil
}

// project writes the event's effect on the requests row.
func (s *Store) project(ctx context.Context, q postgres.Querier, e *domain.RequestEvent) error {
	if e.EventType == domain.EventTypeCreated {
		return nil
	}
	if err := s.lock(ctx, q, e); err != nil {
		return err
	}

	update := postgres.Builder().
		Update("requests").
		Set("updated_at", e.CreatedAt).
		Where(squirrel.Eq{"id": e.RequestID})

	switch e.EventType {
	case domain.EventTypeCommentAdded:
		return nil

	case domain.EventTypeStatusChanged:
		if e.FromStatus == nil || e.ToStatus == nil {
			return domain.NewValidationError("to_status", "status change requires from and to")
		}
		if err := domain.ValidateTransition(*e.FromStatus, *e.ToStatus); err != nil {
			return err
		}
		update = update.
			Set("status", string(*e.ToStatus)).
			Where(squirrel.Eq{"status": string(*e.FromStatus)})

	case domain.EventTypeAssigned:
		update = update.Set("assignee_id", e.AssigneeID).Where(notTerminal())

	case domain.EventTypeRevisionAdded:
		update = update.Set("revision_count", squirrel.Expr("revision_count + 1")).Where(notTerminal())

	case domain.EventTypeDueDateChanged:
		update = update.Set("due_date", e.DueDate).Where(notTerminal())

	case domain.EventTypePriorityChanged:
		if e.Priority == nil {
			return domain.NewValidationError("priority", "required")
		}
		update = update.Set("priority", string(*e.Priority)).Where(notTerminal())
	}

	query, args, err := update.Suffix("RETURNING revision_count").ToSql()
	if err != nil {
		return fmt.Errorf("build project %s: %w", e.EventType, err)
	}

	var revision int
	err = q.QueryRow(ctx, query, args...).Scan(&revision)
	if errors.Is(err, pgx.ErrNoRows) {
		return s.rejected(ctx, q, e)
	}
	if err != nil {
		return postgres.MapError(err, "request", e.RequestID)
	}

	if e.EventType == domain.EventTypeRevisionAdded {
		e.RevisionNumber = &revision
	} else {
		e.RevisionNumber = nil
	}
	return nil
}

// rejected explains why a guarded update matched no row.
func (s *Store) rejected(ctx context.Context, q postgres.Querier, e *domain.RequestEvent) error {
	var current string
	err := q.QueryRow(ctx, `SELECT status FROM requests WHERE id = $1`, e.RequestID).Scan(&current)
	if err != nil {
		return postgres.MapError(err, "request", e.RequestID)
	}

	if e.EventType == domain.EventTypeStatusChanged {
		return &domain.ConflictError{
			RequestID: e.RequestID,
			Expected:  *e.FromStatus,
			Actual:    domain.RequestStatus(current),
		}
	}
	return fmt.Errorf("request %s is %s: %w", e.RequestID, current, domain.ErrInvalidState)
}

// Events streams a request's ledger in order. Each range over the returned
// sequence runs a fresh query. Inside a transaction the connection is busy
// until iteration stops, so callers must not query in the loop body.
func (s *Store) Events(ctx context.Context, requestID uuid.UUID) iter.Seq2[domain.RequestEvent, error] {
	return func(yield func(domain.RequestEvent, error) bool) {
		rows, err := postgres.QuerierFromCtx(ctx, s.pool).Query(ctx, listEventsSQL, requestID)
		if err != nil {
			yield(domain.RequestEvent{}, fmt.Errorf("query events of request %s: %w", requestID, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			e, err := scanEvent(rows)
			if err != nil {
				yield(domain.RequestEvent{}, fmt.Errorf("scan event of request %s: %w", requestID, err))
				return
			}
			if !yield(e, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.RequestEvent{}, fmt.Errorf("read events of request %s: %w", requestID, err))
		}
	}
}

// ListByRequest collects the full ordered ledger of a request.
// An unknown request yields an empty slice.
func (s *Store) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.RequestEvent, error) {
	events := []domain.RequestEvent{}
	for e, err := range s.Events(ctx, requestID) {
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func notTerminal() squirrel.Sqlizer {
	return squirrel.NotEq{"status": postgres.TerminalStatusValues()}
}

func scanEvent(row pgx.Row) (domain.RequestEvent, error) {
	var e domain.RequestEvent
	var eventType string
	var fromStatus, toStatus, prio *string
	err := row.Scan(
		&e.Seq, &e.ID, &e.RequestID, &e.ActorID, &eventType, &fromStatus, &toStatus, &e.Message,
		&e.VisibleToClient, &e.RevisionNumber, &e.AssigneeID, &e.DueDate, &prio, &e.CreatedAt,
	)
	if err != nil {
		return domain.RequestEvent{}, err
	}

	e.EventType = domain.EventType(eventType)
	if fromStatus != nil {
		s := domain.RequestStatus(*fromStatus)
		e.FromStatus = &s
	}
	if toStatus != nil {
		s := domain.RequestStatus(*toStatus)
		e.ToStatus = &s
	}
	if prio != nil {
		p := domain.RequestPriority(*prio)
		e.Priority = &p
	}
	e.CreatedAt = e.CreatedAt.UTC()
	if e.DueDate != nil {
		due := e.DueDate.UTC()
		e.DueDate = &due
	}
	return e, nil
}

func statusPtr(s *domain.RequestStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func priorityPtr(p *domain.RequestPriority) *string {
	if p == nil {
		return nil
	}
	v := string(*p)
	return &v
}
