package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/domain"
	"github.com/heartmarshall/reviso-backend/internal/service/request"
	"github.com/heartmarshall/reviso-backend/internal/service/workflow"
)

type requestService interface {
	CreateRequest(ctx context.Context, in request.CreateInput) (domain.Request, error)
	GetRequest(ctx context.Context, id uuid.UUID) (domain.Request, error)
	ListRequests(ctx context.Context, in request.ListInput) (request.ListResult, error)
}

type workflowService interface {
	ChangeStatus(ctx context.Context, in workflow.ChangeStatusInput) (domain.RequestEvent, error)
	Assign(ctx context.Context, in workflow.AssignInput) (domain.RequestEvent, error)
	AddComment(ctx context.Context, in workflow.AddCommentInput) (domain.RequestEvent, error)
	AddRevision(ctx context.Context, in workflow.AddRevisionInput) (domain.RequestEvent, error)
	ChangeDueDate(ctx context.Context, in workflow.ChangeDueDateInput) (domain.RequestEvent, error)
	ChangePriority(ctx context.Context, in workflow.ChangePriorityInput) (domain.RequestEvent, error)
	ListEvents(ctx context.Context, requestID uuid.UUID, onlyVisibleToClient bool) ([]domain.RequestEvent, error)
	VerifyProjection(ctx context.Context, requestID uuid.UUID) (workflow.ProjectionReport, error)
	RebuildProjection(ctx context.Context, requestID uuid.UUID) (workflow.ProjectionReport, error)
}

// RequestHandler serves the request resource and its ledger.
type RequestHandler struct {
	requests requestService
	workflow workflowService
	log      *slog.Logger
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(requests requestService, wf workflowService, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{requests: requests, workflow: wf, log: logger.With("handler", "request")}
}

type createRequestBody struct {
	CompanyID   uuid.UUID  `json:"companyId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Type        *string    `json:"type"`
	Priority    *string    `json:"priority"`
	Department  string     `json:"department"`
	DueDate     *time.Time `json:"dueDate"`
	ActorID     *uuid.UUID `json:"actorId"`
}

type changeStatusBody struct {
	ToStatus        string     `json:"toStatus"`
	Message         *string    `json:"message"`
	ActorID         *uuid.UUID `json:"actorId"`
	VisibleToClient *bool      `json:"visibleToClient"`
}

type assignBody struct {
	AssigneeID uuid.UUID  `json:"assigneeId"`
	ActorID    *uuid.UUID `json:"actorId"`
}

type commentBody struct {
	Message         string     `json:"message"`
	ActorID         *uuid.UUID `json:"actorId"`
	VisibleToClient *bool      `json:"visibleToClient"`
}

type revisionBody struct {
	Message *string    `json:"message"`
	ActorID *uuid.UUID `json:"actorId"`
}

type dueDateBody struct {
	DueDate *time.Time `json:"dueDate"`
	ActorID *uuid.UUID `json:"actorId"`
}

type priorityBody struct {
	Priority string     `json:"priority"`
	ActorID  *uuid.UUID `json:"actorId"`
}

// Create handles POST /requests.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createRequestBody
	if err := decodeBody(r, &body); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	in := request.CreateInput{
		CompanyID:   body.CompanyID,
		Title:       body.Title,
		Description: body.Description,
		DueDate:     body.DueDate,
		ActorID:     body.ActorID,
	}
	if t := enumPtr[domain.RequestType](body.Type); t != nil {
		in.Type = *t
	}
	if p := enumPtr[domain.RequestPriority](body.Priority); p != nil {
		in.Priority = *p
	}
	if d := enumPtr[domain.Department](&body.Department); d != nil {
		in.Department = *d
	}

	req, err := h.requests.CreateRequest(r.Context(), in)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRequestResponse(req, companyNames(r.Context(), req.CompanyID)))
}

// Get handles GET /requests/{id}.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	req, err := h.requests.GetRequest(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestResponse(req, companyNames(r.Context(), req.CompanyID)))
}

// List handles GET /requests.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	in := request.ListInput{
		CompanyID:   q.optUUID("companyId"),
		Status:      enumPtr[domain.RequestStatus](q.optString("status")),
		Priority:    enumPtr[domain.RequestPriority](q.optString("priority")),
		Type:        enumPtr[domain.RequestType](q.optString("type")),
		Department:  enumPtr[domain.Department](q.optString("department")),
		DueBefore:   q.optTime("dueBefore"),
		CreatedFrom: q.optTime("createdFrom"),
		CreatedTo:   q.optTime("createdTo"),
		Limit:       q.optInt("limit"),
		Offset:      q.optInt("offset"),
	}
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	res, err := h.requests.ListRequests(r.Context(), in)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, requestListResponse{
		Items:      toRequestResponses(r.Context(), res.Requests),
		TotalCount: res.TotalCount,
		Limit:      res.Limit,
		Offset:     res.Offset,
	})
}

// ChangeStatus handles POST /requests/{id}/status.
func (h *RequestHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var body changeStatusBody
	h.recordEvent(w, r, &body, func(ctx context.Context, id uuid.UUID) (domain.RequestEvent, error) {
		in := workflow.ChangeStatusInput{
			RequestID:       id,
			Message:         body.Message,
			ActorID:         body.ActorID,
			VisibleToClient: body.VisibleToClient,
		}
		if s := enumPtr[domain.RequestStatus](&body.ToStatus); s != nil {
			in.ToStatus = *s
		}
		return h.workflow.ChangeStatus(ctx, in)
	})
}

// Assign handles POST /requests/{id}/assign.
func (h *RequestHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var body assignBody
	h.recordEvent(w, r, &body, func(ctx context.Context, id uuid.UUID) (domain.RequestEvent, error) {
		return h.workflow.Assign(ctx, workflow.AssignInput{
			RequestID:  id,
			AssigneeID: body.AssigneeID,
			ActorID:    body.ActorID,
		})
	})
}

// AddComment handles POST /requests/{id}/comments.
func (h *RequestHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var body commentBody
	h.recordEvent(w, r, &body, func(ctx context.Context, id uuid.UUID) (domain.RequestEvent, error) {
		return h.workflow.AddComment(ctx, workflow.AddCommentInput{
			RequestID:       id,
			Message:         body.Message,
			ActorID:         body.ActorID,
			VisibleToClient: body.VisibleToClient,
		})
	})
}

// AddRevision handles POST /requests/{id}/revisions.
func (h *RequestHandler) AddRevision(w http.ResponseWriter, r *http.Request) {
	var body revisionBody
	h.recordEvent(w, r, &body, func(ctx context.Context, id uuid.UUID) (domain.RequestEvent, error) {
		return h.workflow.AddRevision(ctx, workflow.AddRevisionInput{
			RequestID: id,
			Message:   body.Message,
			ActorID:   body.ActorID,
		})
	})
}

// ChangeDueDate handles POST /requests/{id}/due-date. A null dueDate clears it.
func (h *RequestHandler) ChangeDueDate(w http.ResponseWriter, r *http.Request) {
	var body dueDateBody
	h.recordEvent(w, r, &body, func(ctx context.Context, id uuid.UUID) (domain.RequestEvent, error) {
		return h.workflow.ChangeDueDate(ctx, workflow.ChangeDueDateInput{
			RequestID: id,
			DueDate:   body.DueDate,
			ActorID:   body.ActorID,
		})
	})
}

// ChangePriority handles POST /requests/{id}/priority.
func (h *RequestHandler) ChangePriority(w http.ResponseWriter, r *http.Request) {
	var body priorityBody
	h.recordEvent(w, r, &body, func(ctx context.Context, id uuid.UUID) (domain.RequestEvent, error) {
		in := workflow.ChangePriorityInput{RequestID: id, ActorID: body.ActorID}
		if p := enumPtr[domain.RequestPriority](&body.Priority); p != nil {
			in.Priority = *p
		}
		return h.workflow.ChangePriority(ctx, in)
	})
}

// recordEvent decodes body, then runs fn against the path request id and
// writes the resulting ledger entry as 201.
func (h *RequestHandler) recordEvent(
	w http.ResponseWriter,
	r *http.Request,
	body any,
	fn func(ctx context.Context, id uuid.UUID) (domain.RequestEvent, error),
) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if err := decodeBody(r, body); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	event, err := fn(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

// Events handles GET /requests/{id}/events.
func (h *RequestHandler) Events(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	q := newQueryParser(r)
	onlyVisible := q.optBool("onlyVisibleToClient")
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	// Clients never get the unfiltered ledger, whatever they ask for.
	client := auth.ActorRole(r.Context()).IsClient()
	if client {
		onlyVisible = true
	}

	events, err := h.workflow.ListEvents(r.Context(), id, onlyVisible)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	if client {
		events = domain.FilterVisibleToClient(events)
	}
	writeJSON(w, http.StatusOK, toEventResponses(events))
}

// Projection handles GET /requests/{id}/projection.
func (h *RequestHandler) Projection(w http.ResponseWriter, r *http.Request) {
	h.projection(w, r, h.workflow.VerifyProjection)
}

// RebuildProjection handles POST /requests/{id}/projection/rebuild.
func (h *RequestHandler) RebuildProjection(w http.ResponseWriter, r *http.Request) {
	h.projection(w, r, h.workflow.RebuildProjection)
}

func (h *RequestHandler) projection(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id uuid.UUID) (workflow.ProjectionReport, error),
) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	rep, err := fn(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectionResponse(r.Context(), rep))
}
