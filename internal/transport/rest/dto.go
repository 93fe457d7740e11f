package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/domain"
	"github.com/heartmarshall/reviso-backend/internal/service/workflow"
	"github.com/heartmarshall/reviso-backend/internal/transport/dataloader"
)

type requestResponse struct {
	ID            uuid.UUID  `json:"id"`
	CompanyID     uuid.UUID  `json:"companyId"`
	CompanyName   string     `json:"companyName,omitempty"`
	BriefingID    *uuid.UUID `json:"briefingId,omitempty"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	Type          string     `json:"type"`
	Priority      string     `json:"priority"`
	Department    string     `json:"department"`
	Status        string     `json:"status"`
	AssigneeID    *uuid.UUID `json:"assigneeId,omitempty"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	RevisionCount int        `json:"revisionCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type requestListResponse struct {
	Items      []requestResponse `json:"items"`
	TotalCount int               `json:"totalCount"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}

type eventResponse struct {
	ID              uuid.UUID  `json:"id"`
	RequestID       uuid.UUID  `json:"requestId"`
	ActorID         *uuid.UUID `json:"actorId,omitempty"`
	EventType       string     `json:"eventType"`
	FromStatus      *string    `json:"fromStatus,omitempty"`
	ToStatus        *string    `json:"toStatus,omitempty"`
	Message         *string    `json:"message,omitempty"`
	VisibleToClient bool       `json:"visibleToClient"`
	RevisionNumber  *int       `json:"revisionNumber,omitempty"`
	AssigneeID      *uuid.UUID `json:"assigneeId,omitempty"`
	DueDate         *time.Time `json:"dueDate,omitempty"`
	Priority        *string    `json:"priority,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type briefingResponse struct {
	ID              uuid.UUID `json:"id"`
	CompanyID       uuid.UUID `json:"companyId"`
	CompanyName     string    `json:"companyName,omitempty"`
	CreatedByUserID uuid.UUID `json:"createdByUserId"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type auditResponse struct {
	ID         uuid.UUID      `json:"id"`
	UserID     *uuid.UUID     `json:"userId,omitempty"`
	EntityType string         `json:"entityType"`
	EntityID   uuid.UUID      `json:"entityId"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type projectionResponse struct {
	RequestID uuid.UUID       `json:"requestId"`
	InSync    bool            `json:"inSync"`
	Drift     []string        `json:"drift"`
	Rebuilt   bool            `json:"rebuilt"`
	Replayed  replayedFields  `json:"replayed"`
	Request   requestResponse `json:"request"`
}

type replayedFields struct {
	Status        string     `json:"status"`
	AssigneeID    *uuid.UUID `json:"assigneeId,omitempty"`
	RevisionCount int        `json:"revisionCount"`
	Priority      string     `json:"priority"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	EventCount    int        `json:"eventCount"`
}

type overdueResponse struct {
	Total int `json:"total"`
}

type cycleTimeResponse struct {
	AvgDays    int64   `json:"avgDays"`
	AvgHours   int64   `json:"avgHours"`
	AvgSeconds float64 `json:"avgSeconds"`
}

type reworkResponse struct {
	ReworkCount      int     `json:"reworkCount"`
	TotalCount       int     `json:"totalCount"`
	ReworkPercentage float64 `json:"reworkPercentage"`
}

type statusCountResponse struct {
	Status string `json:"status"`
	Total  int    `json:"total"`
}

// companyNames resolves names through the request's loaders. Outside the
// loader middleware names are simply omitted.
func companyNames(ctx context.Context, ids ...uuid.UUID) map[uuid.UUID]string {
	loaders := dataloader.FromContext(ctx)
	if loaders == nil || len(ids) == 0 {
		return nil
	}
	return loaders.CompanyNames(ctx, ids)
}

func toRequestResponse(req domain.Request, names map[uuid.UUID]string) requestResponse {
	return requestResponse{
		ID:            req.ID,
		CompanyID:     req.CompanyID,
		CompanyName:   names[req.CompanyID],
		BriefingID:    req.BriefingID,
		Title:         req.Title,
		Description:   req.Description,
		Type:          string(req.Type),
		Priority:      string(req.Priority),
		Department:    string(req.Department),
		Status:        string(req.Status),
		AssigneeID:    req.AssigneeID,
		DueDate:       req.DueDate,
		RevisionCount: req.RevisionCount,
		CreatedAt:     req.CreatedAt,
		UpdatedAt:     req.UpdatedAt,
	}
}

func toRequestResponses(ctx context.Context, reqs []domain.Request) []requestResponse {
	ids := make([]uuid.UUID, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.CompanyID)
	}
	names := companyNames(ctx, ids...)

	out := make([]requestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, toRequestResponse(r, names))
	}
	return out
}

func toEventResponse(e domain.RequestEvent) eventResponse {
	return eventResponse{
		ID:              e.ID,
		RequestID:       e.RequestID,
		ActorID:         e.ActorID,
		EventType:       string(e.EventType),
		FromStatus:      (*string)(e.FromStatus),
		ToStatus:        (*string)(e.ToStatus),
		Message:         e.Message,
		VisibleToClient: e.VisibleToClient,
		RevisionNumber:  e.RevisionNumber,
		AssigneeID:      e.AssigneeID,
		DueDate:         e.DueDate,
		Priority:        (*string)(e.Priority),
		CreatedAt:       e.CreatedAt,
	}
}

func toEventResponses(events []domain.RequestEvent) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}

func toBriefingResponse(b domain.Briefing, names map[uuid.UUID]string) briefingResponse {
	return briefingResponse{
		ID:              b.ID,
		CompanyID:       b.CompanyID,
		CompanyName:     names[b.CompanyID],
		CreatedByUserID: b.CreatedByUserID,
		Title:           b.Title,
		Description:     b.Description,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
	}
}

func toAuditResponses(records []domain.AuditRecord) []auditResponse {
	out := make([]auditResponse, 0, len(records))
	for _, r := range records {
		out = append(out, auditResponse{
			ID:         r.ID,
			UserID:     r.UserID,
			EntityType: string(r.EntityType),
			EntityID:   r.EntityID,
			Action:     string(r.Action),
			Changes:    r.Changes,
			CreatedAt:  r.CreatedAt,
		})
	}
	return out
}

func toProjectionResponse(ctx context.Context, rep workflow.ProjectionReport) projectionResponse {
	drift := rep.Drift
	if drift == nil {
		drift = []string{}
	}
	p := rep.Projection
	return projectionResponse{
		RequestID: rep.Request.ID,
		InSync:    rep.InSync(),
		Drift:     drift,
		Rebuilt:   rep.Rebuilt,
		Replayed: replayedFields{
			Status:        string(p.Status),
			AssigneeID:    p.AssigneeID,
			RevisionCount: p.RevisionCount,
			Priority:      string(p.Priority),
			DueDate:       p.DueDate,
			EventCount:    p.EventCount,
		},
		Request: toRequestResponse(rep.Request, companyNames(ctx, rep.Request.CompanyID)),
	}
}
