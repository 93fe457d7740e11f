package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/domain"
	"github.com/heartmarshall/reviso-backend/internal/service/briefing"
)

type briefingService interface {
	CreateBriefing(ctx context.Context, in briefing.CreateInput) (domain.Briefing, error)
	GetBriefing(ctx context.Context, id uuid.UUID) (domain.Briefing, error)
	ListBriefings(ctx context.Context, filter domain.BriefingFilter) ([]domain.Briefing, error)
	Convert(ctx context.Context, in briefing.ConvertInput) (domain.Request, error)
	Reject(ctx context.Context, in briefing.RejectInput) (domain.Briefing, error)
	History(ctx context.Context, id uuid.UUID) ([]domain.AuditRecord, error)
}

// BriefingHandler serves briefing triage.
type BriefingHandler struct {
	svc briefingService
	log *slog.Logger
}

// NewBriefingHandler creates a BriefingHandler.
func NewBriefingHandler(svc briefingService, logger *slog.Logger) *BriefingHandler {
	return &BriefingHandler{svc: svc, log: logger.With("handler", "briefing")}
}

type createBriefingBody struct {
	CompanyID   uuid.UUID  `json:"companyId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	ActorID     *uuid.UUID `json:"actorId"`
}

type convertBody struct {
	Department string     `json:"department"`
	ActorID    *uuid.UUID `json:"actorId"`
}

type rejectBody struct {
	ActorID *uuid.UUID `json:"actorId"`
}

// Create handles POST /briefings.
func (h *BriefingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createBriefingBody
	if err := decodeBody(r, &body); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	b, err := h.svc.CreateBriefing(r.Context(), briefing.CreateInput{
		CompanyID:   body.CompanyID,
		Title:       body.Title,
		Description: body.Description,
		ActorID:     body.ActorID,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBriefingResponse(b, companyNames(r.Context(), b.CompanyID)))
}

// List handles GET /briefings.
func (h *BriefingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	filter := domain.BriefingFilter{
		CompanyID: q.optUUID("companyId"),
		Status:    enumPtr[domain.BriefingStatus](q.optString("status")),
	}
	if err := q.err(); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	briefings, err := h.svc.ListBriefings(r.Context(), filter)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	ids := make([]uuid.UUID, 0, len(briefings))
	for _, b := range briefings {
		ids = append(ids, b.CompanyID)
	}
	names := companyNames(r.Context(), ids...)

	out := make([]briefingResponse, 0, len(briefings))
	for _, b := range briefings {
		out = append(out, toBriefingResponse(b, names))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /briefings/{id}.
func (h *BriefingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	b, err := h.svc.GetBriefing(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBriefingResponse(b, companyNames(r.Context(), b.CompanyID)))
}

// Convert handles POST /briefings/{id}/convert and returns the new request.
func (h *BriefingHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var body convertBody
	if err := decodeBody(r, &body); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	in := briefing.ConvertInput{BriefingID: id, ActorID: body.ActorID}
	if d := enumPtr[domain.Department](&body.Department); d != nil {
		in.Department = *d
	}

	req, err := h.svc.Convert(r.Context(), in)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRequestResponse(req, companyNames(r.Context(), req.CompanyID)))
}

// Reject handles PATCH /briefings/{id}/reject.
func (h *BriefingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	var body rejectBody
	if err := decodeBody(r, &body); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	if _, err := h.svc.Reject(r.Context(), briefing.RejectInput{BriefingID: id, ActorID: body.ActorID}); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /briefings/{id}/history.
func (h *BriefingHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	records, err := h.svc.History(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditResponses(records))
}
