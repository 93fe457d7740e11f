package workflow

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// ChangeStatusInput moves a request to ToStatus. Status changes are hidden
// from clients unless VisibleToClient says otherwise.
type ChangeStatusInput struct {
	RequestID       uuid.UUID
	ToStatus        domain.RequestStatus
	ActorID         *uuid.UUID
	Message         *string
	VisibleToClient *bool
}

func (i ChangeStatusInput) validate(maxMessage int) error {
	var errs []domain.FieldError
	errs = requireID(errs, "request_id", i.RequestID)
	if !i.ToStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "to_status", Message: "unknown status"})
	}
	errs = optionalMessage(errs, i.Message, maxMessage)
	return toError(errs)
}

// AssignInput hands a request to an agency user.
type AssignInput struct {
	RequestID  uuid.UUID
	AssigneeID uuid.UUID
	ActorID    *uuid.UUID
}

func (i AssignInput) validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "request_id", i.RequestID)
	errs = requireID(errs, "assignee_id", i.AssigneeID)
	return toError(errs)
}

// AddCommentInput records a comment. VisibleToClient overrides the default
// visibility for agency authors; client authors always write visible comments.
type AddCommentInput struct {
	RequestID       uuid.UUID
	Message         string
	ActorID         *uuid.UUID
	VisibleToClient *bool
}

func (i AddCommentInput) validate(maxMessage int) error {
	var errs []domain.FieldError
	errs = requireID(errs, "request_id", i.RequestID)
	msg := strings.TrimSpace(i.Message)
	if msg == "" {
		errs = append(errs, domain.FieldError{Field: "message", Message: "required"})
	}
	errs = optionalMessage(errs, &msg, maxMessage)
	return toError(errs)
}

// AddRevisionInput records a new revision of the deliverable.
type AddRevisionInput struct {
	RequestID uuid.UUID
	Message   *string
	ActorID   *uuid.UUID
}

func (i AddRevisionInput) validate(maxMessage int) error {
	var errs []domain.FieldError
	errs = requireID(errs, "request_id", i.RequestID)
	errs = optionalMessage(errs, i.Message, maxMessage)
	return toError(errs)
}

// ChangeDueDateInput sets or clears (nil DueDate) the due date.
type ChangeDueDateInput struct {
	RequestID uuid.UUID
	DueDate   *time.Time
	ActorID   *uuid.UUID
}

func (i ChangeDueDateInput) validate() error {
	return toError(requireID(nil, "request_id", i.RequestID))
}

// ChangePriorityInput sets the priority.
type ChangePriorityInput struct {
	RequestID uuid.UUID
	Priority  domain.RequestPriority
	ActorID   *uuid.UUID
}

func (i ChangePriorityInput) validate() error {
	var errs []domain.FieldError
	errs = requireID(errs, "request_id", i.RequestID)
	if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}
	return toError(errs)
}

func requireID(errs []domain.FieldError, field string, id uuid.UUID) []domain.FieldError {
	if id == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	return errs
}

func optionalMessage(errs []domain.FieldError, msg *string, max int) []domain.FieldError {
	if msg != nil && utf8.RuneCountInString(*msg) > max {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
	}
	return errs
}

func toError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
