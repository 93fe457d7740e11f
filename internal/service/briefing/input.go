package briefing

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// CreateInput submits a briefing. CompanyID is ignored for client callers,
// whose own company is used.
type CreateInput struct {
	CompanyID   uuid.UUID
	Title       string
	Description *string
	ActorID     *uuid.UUID
}

func (i CreateInput) validate(maxTitle int) error {
	var errs []domain.FieldError
	title := domain.NormalizeTitle(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > maxTitle {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ConvertInput turns a pending briefing into a request of Department.
type ConvertInput struct {
	BriefingID uuid.UUID
	Department domain.Department
	ActorID    *uuid.UUID
}

func (i ConvertInput) validate() error {
	var errs []domain.FieldError
	if i.BriefingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "briefing_id", Message: "required"})
	}
	if !i.Department.IsValid() {
		errs = append(errs, domain.FieldError{Field: "department", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RejectInput closes a pending briefing without creating a request.
type RejectInput struct {
	BriefingID uuid.UUID
	ActorID    *uuid.UUID
}

func (i RejectInput) validate() error {
	if i.BriefingID == uuid.Nil {
		return domain.NewValidationError("briefing_id", "required")
	}
	return nil
}

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
