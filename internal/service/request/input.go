package request

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// CreateInput holds the fields of a directly created request.
type CreateInput struct {
	CompanyID   uuid.UUID
	Title       string
	Description *string
	Type        domain.RequestType
	Priority    domain.RequestPriority
	Department  domain.Department
	DueDate     *time.Time
	ActorID     *uuid.UUID
}

func (i CreateInput) validate(maxTitle int) error {
	var errs []domain.FieldError

	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}
	title := domain.NormalizeTitle(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(title) > maxTitle {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.Type != "" && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown type"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}
	if !i.Department.IsValid() {
		errs = append(errs, domain.FieldError{Field: "department", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput narrows a request listing. Limit 0 means the configured default.
type ListInput struct {
	CompanyID   *uuid.UUID
	Status      *domain.RequestStatus
	Priority    *domain.RequestPriority
	Type        *domain.RequestType
	Department  *domain.Department
	DueBefore   *time.Time
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Limit       int
	Offset      int
}

func (i ListInput) validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "unknown priority"})
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown type"})
	}
	if i.Department != nil && !i.Department.IsValid() {
		errs = append(errs, domain.FieldError{Field: "department", Message: "unknown department"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if i.CreatedFrom != nil && i.CreatedTo != nil && !i.CreatedFrom.Before(*i.CreatedTo) {
		errs = append(errs, domain.FieldError{Field: "created_from", Message: "must be before created_to"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListResult is one page of requests.
type ListResult struct {
	Requests   []domain.Request
	TotalCount int
	Limit      int
	Offset     int
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
