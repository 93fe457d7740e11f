package request_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/adapter/postgres/request"
	"github.com/heartmarshall/reviso-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

func newRequest(companyID uuid.UUID, at time.Time) domain.Request {
	return domain.Request{
		ID:         uuid.New(),
		CompanyID:  companyID,
		Title:      "Landing page",
		Type:       domain.RequestTypeWebsite,
		Priority:   domain.RequestPriorityHigh,
		Department: domain.DepartmentDev,
		Status:     domain.RequestStatusNew,
		CreatedAt:  at,
		UpdatedAt:  at,
	}
}

func TestRepo_CreateAndGet(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := request.New(pool)
	ctx := context.Background()
	company := testhelper.SeedCompany(t, pool)
	b := testhelper.SeedBriefing(t, pool, company.ID)

	in := newRequest(company.ID, testhelper.Now())
	in.BriefingID = &b.ID
	due := in.CreatedAt.Add(48 * time.Hour)
	in.DueDate = &due

	created, err := repo.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != in.Title || got.Type != in.Type || got.Priority != in.Priority ||
		got.Department != in.Department || got.Status != domain.RequestStatusNew {
		t.Errorf("GetByID = %+v, want %+v", got, in)
	}
	if got.BriefingID == nil || *got.BriefingID != b.ID {
		t.Errorf("briefing_id = %v, want %s", got.BriefingID, b.ID)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("due_date = %v, want %v", got.DueDate, due)
	}
	if got.AssigneeID != nil || got.RevisionCount != 0 {
		t.Errorf("fresh request has assignee %v and %d revisions", got.AssigneeID, got.RevisionCount)
	}
}

func TestRepo_Create_BriefingConvertsOnce(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := request.New(pool)
	ctx := context.Background()
	company := testhelper.SeedCompany(t, pool)
	b := testhelper.SeedBriefing(t, pool, company.ID)

	first := newRequest(company.ID, testhelper.Now())
	first.BriefingID = &b.ID
	if _, err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	second := newRequest(company.ID, testhelper.Now())
	second.BriefingID = &b.ID
	if _, err := repo.Create(ctx, second); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for second request of one briefing, got %v", err)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	pool := testhelper.SetupTestDB(t)

	_, err := request.New(pool).GetByID(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_List_FiltersAndPages(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := request.New(pool)
	ctx := context.Background()
	company := testhelper.SeedCompany(t, pool)
	base := testhelper.Now()

	var ids []uuid.UUID
	for i := range 3 {
		r := newRequest(company.ID, base.Add(time.Duration(i)*time.Minute))
		if i == 2 {
			r.Priority = domain.RequestPriorityLow
		}
		if _, err := repo.Create(ctx, r); err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, r.ID)
	}

	all, total, err := repo.List(ctx, domain.RequestFilter{CompanyID: &company.ID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("List = %d rows, total %d; want 3", len(all), total)
	}
	if all[0].ID != ids[2] {
		t.Errorf("List not newest first: got %s first", all[0].ID)
	}

	low := domain.RequestPriorityLow
	filtered, total, err := repo.List(ctx, domain.RequestFilter{CompanyID: &company.ID, Priority: &low})
	if err != nil {
		t.Fatalf("List priority: %v", err)
	}
	if total != 1 || len(filtered) != 1 || filtered[0].ID != ids[2] {
		t.Errorf("priority filter = %+v (total %d)", filtered, total)
	}

	from := base.Add(30 * time.Second)
	page, total, err := repo.List(ctx, domain.RequestFilter{CompanyID: &company.ID, CreatedFrom: &from, Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("List page: %v", err)
	}
	if total != 2 || len(page) != 1 || page[0].ID != ids[1] {
		t.Errorf("page = %+v (total %d), want %s of 2", page, total, ids[1])
	}
}

func TestRepo_ApplyProjection(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := request.New(pool)
	ctx := context.Background()
	company := testhelper.SeedCompany(t, pool)
	req := testhelper.SeedRequest(t, pool, company.ID, testhelper.Now())

	assignee := uuid.New()
	p := domain.Projection{
		RequestID:     req.ID,
		Status:        domain.RequestStatusInReview,
		AssigneeID:    &assignee,
		RevisionCount: 2,
		Priority:      domain.RequestPriorityUrgent,
		UpdatedAt:     req.CreatedAt.Add(time.Hour),
	}
	got, err := repo.ApplyProjection(ctx, p)
	if err != nil {
		t.Fatalf("ApplyProjection: %v", err)
	}
	if drift := p.Drift(got); len(drift) != 0 {
		t.Errorf("row differs from projection in %v", drift)
	}
	if !got.UpdatedAt.Equal(p.UpdatedAt) {
		t.Errorf("updated_at = %v, want %v", got.UpdatedAt, p.UpdatedAt)
	}

	p.RequestID = uuid.New()
	if _, err := repo.ApplyProjection(ctx, p); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_ListIDs(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := request.New(pool)
	company := testhelper.SeedCompany(t, pool)
	req := testhelper.SeedRequest(t, pool, company.ID, time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC))

	ids, err := repo.ListIDs(context.Background(), time.Date(1980, 1, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	found := false
	for _, id := range ids {
		found = found || id == req.ID
	}
	if !found {
		t.Fatalf("ListIDs did not include %s", req.ID)
	}
}
