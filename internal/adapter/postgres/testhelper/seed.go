package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Now returns the current time at the precision PostgreSQL stores.
func Now() time.Time {
	return domain.Now()
}

// SeedCompany inserts a company with a unique name.
func SeedCompany(t *testing.T, pool *pgxpool.Pool) domain.Company {
	t.Helper()

	company := domain.Company{
		ID:        uuid.New(),
		Name:      "Company " + uniqueSuffix(),
		CreatedAt: Now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO companies (id, name, created_at) VALUES ($1, $2, $3)`,
		company.ID, company.Name, company.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany: %v", err)
	}

	return company
}

// SeedBriefing inserts a PENDING briefing for the company.
func SeedBriefing(t *testing.T, pool *pgxpool.Pool, companyID uuid.UUID) domain.Briefing {
	t.Helper()

	desc := "Briefing description " + uniqueSuffix()
	briefing := domain.Briefing{
		ID:              uuid.New(),
		CompanyID:       companyID,
		CreatedByUserID: uuid.New(),
		Title:           "Briefing " + uniqueSuffix(),
		Description:     &desc,
		Status:          domain.BriefingStatusPending,
		CreatedAt:       Now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO briefings (id, company_id, created_by_user_id, title, description, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		briefing.ID, briefing.CompanyID, briefing.CreatedByUserID, briefing.Title,
		briefing.Description, string(briefing.Status), briefing.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBriefing: %v", err)
	}

	return briefing
}

// SeedRequest inserts a NEW request together with its genesis event, both
// stamped with createdAt.
func SeedRequest(t *testing.T, pool *pgxpool.Pool, companyID uuid.UUID, createdAt time.Time) domain.Request {
	t.Helper()
	ctx := context.Background()

	req := domain.Request{
		ID:         uuid.New(),
		CompanyID:  companyID,
		Title:      "Request " + uniqueSuffix(),
		Type:       domain.RequestTypeOther,
		Priority:   domain.RequestPriorityMedium,
		Department: domain.DepartmentDesign,
		Status:     domain.RequestStatusNew,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO requests (id, company_id, title, type, priority, department, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		req.ID, req.CompanyID, req.Title, string(req.Type), string(req.Priority),
		string(req.Department), string(req.Status), req.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest insert request: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO request_events (id, request_id, event_type, to_status, visible_to_client, priority, created_at)
		 VALUES ($1, $2, 'CREATED', 'NEW', TRUE, $3, $4)`,
		uuid.New(), req.ID, string(req.Priority), createdAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest insert genesis: %v", err)
	}

	return req
}
