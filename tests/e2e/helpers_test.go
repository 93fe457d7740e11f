//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/reviso-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/reviso-backend/internal/app"
	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/config"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

const (
	jwtSecret = "e2e-secret-at-least-32-characters!!"
	jwtIssuer = "reviso-e2e"
)

// testServer is the full HTTP stack over a containerized database.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *auth.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := &config.Config{
		Auth: config.AuthConfig{JWTSecret: jwtSecret, JWTIssuer: jwtIssuer, AccessTokenTTL: 15 * time.Minute},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         600,
		},
		Workflow: config.WorkflowConfig{
			MaxTitleLength:   200,
			MaxMessageLength: 5000,
			DefaultListLimit: 20,
			MaxListLimit:     100,
		},
		Reports: config.ReportsConfig{MaxWindowDays: 366},
	}

	svc := app.NewServices(pool, cfg, logger)
	srv := httptest.NewServer(app.NewHandler(cfg, logger, pool, svc, nil))
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    auth.NewJWTManager(jwtSecret, jwtIssuer, 15*time.Minute),
	}
}

// caller is an authenticated principal for the test server.
type caller struct {
	ID    uuid.UUID
	token string
}

func (ts *testServer) login(t *testing.T, role domain.UserRole, companyID *uuid.UUID) caller {
	t.Helper()
	id := auth.Identity{UserID: uuid.New(), Role: role, CompanyID: companyID}
	token, err := ts.jwt.GenerateAccessToken(id)
	require.NoError(t, err)
	return caller{ID: id.UserID, token: token}
}

func (ts *testServer) admin(t *testing.T) caller {
	return ts.login(t, domain.UserRoleAgencyAdmin, nil)
}

func (ts *testServer) agent(t *testing.T) caller {
	return ts.login(t, domain.UserRoleAgencyUser, nil)
}

func (ts *testServer) client(t *testing.T, companyID uuid.UUID) caller {
	return ts.login(t, domain.UserRoleClientUser, &companyID)
}

// call sends body as JSON and returns the status and raw response.
func (ts *testServer) call(t *testing.T, c caller, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// mustCall asserts the status and decodes the response into T.
func mustCall[T any](t *testing.T, ts *testServer, c caller, method, path string, body any, wantStatus int) T {
	t.Helper()
	status, raw := ts.call(t, c, method, path, body)
	require.Equal(t, wantStatus, status, string(raw))

	var out T
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return out
}

// errorCode returns error.code of an error response.
func errorCode(t *testing.T, raw []byte) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return body.Error.Code
}

// Response shapes as a caller sees them.

type requestDTO struct {
	ID            uuid.UUID  `json:"id"`
	CompanyID     uuid.UUID  `json:"companyId"`
	CompanyName   string     `json:"companyName"`
	BriefingID    *uuid.UUID `json:"briefingId"`
	Title         string     `json:"title"`
	Type          string     `json:"type"`
	Priority      string     `json:"priority"`
	Department    string     `json:"department"`
	Status        string     `json:"status"`
	AssigneeID    *uuid.UUID `json:"assigneeId"`
	DueDate       *time.Time `json:"dueDate"`
	RevisionCount int        `json:"revisionCount"`
}

type eventDTO struct {
	ID              uuid.UUID  `json:"id"`
	RequestID       uuid.UUID  `json:"requestId"`
	ActorID         *uuid.UUID `json:"actorId"`
	EventType       string     `json:"eventType"`
	FromStatus      *string    `json:"fromStatus"`
	ToStatus        *string    `json:"toStatus"`
	Message         *string    `json:"message"`
	VisibleToClient bool       `json:"visibleToClient"`
	RevisionNumber  *int       `json:"revisionNumber"`
}

type briefingDTO struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"companyId"`
	CompanyName string    `json:"companyName"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
}

type listDTO struct {
	Items      []requestDTO `json:"items"`
	TotalCount int          `json:"totalCount"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

type projectionDTO struct {
	InSync  bool       `json:"inSync"`
	Drift   []string   `json:"drift"`
	Rebuilt bool       `json:"rebuilt"`
	Request requestDTO `json:"request"`
}

// createRequest creates a request directly as the agency.
func (ts *testServer) createRequest(t *testing.T, c caller, companyID uuid.UUID, title string) requestDTO {
	t.Helper()
	return mustCall[requestDTO](t, ts, c, http.MethodPost, "/requests", map[string]any{
		"companyId":  companyID,
		"title":      title,
		"department": "DESIGN",
	}, http.StatusCreated)
}

// move walks a request through statuses, failing on the first rejected edge.
func (ts *testServer) move(t *testing.T, c caller, requestID uuid.UUID, statuses ...domain.RequestStatus) {
	t.Helper()
	for _, s := range statuses {
		mustCall[eventDTO](t, ts, c, http.MethodPost, "/requests/"+requestID.String()+"/status",
			map[string]any{"toStatus": s}, http.StatusCreated)
	}
}

func (ts *testServer) events(t *testing.T, c caller, requestID uuid.UUID, onlyVisible bool) []eventDTO {
	t.Helper()
	path := "/requests/" + requestID.String() + "/events"
	if onlyVisible {
		path += "?onlyVisibleToClient=true"
	}
	return mustCall[[]eventDTO](t, ts, c, http.MethodGet, path, nil, http.StatusOK)
}
