package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/config"
	"github.com/heartmarshall/reviso-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Identity, error)
}

// RouterDeps carries everything the HTTP surface is built from.
type RouterDeps struct {
	Logger      *slog.Logger
	Tokens      tokenValidator
	RateLimiter *middleware.RateLimiter
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig

	// Loaders wraps each API request with fresh batch loaders. Optional.
	Loaders func(http.Handler) http.Handler

	Health    *HealthHandler
	Requests  *RequestHandler
	Briefings *BriefingHandler
	Reports   *ReportHandler
}

// NewRouter assembles the middleware stack and routes.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.CORS(d.CORS))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(d.Tokens))
		if d.RateLimiter != nil {
			r.Use(d.RateLimiter.Limit(d.RateLimit.RequestsPerMinute))
		}
		r.Use(middleware.RequireAuth)
		if d.Loaders != nil {
			r.Use(d.Loaders)
		}

		r.Route("/requests", func(r chi.Router) {
			r.Post("/", d.Requests.Create)
			r.Get("/", d.Requests.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", d.Requests.Get)
				r.Post("/status", d.Requests.ChangeStatus)
				r.Post("/assign", d.Requests.Assign)
				r.Post("/comments", d.Requests.AddComment)
				r.Post("/revisions", d.Requests.AddRevision)
				r.Post("/due-date", d.Requests.ChangeDueDate)
				r.Post("/priority", d.Requests.ChangePriority)
				r.Get("/events", d.Requests.Events)
				r.Get("/projection", d.Requests.Projection)
				r.Post("/projection/rebuild", d.Requests.RebuildProjection)
			})
		})

		r.Route("/briefings", func(r chi.Router) {
			r.Post("/", d.Briefings.Create)
			r.Get("/", d.Briefings.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", d.Briefings.Get)
				r.Post("/convert", d.Briefings.Convert)
				r.Patch("/reject", d.Briefings.Reject)
				r.Get("/history", d.Briefings.History)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(middleware.AgencyOnly)
			r.Get("/overdue", d.Reports.Overdue)
			r.Get("/avg-cycle-time", d.Reports.AvgCycleTime)
			r.Get("/rework-metrics", d.Reports.ReworkMetrics)
			r.Get("/requests-by-status", d.Reports.RequestsByStatus)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	return r
}
