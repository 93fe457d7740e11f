// Package app wires configuration, storage, services and transport into a
// running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/reviso-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reviso-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/reviso-backend/internal/adapter/postgres/briefing"
	"github.com/heartmarshall/reviso-backend/internal/adapter/postgres/company"
	"github.com/heartmarshall/reviso-backend/internal/adapter/postgres/ledger"
	"github.com/heartmarshall/reviso-backend/internal/adapter/postgres/report"
	"github.com/heartmarshall/reviso-backend/internal/adapter/postgres/request"
	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/config"
	briefingsvc "github.com/heartmarshall/reviso-backend/internal/service/briefing"
	reportsvc "github.com/heartmarshall/reviso-backend/internal/service/report"
	requestsvc "github.com/heartmarshall/reviso-backend/internal/service/request"
	"github.com/heartmarshall/reviso-backend/internal/service/workflow"
	"github.com/heartmarshall/reviso-backend/internal/transport/dataloader"
	"github.com/heartmarshall/reviso-backend/internal/transport/middleware"
	"github.com/heartmarshall/reviso-backend/internal/transport/rest"
)

// Services is the service layer over one pool. The server and revisoctl
// share it.
type Services struct {
	Requests  *requestsvc.Service
	Workflow  *workflow.Service
	Briefings *briefingsvc.Service
	Reports   *reportsvc.Service

	Companies *company.Repo
	RequestDB *request.Repo
}

// NewServices builds repositories and services over pool.
func NewServices(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) *Services {
	tx := postgres.NewTxManager(pool)

	requests := request.New(pool)
	events := ledger.New(pool, tx)
	auditLog := audit.New(pool)
	briefings := briefing.New(pool)

	return &Services{
		Requests:  requestsvc.NewService(logger, requests, events, tx, cfg.Workflow),
		Workflow:  workflow.NewService(logger, requests, events, auditLog, tx, cfg.Workflow),
		Briefings: briefingsvc.NewService(logger, briefings, requests, events, auditLog, tx, cfg.Workflow),
		Reports:   reportsvc.NewService(logger, report.New(pool), cfg.Reports),
		Companies: company.New(pool),
		RequestDB: requests,
	}
}

// NewHandler builds the HTTP surface over svc.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	svc *Services,
	limiter *middleware.RateLimiter,
) http.Handler {
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		Tokens:      tokens,
		RateLimiter: limiter,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		Loaders:     dataloader.Middleware(svc.Companies),
		Health:      rest.NewHealthHandler(BuildVersion(), map[string]rest.Pinger{"database": pool}),
		Requests:    rest.NewRequestHandler(svc.Requests, svc.Workflow, logger),
		Briefings:   rest.NewBriefingHandler(svc.Briefings, logger),
		Reports:     rest.NewReportHandler(svc.Reports, logger),
	})
}

// Run serves HTTP until ctx is canceled, then drains in-flight requests
// within the configured shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting reviso",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	svc := NewServices(pool, cfg, logger)

	srv := newHTTPServer(ctx, cfg.Server, NewHandler(cfg, logger, pool, svc, limiter))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("reviso stopped")
	return nil
}

// newHTTPServer builds the server. Request contexts keep ctx's values but not
// its cancellation: shutdown drains in-flight requests instead of aborting them.
func newHTTPServer(ctx context.Context, cfg config.ServerConfig, h http.Handler) *http.Server {
	base := context.WithoutCancel(ctx)
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return base },
	}
}
