// Command revisoctl is the operator CLI: schema migrations, ledger replay,
// reports and development tokens.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/reviso-backend/internal/adapter/postgres"
	"github.com/heartmarshall/reviso-backend/internal/app"
	"github.com/heartmarshall/reviso-backend/internal/config"
)

// env is what every subcommand works with once config is loaded.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	json   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:           "revisoctl",
		Short:         "Operate the reviso request lifecycle engine",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = app.NewLogger(cfg.Log)
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&e.json, "json", false, "output JSON")

	root.AddCommand(
		newMigrateCmd(e),
		newReplayCmd(e),
		newReportCmd(e),
		newTokenCmd(e),
	)
	return root
}

// withPool opens the database for the duration of fn.
func (e *env) withPool(ctx context.Context, fn func(pool *pgxpool.Pool) error) error {
	pool, err := postgres.NewPool(ctx, e.cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()
	return fn(pool)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
