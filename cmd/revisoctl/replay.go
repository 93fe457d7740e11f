package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/reviso-backend/internal/app"
	"github.com/heartmarshall/reviso-backend/internal/service/workflow"
)

// replayRow is one request's outcome.
type replayRow struct {
	RequestID uuid.UUID `json:"requestId"`
	Events    int       `json:"events"`
	Drift     []string  `json:"drift"`
	Rebuilt   bool      `json:"rebuilt"`
	Error     string    `json:"error,omitempty"`
}

type replaySummary struct {
	Checked int         `json:"checked"`
	Drifted int         `json:"drifted"`
	Rebuilt int         `json:"rebuilt"`
	Failed  int         `json:"failed"`
	Rows    []replayRow `json:"rows"`
}

type projectionChecker func(ctx context.Context, id uuid.UUID) (workflow.ProjectionReport, error)

func newReplayCmd(e *env) *cobra.Command {
	var (
		fix       bool
		requestID string
		before    string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay request ledgers and compare them with the materialized rows",
		Long: `replay folds each request's event ledger and reports fields whose
materialized value differs. With --fix the rows are rewritten from the ledger
and every rewrite is recorded in the audit trail.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cutoff := time.Now().UTC()
			if before != "" {
				t, err := time.Parse(time.RFC3339, before)
				if err != nil {
					return fmt.Errorf("--before: %w", err)
				}
				cutoff = t
			}

			return e.withPool(cmd.Context(), func(pool *pgxpool.Pool) error {
				svc := app.NewServices(pool, e.cfg, e.logger)

				var ids []uuid.UUID
				if requestID != "" {
					id, err := uuid.Parse(requestID)
					if err != nil {
						return fmt.Errorf("--request: %w", err)
					}
					ids = []uuid.UUID{id}
				} else {
					listed, err := svc.RequestDB.ListIDs(cmd.Context(), cutoff)
					if err != nil {
						return err
					}
					ids = listed
				}

				check := projectionChecker(svc.Workflow.VerifyProjection)
				if fix {
					check = svc.Workflow.RebuildProjection
				}

				summary := runReplay(cmd.Context(), e.logger, ids, check)
				if !all {
					summary.Rows = onlyProblems(summary.Rows)
				}
				if e.json {
					if err := printJSON(cmd.OutOrStdout(), summary); err != nil {
						return err
					}
				} else {
					renderReplay(cmd.OutOrStdout(), summary)
				}

				if summary.Failed > 0 {
					return fmt.Errorf("%d ledgers could not be replayed", summary.Failed)
				}
				if !fix && summary.Drifted > 0 {
					return fmt.Errorf("%d requests drifted; rerun with --fix", summary.Drifted)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "rewrite drifted rows from their ledgers")
	cmd.Flags().StringVar(&requestID, "request", "", "replay a single request id")
	cmd.Flags().StringVar(&before, "before", "", "only requests created before this RFC 3339 time")
	cmd.Flags().BoolVar(&all, "all", false, "list in-sync requests too")
	return cmd
}

func runReplay(ctx context.Context, logger *slog.Logger, ids []uuid.UUID, check projectionChecker) replaySummary {
	summary := replaySummary{Rows: make([]replayRow, 0, len(ids))}
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		summary.Checked++

		rep, err := check(ctx, id)
		if err != nil {
			logger.Error("replay failed", slog.String("request_id", id.String()), slog.String("error", err.Error()))
			summary.Failed++
			summary.Rows = append(summary.Rows, replayRow{RequestID: id, Drift: []string{}, Error: err.Error()})
			continue
		}

		row := replayRow{
			RequestID: id,
			Events:    rep.Projection.EventCount,
			Drift:     rep.Drift,
			Rebuilt:   rep.Rebuilt,
		}
		if row.Drift == nil {
			row.Drift = []string{}
		}
		if !rep.InSync() {
			summary.Drifted++
		}
		if rep.Rebuilt {
			summary.Rebuilt++
		}
		summary.Rows = append(summary.Rows, row)
	}
	return summary
}

func onlyProblems(rows []replayRow) []replayRow {
	out := rows[:0]
	for _, r := range rows {
		if len(r.Drift) > 0 || r.Error != "" {
			out = append(out, r)
		}
	}
	return out
}

func renderReplay(w io.Writer, s replaySummary) {
	if len(s.Rows) > 0 {
		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.AppendHeader(table.Row{"Request", "Events", "Drift", "Rebuilt", "Error"})
		for _, r := range s.Rows {
			tw.AppendRow(table.Row{r.RequestID, r.Events, strings.Join(r.Drift, ","), r.Rebuilt, r.Error})
		}
		tw.Render()
	}
	fmt.Fprintf(w, "checked %d, drifted %d, rebuilt %d, failed %d\n", s.Checked, s.Drifted, s.Rebuilt, s.Failed)
}
