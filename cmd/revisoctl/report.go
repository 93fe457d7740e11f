package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/reviso-backend/internal/app"
	"github.com/heartmarshall/reviso-backend/internal/domain"
	"github.com/heartmarshall/reviso-backend/internal/service/report"
)

// reportOutput mirrors the four HTTP report endpoints in one document.
type reportOutput struct {
	From             time.Time            `json:"from"`
	To               time.Time            `json:"to"`
	At               time.Time            `json:"at"`
	Overdue          int                  `json:"overdue"`
	CycleTime        domain.CycleTime     `json:"cycleTime"`
	Rework           domain.ReworkStats   `json:"rework"`
	ByStatus         []domain.StatusCount `json:"byStatus"`
	ReworkPercentage float64              `json:"reworkPercentage"`
}

func newReportCmd(e *env) *cobra.Command {
	var (
		from string
		to   string
		days int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print lifecycle metrics for a window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			window, err := reportWindow(from, to, days, time.Now().UTC())
			if err != nil {
				return err
			}

			return e.withPool(cmd.Context(), func(pool *pgxpool.Pool) error {
				svc := app.NewServices(pool, e.cfg, e.logger).Reports
				ctx := cmd.Context()
				in := report.WindowInput{From: &window.From, To: &window.To}

				out := reportOutput{From: window.From, To: window.To, At: window.To}
				if out.Overdue, err = svc.Overdue(ctx, &out.At); err != nil {
					return err
				}
				if out.CycleTime, err = svc.AvgCycleTime(ctx, in); err != nil {
					return err
				}
				if out.Rework, err = svc.ReworkMetrics(ctx, in); err != nil {
					return err
				}
				if out.ByStatus, err = svc.RequestsByStatus(ctx, in); err != nil {
					return err
				}
				out.ReworkPercentage = out.Rework.Percentage()

				if e.json {
					return printJSON(cmd.OutOrStdout(), out)
				}
				renderReport(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "window start (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "window end, exclusive (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 30, "window length ending now when --from/--to are omitted")
	return cmd
}

// reportWindow resolves the flags into a half-open window. Explicit bounds
// win over --days.
func reportWindow(from, to string, days int, now time.Time) (domain.ReportWindow, error) {
	w := domain.ReportWindow{To: now, From: now.AddDate(0, 0, -days)}
	if to != "" {
		t, err := parseFlagTime(to)
		if err != nil {
			return domain.ReportWindow{}, fmt.Errorf("--to: %w", err)
		}
		w.To = t
		w.From = t.AddDate(0, 0, -days)
	}
	if from != "" {
		t, err := parseFlagTime(from)
		if err != nil {
			return domain.ReportWindow{}, fmt.Errorf("--from: %w", err)
		}
		w.From = t
	}
	if !w.From.Before(w.To) {
		return domain.ReportWindow{}, fmt.Errorf("window start %s is not before end %s", w.From.Format(time.RFC3339), w.To.Format(time.RFC3339))
	}
	return w, nil
}

func parseFlagTime(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.DateOnly, v)
}

func renderReport(w io.Writer, out reportOutput) {
	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.SetTitle(fmt.Sprintf("%s .. %s", out.From.Format(time.DateOnly), out.To.Format(time.DateOnly)))
	summary.AppendHeader(table.Row{"Metric", "Value"})
	summary.AppendRows([]table.Row{
		{"Overdue", out.Overdue},
		{"Avg cycle time", fmt.Sprintf("%dd %dh", out.CycleTime.Days(), out.CycleTime.Hours())},
		{"Finished requests", out.CycleTime.Requests},
		{"Rework", fmt.Sprintf("%d / %d (%.1f%%)", out.Rework.ReworkCount, out.Rework.TotalCount, out.ReworkPercentage)},
	})
	summary.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	summary.Render()

	statuses := table.NewWriter()
	statuses.SetOutputMirror(w)
	statuses.AppendHeader(table.Row{"Status", "Requests"})
	total := 0
	for _, c := range out.ByStatus {
		statuses.AppendRow(table.Row{c.Status, c.Total})
		total += c.Total
	}
	statuses.AppendFooter(table.Row{"Total", total})
	statuses.Render()
}
