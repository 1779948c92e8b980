package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-pnw/internal/converter"
	"github.com/napolitain/solver-pnw/internal/models"
	"github.com/napolitain/solver-pnw/internal/pnw"
	"github.com/napolitain/solver-pnw/internal/solver/warchest"
)

func newAuditCmd() *cobra.Command {
	var (
		allianceID int
		days       int
	)
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check the warchest of every member of an alliance",
		Example: `  citybuild audit --alliance 1234 --days 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if allianceID <= 0 {
				return fmt.Errorf("--alliance is required")
			}
			client := pnw.NewClient(cfg.APIKey, cfg.APIURL).WithLogger(slog.Default())
			members, err := client.AllianceMembers(cmd.Context(), allianceID)
			if err != nil {
				return fmt.Errorf("fetch alliance %d: %w", allianceID, err)
			}

			nations := make([]*models.Nation, 0, len(members))
			for i := range members {
				n, err := converter.APINationToModel(&members[i])
				if err != nil {
					slog.Warn("skipping member", "nation", members[i].ID, "err", err)
					continue
				}
				nations = append(nations, n)
			}
			printAudit(cmd.OutOrStdout(), nations, warchest.NewSolverWithConfig(days, time.Now()))
			return nil
		},
	}
	cmd.Flags().IntVarP(&allianceID, "alliance", "a", 0, "Alliance ID")
	cmd.Flags().IntVarP(&days, "days", "d", warchest.DefaultDays, "Days of war to cover")
	return cmd
}

// printAudit prints one warchest row per nation, nations with deficits first
func printAudit(w io.Writer, nations []*models.Nation, s *warchest.Solver) {
	if len(nations) == 0 {
		color.New(color.Faint).Fprintln(w, "No members found.")
		return
	}

	type row struct {
		nation  *models.Nation
		missing []string
	}
	rows := make([]row, 0, len(nations))
	for _, n := range nations {
		sol := s.Solve(n)
		var missing []string
		sol.Deficit.Each(func(c models.Commodity, v float64) {
			if v > 0 {
				missing = append(missing, string(c))
			}
		})
		rows = append(rows, row{n, missing})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return len(rows[i].missing) > len(rows[j].missing)
	})

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Nation", "ID", "Cities", "Missing", "Ready"}),
	)
	ready := 0
	for _, r := range rows {
		status := "no"
		if len(r.missing) == 0 {
			status = "yes"
			ready++
		}
		_ = table.Append([]string{
			r.nation.Name,
			fmt.Sprintf("%d", r.nation.ID),
			fmt.Sprintf("%d", len(r.nation.Cities)),
			strings.Join(r.missing, ", "),
			status,
		})
	}
	_ = table.Render()
	fmt.Fprintf(w, "\n%d/%d members ready\n", ready, len(rows))
}
