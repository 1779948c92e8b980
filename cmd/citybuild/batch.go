package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-pnw/internal/loader"
	"github.com/napolitain/solver-pnw/internal/solver/city"
)

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <dir>",
		Short: "Compute plans for every request file in a directory",
		Long: `Runs the allocator on each *.json plan request in a directory and
prints one summary row per request. Invalid files are skipped.`,
		Example: `  citybuild batch examples/`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := loader.LoadPlanRequests(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(requests) == 0 {
				color.New(color.Faint).Fprintln(out, "No plan requests found.")
				return nil
			}

			opts := city.Options{Strict: cfg.Strict, Logger: slog.Default()}
			table := tablewriter.NewTable(out,
				tablewriter.WithHeader([]string{"Request", "Continent", "Slots", "Role", "Commerce", "Income", "Warnings", "Valid"}),
			)
			for _, name := range loader.SortedNames(requests) {
				req := requests[name]
				attrs := req.City()
				res := city.NewSolverWithOptions(attrs, req.Nation(), req.PlanOverrides(), opts).Solve()
				valid := "yes"
				if !res.Report.Valid {
					valid = "no"
				}
				_ = table.Append([]string{
					name,
					continentName(attrs.Continent),
					fmt.Sprintf("%d", res.Plan.ImpTotal),
					string(res.Role),
					fmt.Sprintf("%d%%", res.Income.CommercePercent),
					fmt.Sprintf("$%.0f", res.Income.Total),
					fmt.Sprintf("%d", len(res.Report.Warnings)),
					valid,
				})
			}
			_ = table.Render()
			return nil
		},
	}
}

func newSnapshotCmd() *cobra.Command {
	var (
		source nationSource
		output string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save a nation to a JSON file for offline planning",
		Example: `  citybuild snapshot --nation 12345 --out nation.json
  citybuild build --snapshot nation.json --city Capital`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !source.isSet() {
				return fmt.Errorf("one of --nation, --snapshot or --user is required")
			}
			n, err := source.resolve(cmd.Context())
			if err != nil {
				return err
			}
			if err := loader.SaveNation(output, n); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Saved %s (%d cities) to %s\n", n.Name, len(n.Cities), output)
			return nil
		},
	}
	source.addFlags(cmd)
	cmd.Flags().StringVarP(&output, "out", "o", "nation.json", "Output file")
	return cmd
}
