package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-pnw/internal/solver/warchest"
)

func newWarchestCmd() *cobra.Command {
	var (
		source nationSource
		days   int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "warchest",
		Short: "Check whether a nation's stockpile covers a war",
		Long: `Computes the resources needed to run every city and the whole military
for a number of days, and compares them with the nation's stockpile.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := source.resolve(cmd.Context())
			if err != nil {
				return err
			}
			sol := warchest.NewSolverWithConfig(days, time.Now()).Solve(n)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(sol)
			}

			color.New(color.FgCyan, color.Bold).Fprintf(out, "\n⚔  Warchest for %s (%d days, %d turns)\n\n", n.Name, sol.Days, sol.Turns)
			printStockpileTable(out, []string{"Resource", "Required", "Stockpile", "Deficit", "Excess"},
				&sol.Required, &n.Stockpile, &sol.Deficit, &sol.Excess)

			fmt.Fprintf(out, "\n   Building upkeep: $%.2f/turn\n", sol.BuildingUpkeepPerTurn)
			fmt.Fprintf(out, "   Military upkeep: $%.2f/turn\n", sol.MilitaryUpkeepPerTurn)
			if sol.Ready() {
				color.New(color.FgGreen, color.Bold).Fprintln(out, "\n✓ Warchest is ready")
			} else {
				color.New(color.FgRed, color.Bold).Fprintln(out, "\n✗ Warchest has deficits")
			}
			return nil
		},
	}
	source.addFlags(cmd)
	cmd.Flags().IntVarP(&days, "days", "d", warchest.DefaultDays, "Days of war to cover")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func newBalanceCmd() *cobra.Command {
	var (
		source nationSource
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Summarise a nation's bank deposits and withdrawals",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := source.resolve(cmd.Context())
			if err != nil {
				return err
			}
			bal := warchest.Balance(n)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(bal)
			}

			color.New(color.FgCyan, color.Bold).Fprintf(out, "\n🏦 Bank balance for %s (%d records)\n\n", n.Name, len(n.BankRecords))
			printStockpileTable(out, []string{"Resource", "Net"}, &bal)
			return nil
		},
	}
	source.addFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the balance as JSON")
	return cmd
}
