package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-pnw/internal/pnw"
	"github.com/napolitain/solver-pnw/internal/solver/city"
	"github.com/napolitain/solver-pnw/internal/store"
)

func newRegisterCmd() *cobra.Command {
	var userName, nationName string
	cmd := &cobra.Command{
		Use:   "register <user-id> <nation-id>",
		Short: "Link a user to a nation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nationID, err := strconv.Atoi(args[1])
			if err != nil || nationID <= 0 {
				return fmt.Errorf("invalid nation id %q", args[1])
			}

			if nationName == "" {
				n, err := fetchNation(cmd.Context(), nationID)
				switch {
				case err == nil:
					nationName = n.Name
				case errors.Is(err, pnw.ErrNoAPIKey):
				default:
					return err
				}
			}

			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			err = db.Register(store.Registration{
				UserID:     args[0],
				UserName:   userName,
				NationID:   nationID,
				NationName: nationName,
			})
			if err != nil {
				return err
			}
			color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(), "✓ %s registered to nation %d %s\n", args[0], nationID, nationName)
			return nil
		},
	}
	cmd.Flags().StringVar(&userName, "name", "", "Display name of the user")
	cmd.Flags().StringVar(&nationName, "nation-name", "", "Nation name (fetched from the API when omitted)")
	return cmd
}

func newUnregisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unregister <user-id>",
		Short: "Remove a user's registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Unregister(args[0]); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ %s unregistered\n", args[0])
			return nil
		},
	}
}

func newHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [user-id]",
		Short: "Show recently generated plans",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var userID string
			if len(args) == 1 {
				userID = args[0]
			}

			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			entries, err := db.RecentPlans(userID, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				color.New(color.FgYellow).Fprintln(out, "No plans recorded")
				return nil
			}
			table := tablewriter.NewTable(out,
				tablewriter.WithHeader([]string{"Date", "User", "Nation", "City", "Continent", "Infra", "Slots", "Commerce"}),
			)
			for _, e := range entries {
				p := e.Plan.Plan()
				_ = table.Append([]string{
					e.CreatedAt.Local().Format("2006-01-02 15:04"),
					e.UserID,
					strconv.Itoa(e.NationID),
					e.City,
					string(e.Continent),
					fmt.Sprintf("%.0f", p.InfraNeeded),
					strconv.Itoa(p.ImpTotal),
					fmt.Sprintf("%d%%", city.CommercePercent(&p.Counts)),
				})
			}
			_ = table.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Number of plans to show")
	return cmd
}

func newFeedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record or list suggestions and bug reports",
	}

	var userID string
	add := &cobra.Command{
		Use:   "add <suggestion|bug> <message...>",
		Short: "Record feedback",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := store.ParseFeedbackKind(args[0])
			if !ok {
				return fmt.Errorf("unknown feedback kind %q", args[0])
			}

			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			id, err := db.AddFeedback(store.Feedback{
				UserID:  userID,
				Kind:    kind,
				Message: strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Thanks! Recorded %s %s\n", kind, id)
			return nil
		},
	}
	add.Flags().StringVarP(&userID, "user", "u", "", "User submitting the feedback")

	list := &cobra.Command{
		Use:   "list [suggestion|bug]",
		Short: "List recorded feedback",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind store.FeedbackKind
			if len(args) == 1 {
				var ok bool
				if kind, ok = store.ParseFeedbackKind(args[0]); !ok {
					return fmt.Errorf("unknown feedback kind %q", args[0])
				}
			}

			db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			items, err := db.ListFeedback(kind)
			if err != nil {
				return err
			}
			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Date", "Kind", "User", "Message"}),
			)
			for _, f := range items {
				_ = table.Append([]string{f.CreatedAt.Local().Format("2006-01-02 15:04"), string(f.Kind), f.UserID, f.Message})
			}
			_ = table.Render()
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}
