package main

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-pnw/internal/config"
	"github.com/napolitain/solver-pnw/internal/logging"
)

var (
	configFile string
	logLevel   string
	dbPath     string
	strict     bool

	cfg *config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "citybuild",
		Short: "Politics & War city build planner",
		Long: `Computes improvement allocations for Politics & War cities and
checks whether a nation's stockpile can sustain a war.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", defaultConfigPath(), "Path to YAML config file")
	pf.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&dbPath, "db", "", "Path to the SQLite database")
	pf.BoolVar(&strict, "strict", false, "Panic on allocator invariant violations")

	rootCmd.AddCommand(
		newBuildCmd(),
		newBatchCmd(),
		newSnapshotCmd(),
		newWarchestCmd(),
		newBalanceCmd(),
		newAuditCmd(),
		newRegisterCmd(),
		newUnregisterCmd(),
		newHistoryCmd(),
		newFeedbackCmd(),
	)
	return rootCmd
}

// loadConfig merges file, environment and flags, then sets up logging
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("db") {
		loaded.DBPath = dbPath
	}
	if flags.Changed("strict") {
		loaded.Strict = strict
	}

	logging.Setup(os.Stderr, loaded.LogLevel, loaded.LogFormat)
	cfg = loaded
	return nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "citybuild.yaml"
	}
	return filepath.Join(home, ".citybuild", "config.yaml")
}
