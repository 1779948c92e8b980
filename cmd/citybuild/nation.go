package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/napolitain/solver-pnw/internal/converter"
	"github.com/napolitain/solver-pnw/internal/loader"
	"github.com/napolitain/solver-pnw/internal/models"
	"github.com/napolitain/solver-pnw/internal/pnw"
	"github.com/napolitain/solver-pnw/internal/store"
)

// nationSource selects where a command reads its nation from
type nationSource struct {
	nationID int
	snapshot string
	userID   string
}

func (s *nationSource) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&s.nationID, "nation", "n", 0, "Nation ID to fetch from the game API")
	cmd.Flags().StringVarP(&s.snapshot, "snapshot", "s", "", "Nation snapshot JSON file (offline)")
	cmd.Flags().StringVarP(&s.userID, "user", "u", "", "Registered user whose nation to use")
}

func (s *nationSource) isSet() bool {
	return s.nationID != 0 || s.snapshot != "" || s.userID != ""
}

// resolve loads the nation from a snapshot, the API, or the user's
// registration, in that order
func (s *nationSource) resolve(ctx context.Context) (*models.Nation, error) {
	if s.snapshot != "" {
		return loader.LoadNation(s.snapshot)
	}

	id := s.nationID
	if id == 0 {
		if s.userID == "" {
			return nil, errors.New("one of --nation, --snapshot or --user is required")
		}
		db, err := openStore()
		if err != nil {
			return nil, err
		}
		defer db.Close()

		reg, err := db.Registration(s.userID)
		if err != nil {
			return nil, err
		}
		id = reg.NationID
	}
	return fetchNation(ctx, id)
}

func fetchNation(ctx context.Context, id int) (*models.Nation, error) {
	client := pnw.NewClient(cfg.APIKey, cfg.APIURL).WithLogger(slog.Default())
	raw, err := client.Nation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch nation %d: %w", id, err)
	}
	return converter.APINationToModel(raw)
}

func openStore() (*store.DB, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}
	return store.Open(cfg.DBPath)
}
