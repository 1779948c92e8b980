// Package loader reads offline nation snapshots and plan request files
package loader

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/napolitain/solver-pnw/internal/converter"
	"github.com/napolitain/solver-pnw/internal/models"
	"github.com/napolitain/solver-pnw/internal/pnw"
)

// snapshotProbe detects which shape a nation file is in
type snapshotProbe struct {
	NationName string `json:"nation_name"`
}

// LoadNation loads a nation from a JSON file. The file may hold either a
// raw API nation (as returned by the GraphQL API) or a saved model nation.
func LoadNation(path string) (*models.Nation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return ParseNation(data)
}

// ParseNation decodes a nation in either the API or the model shape
func ParseNation(data []byte) (*models.Nation, error) {
	var probe snapshotProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse nation: %w", err)
	}

	if probe.NationName != "" {
		var raw pnw.Nation
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse API nation: %w", err)
		}
		return converter.APINationToModel(&raw)
	}

	n := &models.Nation{}
	if err := json.Unmarshal(data, n); err != nil {
		return nil, fmt.Errorf("failed to parse nation: %w", err)
	}
	return n, nil
}

// SaveNation writes a nation snapshot in the model shape
func SaveNation(path string, n *models.Nation) error {
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// LoadPlanRequests loads every *.json plan request in a directory, keyed by
// file name without extension. Files that fail to parse or validate are
// skipped with a warning.
func LoadPlanRequests(dir string) (map[string]*models.PlanRequest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read requests directory: %w", err)
	}

	requests := make(map[string]*models.PlanRequest)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		req, err := models.LoadPlanRequest(filepath.Join(dir, entry.Name()))
		if err == nil {
			err = models.ValidatePlanRequest(req)
		}
		if err != nil {
			slog.Warn("skipping plan request", "file", entry.Name(), "err", err)
			continue
		}
		requests[strings.TrimSuffix(entry.Name(), ".json")] = req
	}
	return requests, nil
}

// SortedNames returns request names in lexical order
func SortedNames(requests map[string]*models.PlanRequest) []string {
	names := make([]string, 0, len(requests))
	for name := range requests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
