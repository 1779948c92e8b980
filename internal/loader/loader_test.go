package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/napolitain/solver-pnw/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadNationAPIShape(t *testing.T) {
	path := writeFile(t, t.TempDir(), "nation.json", `{
		"id": "42", "nation_name": "Aland", "continent": "eu",
		"tanks": 250, "steel": 100.5,
		"cities": [{"id": "1", "name": "Capital", "infrastructure": 1500, "steel_mill": 2}]
	}`)

	n, err := LoadNation(path)
	require.NoError(t, err)
	assert.Equal(t, 42, n.ID)
	assert.Equal(t, models.Europe, n.Continent)
	assert.Equal(t, 250, n.Military.Tanks)
	assert.Equal(t, 100.5, n.Stockpile.Steel)
	require.Len(t, n.Cities, 1)
	assert.Equal(t, 1500.0, n.Cities[0].Infrastructure)
	assert.Equal(t, models.DefaultLand, n.Cities[0].Land)
	assert.Equal(t, 2, n.Cities[0].Improvements.SteelMill)
}

func TestSaveAndLoadNation(t *testing.T) {
	dir := t.TempDir()
	in := &models.Nation{
		ID:        7,
		Name:      "Bland",
		Continent: models.Africa,
		Military:  models.Military{Aircraft: 60},
		Cities: []models.CitySnapshot{
			{ID: 3, Name: "Harbour", Infrastructure: 2200, Land: 1900, Improvements: models.ImprovementCounts{Drydock: 1}},
		},
	}
	path := filepath.Join(dir, "bland.json")
	require.NoError(t, SaveNation(path, in))

	out, err := LoadNation(path)
	require.NoError(t, err)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Continent, out.Continent)
	assert.Equal(t, 60, out.Military.Aircraft)
	require.Len(t, out.Cities, 1)
	assert.Equal(t, 1, out.Cities[0].Improvements.Drydock)
}

func TestLoadNationErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadNation(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, err = LoadNation(writeFile(t, dir, "broken.json", `{"nation_name":`))
	assert.Error(t, err)

	_, err = LoadNation(writeFile(t, dir, "badid.json", `{"id":"x","nation_name":"Y"}`))
	assert.Error(t, err)
}

func TestLoadPlanRequests(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "nominal.json", `{"continent":"na","city_count":10}`)
	writeFile(t, dir, "pinned.json", `{"infrastructure":3000,"continent":"as","overrides":{"imp_bank":5,"stadium":-1}}`)
	writeFile(t, dir, "unknown.json", `{"continent":"na","overrides":{"imp_casino":1}}`)
	writeFile(t, dir, "broken.json", `{`)
	writeFile(t, dir, "notes.txt", `ignored`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	requests, err := LoadPlanRequests(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"nominal", "pinned"}, SortedNames(requests))

	pinned := requests["pinned"]
	assert.Equal(t, 3000.0, pinned.City().Infrastructure)
	o := pinned.PlanOverrides()
	bank, ok := o.Get(models.Bank)
	assert.True(t, ok)
	assert.Equal(t, 5, bank)
	assert.False(t, o.Has(models.Stadium))
}

func TestLoadPlanRequestsMissingDir(t *testing.T) {
	_, err := LoadPlanRequests(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
