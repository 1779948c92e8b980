package converter

import (
	"testing"
	"time"

	"github.com/napolitain/solver-pnw/internal/models"
	"github.com/napolitain/solver-pnw/internal/pnw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestAPINationToModel(t *testing.T) {
	in := &pnw.Nation{
		ID:                "1234",
		NationName:        "Aland",
		LeaderName:        "Ada",
		Continent:         "North America",
		Soldiers:          15000,
		Ships:             3,
		Money:             1e6,
		Credits:           2,
		GreenTechnologies: true,
		Cities: []pnw.City{
			{ID: "9", Name: "Capital", Date: "2024-01-01", Infrastructure: ptr(2500), Land: ptr(1800), Stadium: 2},
			{ID: "10", Name: "Hidden"},
		},
		BankRecs: []pnw.BankRecord{
			{ID: "77", Date: "2025-03-04 10:11:12", SenderID: "1", ReceiverID: "1234", Money: 500, Food: 20},
		},
	}

	n, err := APINationToModel(in)
	require.NoError(t, err)

	assert.Equal(t, 1234, n.ID)
	assert.Equal(t, "Aland", n.Name)
	assert.Equal(t, "Ada", n.Leader)
	assert.Equal(t, models.NorthAmerica, n.Continent)
	assert.True(t, n.Projects.GreenTechnologies)
	assert.Equal(t, 15000, n.Military.Soldiers)
	assert.Equal(t, 3, n.Military.Get(models.Ships))
	assert.Equal(t, 1e6, n.Stockpile.Money)
	assert.Equal(t, 2.0, n.Stockpile.Get(models.CommodityCredits))

	require.Len(t, n.Cities, 2)
	capital := n.Cities[0]
	assert.Equal(t, 9, capital.ID)
	assert.Equal(t, 2500.0, capital.Infrastructure)
	assert.Equal(t, 1800.0, capital.Land)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), capital.Founded)
	assert.Equal(t, 2, capital.Improvements.Stadium)

	hidden := n.Cities[1]
	assert.Equal(t, models.DefaultInfrastructure, hidden.Infrastructure)
	assert.Equal(t, models.DefaultLand, hidden.Land)
	assert.True(t, hidden.Founded.IsZero())

	require.Len(t, n.BankRecords, 1)
	rec := n.BankRecords[0]
	assert.Equal(t, 77, rec.ID)
	assert.Equal(t, 1, rec.SenderID)
	assert.Equal(t, 1234, rec.ReceiverID)
	assert.Equal(t, 500.0, rec.Amounts.Money)
	assert.Equal(t, 20.0, rec.Amounts.Food)
	assert.Equal(t, 10, rec.Date.Hour())
}

func TestAPINationToModelUnknownContinent(t *testing.T) {
	n, err := APINationToModel(&pnw.Nation{ID: "1", Continent: "atlantis"})
	require.NoError(t, err)
	assert.Equal(t, models.Continent(""), n.Continent)
	assert.Empty(t, n.Cities)
}

func TestAPINationToModelBadInput(t *testing.T) {
	tests := []struct {
		name string
		in   *pnw.Nation
	}{
		{"nation id", &pnw.Nation{ID: "abc"}},
		{"city id", &pnw.Nation{ID: "1", Cities: []pnw.City{{ID: "x"}}}},
		{"city date", &pnw.Nation{ID: "1", Cities: []pnw.City{{ID: "2", Date: "yesterday"}}}},
		{"bank sender", &pnw.Nation{ID: "1", BankRecs: []pnw.BankRecord{{SenderID: "?"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := APINationToModel(tt.in)
			assert.Error(t, err)
		})
	}
}

func TestParseDateLayouts(t *testing.T) {
	for _, s := range []string{"2024-05-06", "2024-05-06 00:00:00", "2024-05-06T00:00:00Z", "2024-05-06T02:00:00+02:00"} {
		got, err := parseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), got, s)
	}
}
