package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStockpileAccessors(t *testing.T) {
	var s Stockpile
	s.Set(CommodityGasoline, 10)
	s.Add(CommodityGasoline, 2.5)
	s.Add(CommodityCredits, 1)
	s.Set(Commodity("gold"), 99)

	assert.Equal(t, 12.5, s.Gasoline)
	assert.Equal(t, 1.0, s.Get(CommodityCredits))
	assert.Equal(t, 0.0, s.Get(Commodity("gold")))

	n := 0
	s.Each(func(Commodity, float64) { n++ })
	assert.Equal(t, 13, n)
}

func TestMilitaryAccessors(t *testing.T) {
	var m Military
	assert.True(t, m.IsEmpty())

	m.Set(Tanks, 100)
	m.Set(Ships, -5)
	assert.Equal(t, 100, m.Get(Tanks))
	assert.Equal(t, 0, m.Get(Ships))
	assert.False(t, m.IsEmpty())
	assert.Len(t, AllUnitKinds(), 7)
}

func TestUnitDefinitions(t *testing.T) {
	for _, def := range AllUnitDefinitions() {
		assert.Greater(t, def.UpkeepPerTurn, 0.0, "%s", def.Kind)
		assert.Greater(t, def.Per, 0.0, "%s", def.Kind)
	}
	assert.Nil(t, GetUnitDefinition(Spies))
	ships := GetUnitDefinition(Ships)
	if assert.NotNil(t, ships) {
		assert.Equal(t, 1.0, ships.Steel)
		assert.Equal(t, 0.0, ships.Gasoline)
	}
}

func TestCitySnapshotAge(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := CitySnapshot{Founded: now.AddDate(0, 0, -100)}
	assert.Equal(t, 100, c.Age(now))

	assert.Equal(t, 1, (&CitySnapshot{}).Age(now))
	assert.Equal(t, 1, (&CitySnapshot{Founded: now.Add(time.Hour)}).Age(now))
}

func TestNationCityAttributes(t *testing.T) {
	n := &Nation{
		Continent: Asia,
		Projects:  ProjectFlags{MassIrrigation: true},
		Cities: []CitySnapshot{
			{ID: 11, Name: "Capital", Infrastructure: 2400, Land: 1800, Improvements: ImprovementCounts{Farm: 3}},
			{ID: 12, Name: "Outpost"},
		},
	}

	attrs := n.CityAttributes(&n.Cities[0])
	assert.Equal(t, 2400.0, attrs.Infrastructure)
	assert.Equal(t, 1800.0, attrs.Land)
	assert.Equal(t, Asia, attrs.Continent)
	assert.Equal(t, 3, attrs.Existing.Farm)

	outpost := n.CityAttributes(&n.Cities[1])
	assert.Equal(t, DefaultInfrastructure, outpost.Infrastructure)
	assert.Equal(t, DefaultLand, outpost.Land)

	profile := n.Profile()
	assert.Equal(t, 2, profile.CityCount)
	assert.True(t, profile.Projects.MassIrrigation)

	c, ok := n.FindCity("12")
	assert.True(t, ok)
	assert.Equal(t, "Outpost", c.Name)
	c, ok = n.FindCity("Capital")
	assert.True(t, ok)
	assert.Equal(t, 11, c.ID)
	_, ok = n.FindCity("Nowhere")
	assert.False(t, ok)
}
