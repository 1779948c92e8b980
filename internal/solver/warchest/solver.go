// Package warchest computes how much a nation needs stockpiled to run its
// cities and military at war for a number of days, and summarises bank
// transfers.
package warchest

import (
	"math"
	"time"

	"github.com/napolitain/solver-pnw/internal/models"
)

// Solution is a warchest requirement and how the stockpile compares to it
type Solution struct {
	Days  int `json:"days"`
	Turns int `json:"turns"`

	BuildingUpkeepPerTurn float64 `json:"building_upkeep_per_turn"`
	MilitaryUpkeepPerTurn float64 `json:"military_upkeep_per_turn"`

	Required models.Stockpile `json:"required"`
	Deficit  models.Stockpile `json:"deficit"`
	Excess   models.Stockpile `json:"excess"`
}

// Ready returns true if nothing is missing
func (s *Solution) Ready() bool {
	ready := true
	s.Deficit.Each(func(_ models.Commodity, v float64) {
		if v > 0 {
			ready = false
		}
	})
	return ready
}

// Solver computes warchests
type Solver struct {
	Days int
	// Now anchors city ages; zero means time.Now
	Now time.Time
}

// NewSolver creates a warchest solver with default constants
func NewSolver() *Solver {
	return &Solver{Days: DefaultDays}
}

// NewSolverWithConfig creates a solver for a custom number of days
func NewSolverWithConfig(days int, now time.Time) *Solver {
	s := NewSolver()
	if days > 0 {
		s.Days = days
	}
	s.Now = now
	return s
}

// Solve computes the warchest of a nation
func (s *Solver) Solve(n *models.Nation) *Solution {
	now := s.Now
	if now.IsZero() {
		now = time.Now()
	}
	turns := s.Days * TurnsPerDay
	sol := &Solution{Days: s.Days, Turns: turns}

	var perTurn models.Stockpile
	for i := range n.Cities {
		c := &n.Cities[i]
		c.Improvements.EachNonZero(func(imp models.Improvement, count int) {
			sol.BuildingUpkeepPerTurn += float64(count) * UpkeepPerTurn(imp)
			for _, in := range ConsumptionOf(imp) {
				perTurn.Add(in.Commodity, float64(count)*(in.Fixed+in.PerInfra*c.Infrastructure))
			}
		})
		perTurn.Add(models.CommodityFood, CityFoodPerDay(c, now)/TurnsPerDay)
	}

	mil := &n.Military
	perTurn.Add(models.CommodityFood, float64(mil.Soldiers)/SoldiersPerFood/TurnsPerDay)
	perTurn.Add(models.CommodityGasoline, BaseGasolinePerTurn)
	perTurn.Add(models.CommodityMunitions, BaseMunitionsPerTurn)
	for _, def := range models.AllUnitDefinitions() {
		units := float64(mil.Get(def.Kind))
		sol.MilitaryUpkeepPerTurn += units * def.UpkeepPerTurn
		batches := units / def.Per
		perTurn.Add(models.CommodityGasoline, batches*def.Gasoline)
		perTurn.Add(models.CommodityMunitions, batches*def.Munitions)
		perTurn.Add(models.CommoditySteel, batches*def.Steel)
		perTurn.Add(models.CommodityAluminum, batches*def.Aluminum)
	}
	perTurn.Money = sol.BuildingUpkeepPerTurn + sol.MilitaryUpkeepPerTurn

	for _, c := range models.AllCommodities() {
		required := perTurn.Get(c) * float64(turns)
		if c == models.CommodityCredits {
			required = RequiredCredits
		}
		have := n.Stockpile.Get(c)
		sol.Required.Set(c, required)
		sol.Deficit.Set(c, math.Max(required-have, 0))
		sol.Excess.Set(c, math.Max(have-required, 0))
	}
	return sol
}

// CityFoodPerDay is the daily food eaten by a city's population. Older
// cities grow past their base population and eat more.
func CityFoodPerDay(c *models.CitySnapshot, now time.Time) float64 {
	base := math.Max(c.Infrastructure, 0) * 100
	ageModifier := 1 + math.Max(math.Log(float64(c.Age(now)))/15, 0)
	return base*base/125_000_000 + (base*ageModifier-base)/850
}
