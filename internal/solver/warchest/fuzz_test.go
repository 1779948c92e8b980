package warchest

import (
	"math"
	"testing"

	"github.com/napolitain/solver-pnw/internal/models"
)

func FuzzSolverNonNegative(f *testing.F) {
	// Add seed corpus with realistic values
	f.Add(uint16(2000), uint8(1), uint8(2), int32(15000), int32(1000), int32(100), int32(10), uint8(5))
	f.Add(uint16(0), uint8(0), uint8(0), int32(0), int32(0), int32(0), int32(0), uint8(1))
	f.Add(uint16(65535), uint8(50), uint8(5), int32(500000), int32(50000), int32(5000), int32(500), uint8(30))

	f.Fuzz(func(t *testing.T, infra uint16, reactors, mills uint8, soldiers, tanks, aircraft, ships int32, days uint8) {
		n := &models.Nation{
			Cities: []models.CitySnapshot{{
				Infrastructure: float64(infra),
				Founded:        fixedNow.AddDate(-1, 0, 0),
				Improvements: models.ImprovementCounts{
					NuclearPower: int(reactors),
					SteelMill:    int(mills),
				},
			}},
		}
		n.Military.Set(models.Soldiers, int(soldiers))
		n.Military.Set(models.Tanks, int(tanks))
		n.Military.Set(models.Aircraft, int(aircraft))
		n.Military.Set(models.Ships, int(ships))

		sol := NewSolverWithConfig(int(days), fixedNow).Solve(n)

		for _, s := range []*models.Stockpile{&sol.Required, &sol.Deficit, &sol.Excess} {
			s.Each(func(c models.Commodity, v float64) {
				if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("%s = %v", c, v)
				}
			})
		}
	})
}
