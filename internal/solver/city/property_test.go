package city

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/solver-pnw/internal/models"
)

type randomInput struct {
	city      models.CityAttributes
	nation    models.NationProfile
	overrides models.Overrides
}

func randomCase(rng *rand.Rand) randomInput {
	continents := append(models.AllContinents(), "zz")
	in := randomInput{
		city: models.CityAttributes{
			Infrastructure: float64(rng.Intn(6000)) + rng.Float64(),
			Land:           float64(rng.Intn(5000)),
			Continent:      continents[rng.Intn(len(continents))],
		},
		nation:    models.NationProfile{CityCount: rng.Intn(40)},
		overrides: models.NewOverrides(),
	}
	for _, p := range models.AllProjectNames() {
		in.nation.Projects.Set(p, rng.Intn(2) == 1)
	}
	for _, imp := range models.AllImprovements() {
		switch rng.Intn(10) {
		case 0:
			in.overrides.Set(imp, rng.Intn(12))
		case 1:
			in.overrides.SetSentinel(imp, rng.Intn(4)-2)
		case 2:
			if rng.Intn(5) == 0 {
				in.overrides.Set(imp, 10000)
			}
		}
	}
	return in
}

// TestSolve_Invariants property-tests the budget, dependency, commerce and
// gating invariants over random cities and overrides
func TestSolve_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 500; trial++ {
		in := randomCase(rng)
		res := NewSolverWithOptions(in.city, in.nation, in.overrides, Options{Strict: true}).Solve()
		c := res.Plan.Counts

		assert.LessOrEqual(t, res.Plan.Used(), res.Plan.ImpTotal,
			"trial %d: used slots must not exceed imp_total", trial)

		assert.LessOrEqual(t, c.OilRefinery, c.OilWell, "trial %d", trial)
		assert.LessOrEqual(t, c.SteelMill, min(c.CoalMine, c.IronMine), "trial %d", trial)
		assert.LessOrEqual(t, c.AluminumRefinery, c.BauxiteMine, "trial %d", trial)
		assert.LessOrEqual(t, c.MunitionsFactory, c.LeadMine, "trial %d", trial)

		assert.LessOrEqual(t, RawCommercePercent(&c), MaxCommercePercent,
			"trial %d: commerce bonus must not exceed %d%%", trial, MaxCommercePercent)

		for _, r := range models.AllResourceTypes() {
			if !in.city.Continent.Has(r) {
				assert.Zero(t, c.Get(models.MineFor(r)),
					"trial %d: %s must not be mined on %q", trial, r, in.city.Continent)
			}
		}

		m := ModifiersFor(in.nation.Projects)
		c.Each(func(imp models.Improvement, n int) {
			assert.GreaterOrEqual(t, n, 0, "trial %d: %s", trial, imp)
			assert.LessOrEqual(t, n, m.Cap(imp, res.Plan.ImpTotal), "trial %d: %s", trial, imp)
		})
	}
}

// TestSolve_Idempotent feeds every plan back in as a full override set
func TestSolve_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 300; trial++ {
		in := randomCase(rng)
		opts := Options{Strict: true}
		first := NewSolverWithOptions(in.city, in.nation, in.overrides, opts).Solve()
		second := NewSolverWithOptions(in.city, in.nation, first.Plan.Overrides(), opts).Solve()

		require.Equal(t, first.Plan.Record(), second.Plan.Record(), "trial %d", trial)
	}
}

func TestSolve_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	in := randomCase(rng)

	baseline := NewSolver(in.city, in.nation, in.overrides).Solve()
	for i := 0; i < 50; i++ {
		res := NewSolver(in.city, in.nation, in.overrides).Solve()
		require.Equal(t, baseline.Plan.Record(), res.Plan.Record(), "iteration %d", i)
		require.Equal(t, baseline.Report, res.Report, "iteration %d", i)
	}
}

// TestSolve_Concurrent runs independent solves in parallel and compares
// them with sequential results
func TestSolve_Concurrent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	inputs := make([]randomInput, 64)
	want := make([]models.PlanRecord, len(inputs))
	for i := range inputs {
		inputs[i] = randomCase(rng)
		want[i] = Plan(inputs[i].city, inputs[i].nation, inputs[i].overrides).Record()
	}

	got := make([]models.PlanRecord, len(inputs))
	var wg sync.WaitGroup
	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := inputs[i]
			got[i] = Plan(in.city, in.nation, in.overrides).Record()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, want, got)
}
