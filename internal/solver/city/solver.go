// Package city implements the city build-plan allocator: a staged greedy
// solver that distributes a city's improvement slots across military,
// power, civil, commerce, raw resource and manufacturing improvements.
package city

import (
	"encoding/json"
	"log/slog"

	"github.com/napolitain/solver-pnw/internal/models"
)

// Options tune how the solver reports problems
type Options struct {
	// Strict panics when the assembled plan breaks the slot budget instead
	// of logging and clamping. Tests run strict.
	Strict bool
	Logger *slog.Logger
}

// Result is a solved plan plus what the solver learned producing it
type Result struct {
	Plan          *models.BuildPlan
	Role          MilitaryRole
	UraniumNeeded int
	Environment   EnvironmentState
	Income        Income
	Report        *Report
}

// MarshalJSON encodes the plan in its flat record form
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Plan          models.PlanRecord `json:"plan"`
		Role          MilitaryRole      `json:"role"`
		UraniumNeeded int               `json:"uranium_needed"`
		Environment   EnvironmentState  `json:"environment"`
		Income        Income            `json:"income"`
		Report        *Report           `json:"report"`
	}{r.Plan.Record(), r.Role, r.UraniumNeeded, r.Environment, r.Income, r.Report})
}

// Solver produces a build plan for a single city
type Solver struct {
	City      models.CityAttributes
	Nation    models.NationProfile
	Overrides models.Overrides
	Options   Options
}

// NewSolver creates a solver with default options
func NewSolver(city models.CityAttributes, nation models.NationProfile, overrides models.Overrides) *Solver {
	return &Solver{
		City:      city,
		Nation:    nation,
		Overrides: overrides,
	}
}

// NewSolverWithOptions creates a solver with explicit options
func NewSolverWithOptions(
	city models.CityAttributes,
	nation models.NationProfile,
	overrides models.Overrides,
	opts Options,
) *Solver {
	s := NewSolver(city, nation, overrides)
	s.Options = opts
	return s
}

// Plan is a shorthand for NewSolver(...).Solve().Plan
func Plan(city models.CityAttributes, nation models.NationProfile, overrides models.Overrides) *models.BuildPlan {
	return NewSolver(city, nation, overrides).Solve().Plan
}

// Solve runs every stage in order and assembles the plan. It never fails:
// bad inputs fall back to nominal values and overruns are rebalanced.
func (s *Solver) Solve() *Result {
	a := newAllocation(s)

	a.allocateMilitary()
	a.allocatePower()
	a.allocateSafety()
	a.allocateCommerce()
	a.rebalance()

	if a.remaining() > 0 {
		reserve := a.allocateRaw()
		a.allocateManufacturing(reserve)
		// slots the manufacturing reserve could not use go back to raw
		if left := a.remaining(); left > 0 {
			a.fillRaw(left)
		}
	}

	plan := a.assemble()
	return &Result{
		Plan:          plan,
		Role:          a.role,
		UraniumNeeded: a.uraniumNeeded,
		Environment:   Evaluate(&plan.Counts, a.city, a.mods),
		Income:        IncomeFor(plan),
		Report:        a.report,
	}
}

// allocation is the mutable state of one Solve call
type allocation struct {
	city      models.CityAttributes
	nation    models.NationProfile
	overrides models.Overrides
	mods      Modifiers
	opts      Options
	log       *slog.Logger

	counts        models.ImprovementCounts
	impTotal      int
	role          MilitaryRole
	uraniumNeeded int
	report        *Report
}

func newAllocation(s *Solver) *allocation {
	logger := s.Options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	city := s.City
	city.Infrastructure = clampInfrastructure(city.Infrastructure)
	mods := ModifiersFor(s.Nation.Projects)
	return &allocation{
		city:      city,
		nation:    s.Nation,
		overrides: s.Overrides,
		mods:      mods,
		opts:      s.Options,
		log:       logger,
		impTotal:  SlotBudget(city.Infrastructure, mods),
		report:    NewReport(),
	}
}

func (a *allocation) used() int {
	return a.counts.Total()
}

// remaining returns free slots, never negative
func (a *allocation) remaining() int {
	return max(a.impTotal-a.used(), 0)
}

func (a *allocation) cap(imp models.Improvement) int {
	return a.mods.Cap(imp, a.impTotal)
}

// pinned returns the caller's override clamped to [0, cap]
func (a *allocation) pinned(imp models.Improvement) (int, bool) {
	n, ok := a.overrides.Get(imp)
	if !ok {
		return 0, false
	}
	return min(max(n, 0), a.cap(imp)), true
}

func (a *allocation) environment() EnvironmentState {
	return Evaluate(&a.counts, a.city, a.mods)
}
