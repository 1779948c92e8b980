package city

import (
	"errors"
	"fmt"

	"github.com/napolitain/solver-pnw/internal/models"
)

var (
	// ErrBudgetExceeded means a plan uses more slots than imp_total
	ErrBudgetExceeded = errors.New("plan exceeds slot budget")
	// ErrDependencyViolated means manufacturing outnumbers its supplying mines
	ErrDependencyViolated = errors.New("manufacturing exceeds supplying mines")
	// ErrNegativeCount means a count or the slot budget is below zero
	ErrNegativeCount = errors.New("negative count")
)

// trimOrder is the order improvements give up slots when a finished plan
// has to be clamped. Manufacturing goes before raw so dependencies hold.
var trimOrder = func() []models.Improvement {
	var order []models.Improvement
	for i := len(manufacturingOrder) - 1; i >= 0; i-- {
		order = append(order, manufacturingOrder[i])
	}
	for i := len(rawOrder) - 1; i >= 0; i-- {
		order = append(order, rawOrder[i])
	}
	order = append(order, models.ImprovementsIn(models.GroupCommerce)...)
	order = append(order, models.ImprovementsIn(models.GroupMilitary)...)
	order = append(order, models.ImprovementsIn(models.GroupCivil)...)
	order = append(order, models.ImprovementsIn(models.GroupPower)...)
	return order
}()

// Check verifies the budget and dependency invariants of a plan
func Check(plan *models.BuildPlan) error {
	var errs []error
	if plan.ImpTotal < 0 {
		errs = append(errs, fmt.Errorf("%w: imp_total %d", ErrNegativeCount, plan.ImpTotal))
	}
	plan.Counts.Each(func(imp models.Improvement, n int) {
		if n < 0 {
			errs = append(errs, fmt.Errorf("%w: %s %d", ErrNegativeCount, imp, n))
		}
	})
	if used := plan.Used(); used > plan.ImpTotal {
		errs = append(errs, fmt.Errorf("%w: %d used of %d", ErrBudgetExceeded, used, plan.ImpTotal))
	}
	c := &plan.Counts
	deps := []struct {
		imp    models.Improvement
		supply int
	}{
		{models.OilRefinery, c.OilWell},
		{models.SteelMill, min(c.CoalMine, c.IronMine)},
		{models.AluminumRefinery, c.BauxiteMine},
		{models.MunitionsFactory, c.LeadMine},
	}
	for _, d := range deps {
		if n := c.Get(d.imp); n > d.supply {
			errs = append(errs, fmt.Errorf("%w: %s %d > %d", ErrDependencyViolated, d.imp, n, d.supply))
		}
	}
	return errors.Join(errs...)
}

// assemble freezes the counts into a plan, enforcing the invariants, and
// fills in the report
func (a *allocation) assemble() *models.BuildPlan {
	plan := &models.BuildPlan{
		InfraNeeded: a.city.Infrastructure,
		ImpTotal:    a.impTotal,
		Counts:      a.counts,
	}

	if err := Check(plan); err != nil {
		if a.opts.Strict {
			panic(err)
		}
		a.log.Error("plan violates invariants, clamping", "err", err, "used", plan.Used(), "imp_total", plan.ImpTotal)
		a.report.AddError(Finding{
			Stage:     StageAssemble,
			Message:   err.Error(),
			Requested: plan.Used(),
			Granted:   plan.ImpTotal,
		})
		clamp(plan)
	}

	a.describe(plan)
	return plan
}

// clamp brings a plan back within its invariants
func clamp(plan *models.BuildPlan) {
	c := &plan.Counts
	plan.ImpTotal = max(plan.ImpTotal, 0)
	for _, imp := range models.AllImprovements() {
		c.Set(imp, max(c.Get(imp), 0))
	}
	c.OilRefinery = min(c.OilRefinery, c.OilWell)
	c.SteelMill = min(c.SteelMill, c.CoalMine, c.IronMine)
	c.AluminumRefinery = min(c.AluminumRefinery, c.BauxiteMine)
	c.MunitionsFactory = min(c.MunitionsFactory, c.LeadMine)

	over := plan.Used() - plan.ImpTotal
	for _, imp := range trimOrder {
		if over <= 0 {
			break
		}
		cut := min(c.Get(imp), over)
		c.Add(imp, -cut)
		over -= cut
	}
}

// describe records the notable facts of a finished plan
func (a *allocation) describe(plan *models.BuildPlan) {
	c := &plan.Counts

	if need := c.NuclearPower * UraniumMinesPerReactor; c.UraniumMine < need {
		msg := fmt.Sprintf("%d nuclear plants need %d uranium mines, plan has %d",
			c.NuclearPower, need, c.UraniumMine)
		if !a.city.Continent.Has(models.Uranium) {
			msg += "; uranium is not minable here and must be imported"
		}
		a.report.AddWarning(Finding{
			Stage:       StageAssemble,
			Message:     msg,
			Improvement: models.UraniumMine,
			Requested:   need,
			Granted:     c.UraniumMine,
		})
	}

	if free := plan.Free(); free > 0 {
		a.report.AddInfo(Finding{
			Stage:   StageAssemble,
			Message: fmt.Sprintf("%d slots left unallocated", free),
			Granted: free,
		})
	}

	env := Evaluate(c, a.city, a.mods)
	a.report.AddInfo(Finding{
		Stage: StageAssemble,
		Message: fmt.Sprintf("pollution %.1f, disease %.2f, crime %.2f, commerce %d%%",
			env.Pollution, env.Disease, env.Crime, CommercePercent(c)),
	})
	if env.Disease > DiseaseThreshold {
		a.report.AddWarning(Finding{Stage: StageAssemble, Message: fmt.Sprintf("disease %.2f above %.0f", env.Disease, DiseaseThreshold)})
	}
	if env.Pollution > PollutionThreshold {
		a.report.AddWarning(Finding{Stage: StageAssemble, Message: fmt.Sprintf("pollution %.1f above %.0f", env.Pollution, PollutionThreshold)})
	}
	if env.Crime > CrimeThreshold {
		a.report.AddWarning(Finding{Stage: StageAssemble, Message: fmt.Sprintf("crime %.2f above %.0f", env.Crime, CrimeThreshold)})
	}
}
