package city

import (
	"fmt"

	"github.com/napolitain/solver-pnw/internal/models"
)

// allocateRaw places pinned raw resources and fills the raw share of the
// remaining slots. It returns the number of slots reserved for manufacturing.
func (a *allocation) allocateRaw() int {
	reserve := 0
	if r := a.remaining(); r >= ManufacturingSplitThreshold {
		reserve = r / 2
	}

	for _, imp := range rawOrder {
		want, ok := a.pinned(imp)
		if !ok {
			continue
		}
		if !a.city.Continent.CanBuild(imp) {
			if want > 0 {
				a.report.AddInfo(Finding{
					Stage:       StageRaw,
					Message:     fmt.Sprintf("%s override ignored: not minable on this continent", imp.Label()),
					Improvement: imp,
					Requested:   want,
				})
			}
			a.counts.Set(imp, 0)
			continue
		}
		got := min(want, a.remaining())
		if got < want {
			a.report.AddWarning(Finding{
				Stage:       StageRaw,
				Message:     fmt.Sprintf("%s override reduced to the free slots", imp.Label()),
				Improvement: imp,
				Requested:   want,
				Granted:     got,
			})
		}
		a.counts.Set(imp, got)
	}

	a.fillRaw(max(a.remaining()-reserve, 0))
	return reserve
}

// fillRaw adds raw resources one unit at a time in priority order, re-checking
// the environment after every unit. Mitigating buildings come out of budget.
func (a *allocation) fillRaw(budget int) {
	for _, imp := range rawOrder {
		if a.overrides.Has(imp) || !a.rawEligible(imp) {
			continue
		}
		limit := a.cap(imp)
		for budget > 0 && a.remaining() > 0 && a.counts.Get(imp) < limit {
			a.counts.Add(imp, 1)
			budget--
			budget -= a.mitigate()
		}
	}
}

func (a *allocation) rawEligible(imp models.Improvement) bool {
	if !a.city.Continent.CanBuild(imp) {
		return false
	}
	if imp == models.UraniumMine {
		return a.counts.NuclearPower > 0
	}
	return true
}

// mitigate reacts to the current environment with at most one hospital,
// recycling center and police station. It returns the slots used.
func (a *allocation) mitigate() int {
	added := 0
	if a.environment().Disease > DiseaseThreshold && a.insert(models.Hospital) {
		added++
	}
	if a.environment().Pollution > PollutionThreshold && a.insert(models.RecyclingCenter) {
		added++
	}
	if a.environment().Crime > CrimeThreshold && a.insert(models.PoliceStation) {
		added++
	}
	return added
}

// insert adds one unit of a civil improvement unless it is pinned, capped or
// there is no room
func (a *allocation) insert(imp models.Improvement) bool {
	if a.overrides.Has(imp) || a.counts.Get(imp) >= a.cap(imp) || a.remaining() == 0 {
		return false
	}
	a.counts.Add(imp, 1)
	a.log.Debug("inserted mitigating improvement", "improvement", imp, "count", a.counts.Get(imp))
	return true
}

// allocateManufacturing places pinned manufacturing and then fills up to
// the reserve, never past what the mines can feed
func (a *allocation) allocateManufacturing(reserve int) {
	for _, imp := range manufacturingOrder {
		want, ok := a.pinned(imp)
		if !ok {
			continue
		}
		got := min(want, a.dependencyCap(imp), a.remaining())
		if got < want {
			a.report.AddWarning(Finding{
				Stage:       StageManufacturing,
				Message:     fmt.Sprintf("%s override limited by its raw inputs and free slots", imp.Label()),
				Improvement: imp,
				Requested:   want,
				Granted:     got,
			})
		}
		a.counts.Set(imp, got)
	}

	budget := min(reserve, a.remaining())
	for _, imp := range manufacturingOrder {
		if budget <= 0 {
			break
		}
		if a.overrides.Has(imp) {
			continue
		}
		n := min(a.dependencyCap(imp)-a.counts.Get(imp), budget)
		if n <= 0 {
			continue
		}
		a.counts.Add(imp, n)
		budget -= n
	}
}

// dependencyCap bounds a manufacturing improvement by its hard cap and the
// mines that supply it
func (a *allocation) dependencyCap(imp models.Improvement) int {
	c := &a.counts
	limit := a.cap(imp)
	switch imp {
	case models.OilRefinery:
		limit = min(limit, c.OilWell)
	case models.SteelMill:
		limit = min(limit, c.CoalMine, c.IronMine)
	case models.AluminumRefinery:
		limit = min(limit, c.BauxiteMine)
	case models.MunitionsFactory:
		limit = min(limit, c.LeadMine)
	}
	return max(limit, 0)
}
