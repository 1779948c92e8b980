package city

import (
	"fmt"
	"math"

	"github.com/napolitain/solver-pnw/internal/models"
)

// allocateMilitary places barracks, factories, hangars and drydocks. A
// single military override hands all four to the caller; unset ones become 0.
func (a *allocation) allocateMilitary() {
	military := models.ImprovementsIn(models.GroupMilitary)

	if a.overrides.AnyOf(military...) {
		a.role = RoleCustom
		for _, imp := range military {
			n, _ := a.pinned(imp)
			a.counts.Set(imp, n)
		}
		return
	}

	a.role = RoleRaider
	if a.nation.CityCount >= WhaleCityCount {
		a.role = RoleWhale
	}
	build := militaryBuilds[a.role]
	for _, imp := range military {
		a.counts.Set(imp, min(build.Get(imp), a.cap(imp)))
	}
}

// allocatePower keeps overridden coal, oil and wind plants and covers the
// rest of the infrastructure with nuclear plants.
func (a *allocation) allocatePower() {
	coverage := map[models.Improvement]float64{
		models.CoalPower: CoalCoverage,
		models.OilPower:  OilCoverage,
		models.WindPower: WindCoverage,
	}

	covered := 0.0
	for _, imp := range []models.Improvement{models.CoalPower, models.OilPower, models.WindPower} {
		n, _ := a.pinned(imp)
		a.counts.Set(imp, n)
		covered += float64(n) * coverage[imp]
	}

	nuclear, ok := a.pinned(models.NuclearPower)
	if !ok {
		if uncovered := a.city.Infrastructure - covered; uncovered > 0 {
			nuclear = int(math.Ceil(uncovered / NuclearCoverage))
		}
		nuclear = min(nuclear, a.cap(models.NuclearPower))
	}
	a.counts.NuclearPower = nuclear
	a.uraniumNeeded = nuclear * UraniumMinesPerReactor
}

// allocateSafety places the civil floor before any pollution or crime exists
func (a *allocation) allocateSafety() {
	floor := map[models.Improvement]int{
		models.PoliceStation:   a.cap(models.PoliceStation),
		models.Hospital:        a.mods.HospitalCap,
		models.RecyclingCenter: a.mods.RecyclingCap,
		models.Subway:          1,
	}
	for _, imp := range models.ImprovementsIn(models.GroupCivil) {
		n, ok := a.pinned(imp)
		if !ok {
			n = floor[imp]
		}
		a.counts.Set(imp, n)
	}
}

// allocateCommerce fills commerce up to the 100% bonus cap. Pinned
// improvements are placed first in fill order, then the rest fill the
// remaining slots and percentage.
func (a *allocation) allocateCommerce() {
	percent := a.counts.Subway * SubwayCommerce

	for _, imp := range commerceOrder {
		if imp == models.Subway {
			continue
		}
		want, ok := a.pinned(imp)
		if !ok {
			continue
		}
		got := fitCommerce(imp, want, percent)
		if got < want {
			a.report.AddWarning(Finding{
				Stage:       StageCommerce,
				Message:     fmt.Sprintf("%s override reduced to stay within %d%% commerce", imp.Label(), MaxCommercePercent),
				Improvement: imp,
				Requested:   want,
				Granted:     got,
			})
		}
		a.counts.Set(imp, got)
		percent += got * commerceBonus[imp]
	}

	for _, imp := range commerceOrder {
		if a.overrides.Has(imp) {
			continue
		}
		if imp == models.Subway && a.counts.Subway > 0 {
			continue
		}
		want := min(a.cap(imp)-a.counts.Get(imp), a.remaining())
		if want <= 0 {
			continue
		}
		got := fitCommerce(imp, want, percent)
		a.counts.Add(imp, got)
		percent += got * commerceBonus[imp]
	}
}

// fitCommerce truncates want to whole units that keep percent within the cap
func fitCommerce(imp models.Improvement, want, percent int) int {
	room := MaxCommercePercent - percent
	if room <= 0 {
		return 0
	}
	return min(want, room/commerceBonus[imp])
}
