package city

import (
	"fmt"

	"github.com/napolitain/solver-pnw/internal/models"
)

// rebalanceOrder is the order groups are shrunk in when the early stages
// overrun the slot budget
var rebalanceOrder = []models.Group{
	models.GroupCommerce,
	models.GroupMilitary,
	models.GroupCivil,
	models.GroupPower,
}

// rebalance scales groups down proportionally until the plan fits
func (a *allocation) rebalance() {
	over := a.used() - a.impTotal
	if over <= 0 {
		return
	}

	a.log.Debug("rebalancing plan", "used", a.used(), "imp_total", a.impTotal, "over", over)
	a.report.AddWarning(Finding{
		Stage:     StageRebalance,
		Message:   fmt.Sprintf("early stages requested %d slots over the budget of %d", over, a.impTotal),
		Requested: a.used(),
		Granted:   a.impTotal,
	})

	for _, g := range rebalanceOrder {
		if over <= 0 {
			break
		}
		a.scaleGroup(g, over)
		over = a.used() - a.impTotal
	}

	a.uraniumNeeded = a.counts.NuclearPower * UraniumMinesPerReactor
}

// scaleGroup shrinks every member of g by the same ratio so the group gives
// up at least over slots, or all of them
func (a *allocation) scaleGroup(g models.Group, over int) {
	total := a.counts.GroupTotal(g)
	if total == 0 {
		return
	}
	target := max(total-over, 0)
	for _, imp := range models.ImprovementsIn(g) {
		n := a.counts.Get(imp)
		if n == 0 {
			continue
		}
		scaled := n * target / total
		if scaled == n {
			continue
		}
		a.counts.Set(imp, scaled)
		a.log.Debug("scaled improvement", "improvement", imp, "from", n, "to", scaled)
		a.report.AddInfo(Finding{
			Stage:       StageRebalance,
			Message:     fmt.Sprintf("%s reduced from %d to %d", imp.Label(), n, scaled),
			Improvement: imp,
			Requested:   n,
			Granted:     scaled,
		})
	}
}
