package city

import "github.com/napolitain/solver-pnw/internal/models"

const (
	// IncomePerInfra is the base daily income of one infrastructure point
	IncomePerInfra = 2.0
	// ProductionPerMine is the daily output of one extractor
	ProductionPerMine = 3.0
)

// Income is the daily income estimate of a plan
type Income struct {
	CommercePercent int                             `json:"commerce_percent"`
	Base            float64                         `json:"base"`
	Total           float64                         `json:"total"`
	Production      map[models.ResourceType]float64 `json:"production"`
}

// IncomeFor estimates the income of a plan from its infrastructure and
// commerce bonus
func IncomeFor(plan *models.BuildPlan) Income {
	pct := CommercePercent(&plan.Counts)
	base := plan.InfraNeeded * IncomePerInfra
	inc := Income{
		CommercePercent: pct,
		Base:            base,
		Total:           base * (1 + float64(pct)/100),
		Production:      map[models.ResourceType]float64{},
	}
	for _, r := range models.AllResourceTypes() {
		if n := plan.Counts.Get(models.MineFor(r)); n > 0 {
			inc.Production[r] = float64(n) * ProductionPerMine
		}
	}
	return inc
}
