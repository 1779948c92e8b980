package warchest

import "github.com/napolitain/solver-pnw/internal/models"

// Constants for a five-day warchest
const (
	TurnsPerDay = 12
	DefaultDays = 5

	// base per-turn burn of a nation at war, before units
	BaseGasolinePerTurn  = 2.5
	BaseMunitionsPerTurn = 2.0

	// SoldiersPerFood is how many soldiers eat one ton of food a day
	SoldiersPerFood = 750.0

	// RequiredCredits is the credit balance a nation should keep on hand
	RequiredCredits = 1.0
)

// upkeepPerTurn is the money upkeep of one improvement per turn
var upkeepPerTurn = map[models.Improvement]float64{
	models.CoalPower:        100,
	models.OilPower:         150,
	models.NuclearPower:     875,
	models.WindPower:        42,
	models.Farm:             25,
	models.UraniumMine:      417,
	models.IronMine:         134,
	models.CoalMine:         34,
	models.OilWell:          50,
	models.BauxiteMine:      134,
	models.LeadMine:         125,
	models.OilRefinery:      334,
	models.SteelMill:        334,
	models.AluminumRefinery: 209,
	models.MunitionsFactory: 292,
	models.PoliceStation:    63,
	models.Hospital:         84,
	models.RecyclingCenter:  209,
	models.Subway:           271,
	models.Supermarket:      50,
	models.Bank:             150,
	models.Mall:             450,
	models.Stadium:          1013,
}

// UpkeepPerTurn returns the money upkeep of one improvement per turn
func UpkeepPerTurn(imp models.Improvement) float64 {
	return upkeepPerTurn[imp]
}

// Consumption is a raw input burned by an improvement each turn
type Consumption struct {
	Commodity models.Commodity
	// Fixed is burned per building per turn
	Fixed float64
	// PerInfra is burned per building per point of city infrastructure
	PerInfra float64
}

// consumption lists the inputs of power plants and manufacturing
var consumption = map[models.Improvement][]Consumption{
	models.CoalPower:        {{Commodity: models.CommodityCoal, PerInfra: 0.1 / 100}},
	models.OilPower:         {{Commodity: models.CommodityOil, PerInfra: 0.1 / 100}},
	models.NuclearPower:     {{Commodity: models.CommodityUranium, PerInfra: 0.2 / 1000}},
	models.OilRefinery:      {{Commodity: models.CommodityOil, Fixed: 0.5}},
	models.SteelMill:        {{Commodity: models.CommodityIron, Fixed: 0.75}, {Commodity: models.CommodityCoal, Fixed: 0.75}},
	models.AluminumRefinery: {{Commodity: models.CommodityBauxite, Fixed: 0.75}},
	models.MunitionsFactory: {{Commodity: models.CommodityLead, Fixed: 1.5}},
}

// ConsumptionOf returns the per-turn inputs of an improvement
func ConsumptionOf(imp models.Improvement) []Consumption {
	return consumption[imp]
}
