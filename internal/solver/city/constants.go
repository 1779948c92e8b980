package city

import "github.com/napolitain/solver-pnw/internal/models"

// Slot budget
const (
	// InfraPerSlot is the infrastructure needed for one improvement slot
	InfraPerSlot = 50.0

	// MaxInfrastructure bounds the infrastructure a plan is computed for so
	// slot and reactor counts stay within int range
	MaxInfrastructure = 1e9

	// ManufacturingSplitThreshold is the number of free slots at which half
	// of them are reserved for manufacturing instead of raw resources
	ManufacturingSplitThreshold = 10
)

// Power
const (
	NuclearCoverage        = 2000.0
	CoalCoverage           = 500.0
	OilCoverage            = 500.0
	WindCoverage           = 250.0
	UraniumMinesPerReactor = 2
)

// Commerce bonuses in percentage points
const (
	MaxCommercePercent  = 100
	StadiumCommerce     = 12
	MallCommerce        = 8
	BankCommerce        = 5
	SupermarketCommerce = 3
	SubwayCommerce      = 8
)

// Environment thresholds that trigger mitigating buildings
const (
	DiseaseThreshold   = 5.0
	PollutionThreshold = 200.0
	CrimeThreshold     = 5.0
)

// WhaleCityCount is the city count at which the whale military build is used
const WhaleCityCount = 15

// staticCaps holds hard caps that do not depend on projects. Power plants
// have no static cap; hospitals and recycling centers come from Modifiers.
var staticCaps = map[models.Improvement]int{
	models.CoalMine:         10,
	models.OilWell:          10,
	models.IronMine:         10,
	models.BauxiteMine:      10,
	models.LeadMine:         10,
	models.UraniumMine:      5,
	models.Farm:             20,
	models.OilRefinery:      5,
	models.SteelMill:        5,
	models.AluminumRefinery: 5,
	models.MunitionsFactory: 5,
	models.PoliceStation:    5,
	models.Subway:           1,
	models.Stadium:          3,
	models.Mall:             4,
	models.Bank:             5,
	models.Supermarket:      4,
	models.Barracks:         5,
	models.Factory:          5,
	models.Hangar:           5,
	models.Drydock:          3,
}

// commerceBonus is the commerce percentage each improvement yields
var commerceBonus = map[models.Improvement]int{
	models.Stadium:     StadiumCommerce,
	models.Mall:        MallCommerce,
	models.Bank:        BankCommerce,
	models.Supermarket: SupermarketCommerce,
	models.Subway:      SubwayCommerce,
}

// commerceOrder is the fill order of the commerce stage
var commerceOrder = []models.Improvement{
	models.Stadium, models.Mall, models.Bank, models.Supermarket, models.Subway,
}

// rawOrder is the fill priority of raw resources
var rawOrder = []models.Improvement{
	models.UraniumMine, models.OilWell, models.CoalMine, models.IronMine,
	models.BauxiteMine, models.LeadMine, models.Farm,
}

// manufacturingOrder is the fill priority of manufacturing
var manufacturingOrder = []models.Improvement{
	models.OilRefinery, models.SteelMill, models.AluminumRefinery, models.MunitionsFactory,
}

// MilitaryRole names the military build used for a plan
type MilitaryRole string

const (
	RoleRaider MilitaryRole = "raider"
	RoleWhale  MilitaryRole = "whale"
	RoleCustom MilitaryRole = "custom"
)

// militaryBuilds are the default barracks/factory/hangar/drydock counts
var militaryBuilds = map[MilitaryRole]models.ImprovementCounts{
	RoleRaider: {Barracks: 5, Factory: 5, Hangar: 0, Drydock: 0},
	RoleWhale:  {Barracks: 0, Factory: 2, Hangar: 5, Drydock: 1},
}
