package city

import "github.com/napolitain/solver-pnw/internal/models"

// basePollution is the pollution each unit adds before project modifiers.
// Farms and manufacturing are adjusted by Modifiers.
var basePollution = map[models.Improvement]float64{
	models.CoalPower:        8,
	models.OilPower:         6,
	models.CoalMine:         12,
	models.IronMine:         12,
	models.UraniumMine:      20,
	models.LeadMine:         12,
	models.PoliceStation:    1,
	models.Hospital:         4,
	models.Stadium:          5,
	models.Mall:             2,
	models.OilRefinery:      32,
	models.SteelMill:        40,
	models.AluminumRefinery: 40,
	models.MunitionsFactory: 32,
}

// EnvironmentState is a snapshot of a city's pollution, disease and crime
type EnvironmentState struct {
	Pollution float64 `json:"pollution"`
	Disease   float64 `json:"disease"`
	Crime     float64 `json:"crime"`
}

// Evaluate computes the environment of a (possibly partial) plan
func Evaluate(c *models.ImprovementCounts, city models.CityAttributes, m Modifiers) EnvironmentState {
	pollution := Pollution(c, m)
	return EnvironmentState{
		Pollution: pollution,
		Disease:   disease(c, city, m, pollution),
		Crime:     Crime(c, city, m),
	}
}

// Pollution sums per-unit pollution minus subway and recycling offsets.
// The result is not floored at zero.
func Pollution(c *models.ImprovementCounts, m Modifiers) float64 {
	total := 0.0
	c.EachNonZero(func(imp models.Improvement, n int) {
		rate := basePollution[imp]
		if imp.Group() == models.GroupManufacturing {
			rate *= m.ManufacturingPollutionMul
		}
		if imp == models.Farm {
			rate = m.FarmPollution
		}
		total += float64(n) * rate
	})
	total -= float64(c.Subway) * m.SubwayPollutionOffset
	total -= float64(c.RecyclingCenter) * m.RecyclingPollutionOffset
	return total
}

// Disease follows the game's density-driven disease formula
func Disease(c *models.ImprovementCounts, city models.CityAttributes, m Modifiers) float64 {
	return disease(c, city, m, Pollution(c, m))
}

func disease(c *models.ImprovementCounts, city models.CityAttributes, m Modifiers, pollution float64) float64 {
	pop := basePopulation(city)
	land := city.Land
	if land <= 0 {
		land = models.DefaultLand
	}
	density := pop / land
	return ((density*density*0.01)-25)/100 +
		pop/100000 +
		pollution*0.05 -
		float64(c.Hospital)*m.HospitalEffectiveness
}

// Crime falls with commerce and police stations
func Crime(c *models.ImprovementCounts, city models.CityAttributes, m Modifiers) float64 {
	gap := float64(103 - CommercePercent(c))
	return (gap*gap+basePopulation(city))/111111 -
		float64(c.PoliceStation)*m.PoliceEffectiveness
}

// CommercePercent is the commerce bonus of a plan, capped at 100
func CommercePercent(c *models.ImprovementCounts) int {
	return min(RawCommercePercent(c), MaxCommercePercent)
}

// RawCommercePercent is the uncapped commerce sum, used to check the cap
func RawCommercePercent(c *models.ImprovementCounts) int {
	total := 0
	for imp, bonus := range commerceBonus {
		total += c.Get(imp) * bonus
	}
	return total
}

func basePopulation(city models.CityAttributes) float64 {
	if city.Infrastructure <= 0 {
		return 0
	}
	return city.Infrastructure * 100
}
