// Package converter provides conversions between game API and model types
package converter

import (
	"github.com/napolitain/solver-pnw/internal/models"
	"github.com/napolitain/solver-pnw/internal/pnw"
)

// APIFieldName returns the API city field backing an improvement
func APIFieldName(imp models.Improvement) string {
	switch imp {
	case models.CoalPower:
		return "coal_power"
	case models.OilPower:
		return "oil_power"
	case models.WindPower:
		return "wind_power"
	case models.NuclearPower:
		return "nuclear_power"
	case models.CoalMine:
		return "coal_mine"
	case models.OilWell:
		return "oil_well"
	case models.UraniumMine:
		return "uranium_mine"
	case models.LeadMine:
		return "lead_mine"
	case models.IronMine:
		return "iron_mine"
	case models.BauxiteMine:
		return "bauxite_mine"
	case models.Farm:
		return "farm"
	case models.OilRefinery:
		return "oil_refinery"
	case models.AluminumRefinery:
		return "aluminum_refinery"
	case models.MunitionsFactory:
		return "munitions_factory"
	case models.SteelMill:
		return "steel_mill"
	case models.PoliceStation:
		return "police_station"
	case models.Hospital:
		return "hospital"
	case models.RecyclingCenter:
		return "recycling_center"
	case models.Subway:
		return "subway"
	case models.Supermarket:
		return "supermarket"
	case models.Bank:
		return "bank"
	case models.Mall:
		return "shopping_mall"
	case models.Stadium:
		return "stadium"
	case models.Barracks:
		return "barracks"
	case models.Factory:
		return "factory"
	case models.Hangar:
		return "hangar"
	case models.Drydock:
		return "drydock"
	}
	return ""
}

// ImprovementFromAPIField converts an API city field name to an improvement
func ImprovementFromAPIField(field string) (models.Improvement, bool) {
	for _, imp := range models.AllImprovements() {
		if APIFieldName(imp) == field {
			return imp, true
		}
	}
	return "", false
}

// APICityToCounts converts an API city's improvements to model counts
func APICityToCounts(c *pnw.City) models.ImprovementCounts {
	return models.ImprovementCounts{
		CoalPower:        c.CoalPower,
		OilPower:         c.OilPower,
		WindPower:        c.WindPower,
		NuclearPower:     c.NuclearPower,
		CoalMine:         c.CoalMine,
		OilWell:          c.OilWell,
		UraniumMine:      c.UraniumMine,
		LeadMine:         c.LeadMine,
		IronMine:         c.IronMine,
		BauxiteMine:      c.BauxiteMine,
		Farm:             c.Farm,
		OilRefinery:      c.OilRefinery,
		AluminumRefinery: c.AluminumRefinery,
		MunitionsFactory: c.MunitionsFactory,
		SteelMill:        c.SteelMill,
		PoliceStation:    c.PoliceStation,
		Hospital:         c.Hospital,
		RecyclingCenter:  c.RecyclingCenter,
		Subway:           c.Subway,
		Supermarket:      c.Supermarket,
		Bank:             c.Bank,
		Mall:             c.ShoppingMall,
		Stadium:          c.Stadium,
		Barracks:         c.Barracks,
		Factory:          c.Factory,
		Hangar:           c.Hangar,
		Drydock:          c.Drydock,
	}
}

// APIProjectsToFlags converts the API's project booleans to model flags
func APIProjectsToFlags(n *pnw.Nation) models.ProjectFlags {
	return models.ProjectFlags{
		GreenTechnologies:         n.GreenTechnologies,
		MassIrrigation:            n.MassIrrigation,
		RecyclingInitiative:       n.RecyclingInitiative,
		ClinicalResearchCenter:    n.ClinicalResearchCenter,
		SpecializedPoliceTraining: n.SpecializedPoliceTrainingProgram,
		AdvancedEngineeringCorps:  n.AdvancedEngineeringCorps,
		CenterForCivilEngineering: n.CenterForCivilEngineering,
	}
}
