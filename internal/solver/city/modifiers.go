package city

import (
	"math"

	"github.com/napolitain/solver-pnw/internal/models"
)

// Modifiers are the numeric effects of a nation's projects
type Modifiers struct {
	PoliceEffectiveness   float64 // crime removed per police station
	HospitalEffectiveness float64 // disease removed per hospital
	HospitalCap           int
	RecyclingCap          int

	FarmPollution             float64
	SubwayPollutionOffset     float64
	RecyclingPollutionOffset  float64
	ManufacturingPollutionMul float64

	// InfrastructureMultiplier scales infrastructure into slots
	InfrastructureMultiplier float64
}

// ModifiersFor derives modifiers from unlocked projects
func ModifiersFor(p models.ProjectFlags) Modifiers {
	m := Modifiers{
		PoliceEffectiveness:       2.5,
		HospitalEffectiveness:     2.5,
		HospitalCap:               5,
		RecyclingCap:              3,
		FarmPollution:             2,
		SubwayPollutionOffset:     45,
		RecyclingPollutionOffset:  70,
		ManufacturingPollutionMul: 1.0,
		InfrastructureMultiplier:  1.0,
	}

	if p.SpecializedPoliceTraining {
		m.PoliceEffectiveness = 3.5
	}
	if p.ClinicalResearchCenter {
		m.HospitalEffectiveness = 3.5
		m.HospitalCap = 6
	}
	if p.RecyclingInitiative {
		m.RecyclingCap = 4
		m.RecyclingPollutionOffset = 75
	}
	if p.GreenTechnologies {
		m.FarmPollution = 1
		m.SubwayPollutionOffset = 70
		m.ManufacturingPollutionMul = 0.75
	}
	if p.AdvancedEngineeringCorps && p.CenterForCivilEngineering {
		m.InfrastructureMultiplier = 1.05
	}

	return m
}

// EffectiveInfrastructure applies the project multiplier to nominal
// infrastructure. Negative, NaN or infinite input counts as 0; finite input
// above MaxInfrastructure counts as MaxInfrastructure.
func EffectiveInfrastructure(infra float64, m Modifiers) float64 {
	return clampInfrastructure(infra) * m.InfrastructureMultiplier
}

func clampInfrastructure(infra float64) float64 {
	if math.IsNaN(infra) || math.IsInf(infra, 0) || infra < 0 {
		return 0
	}
	return min(infra, MaxInfrastructure)
}

// SlotBudget returns the total number of improvement slots
func SlotBudget(infra float64, m Modifiers) int {
	// epsilon keeps 2000*1.05 from flooring to 41
	return int(math.Floor(EffectiveInfrastructure(infra, m)/InfraPerSlot + 1e-9))
}

// Cap returns the hard cap of an improvement. Power plants are only bounded
// by the slot budget.
func (m Modifiers) Cap(imp models.Improvement, impTotal int) int {
	switch imp {
	case models.Hospital:
		return m.HospitalCap
	case models.RecyclingCenter:
		return m.RecyclingCap
	case models.CoalPower, models.OilPower, models.WindPower, models.NuclearPower:
		return max(impTotal, 0)
	}
	return staticCaps[imp]
}
