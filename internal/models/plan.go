package models

// BuildPlan is the allocator's output for a single city
type BuildPlan struct {
	InfraNeeded float64
	ImpTotal    int
	Counts      ImprovementCounts
}

// Used returns the number of slots allocated
func (p *BuildPlan) Used() int {
	return p.Counts.Total()
}

// Free returns the number of slots left unallocated
func (p *BuildPlan) Free() int {
	return p.ImpTotal - p.Used()
}

// Overrides returns the plan's counts as a full override set. Feeding them
// back into the allocator reproduces the plan.
func (p *BuildPlan) Overrides() Overrides {
	o := NewOverrides()
	p.Counts.Each(func(imp Improvement, n int) {
		o.Set(imp, n)
	})
	return o
}

// PlanRecord is the flat wire format consumed by renderers. Field order is
// the JSON key order and must not change.
type PlanRecord struct {
	InfraNeeded         float64 `json:"infra_needed"`
	ImpTotal            int     `json:"imp_total"`
	ImpCoalPower        int     `json:"imp_coalpower"`
	ImpOilPower         int     `json:"imp_oilpower"`
	ImpWindPower        int     `json:"imp_windpower"`
	ImpNuclearPower     int     `json:"imp_nuclearpower"`
	ImpCoalMine         int     `json:"imp_coalmine"`
	ImpOilWell          int     `json:"imp_oilwell"`
	ImpUraniumMine      int     `json:"imp_uramine"`
	ImpLeadMine         int     `json:"imp_leadmine"`
	ImpIronMine         int     `json:"imp_ironmine"`
	ImpBauxiteMine      int     `json:"imp_bauxitemine"`
	ImpFarm             int     `json:"imp_farm"`
	ImpGasRefinery      int     `json:"imp_gasrefinery"`
	ImpAluminumRefinery int     `json:"imp_aluminumrefinery"`
	ImpMunitionsFactory int     `json:"imp_munitionsfactory"`
	ImpSteelMill        int     `json:"imp_steelmill"`
	ImpPoliceStation    int     `json:"imp_policestation"`
	ImpHospital         int     `json:"imp_hospital"`
	ImpRecyclingCenter  int     `json:"imp_recyclingcenter"`
	ImpSubway           int     `json:"imp_subway"`
	ImpSupermarket      int     `json:"imp_supermarket"`
	ImpBank             int     `json:"imp_bank"`
	ImpMall             int     `json:"imp_mall"`
	ImpStadium          int     `json:"imp_stadium"`
	ImpBarracks         int     `json:"imp_barracks"`
	ImpFactory          int     `json:"imp_factory"`
	ImpHangars          int     `json:"imp_hangars"`
	ImpDrydock          int     `json:"imp_drydock"`
}

// Record projects the plan into the wire format
func (p *BuildPlan) Record() PlanRecord {
	c := p.Counts
	return PlanRecord{
		InfraNeeded:         p.InfraNeeded,
		ImpTotal:            p.ImpTotal,
		ImpCoalPower:        c.CoalPower,
		ImpOilPower:         c.OilPower,
		ImpWindPower:        c.WindPower,
		ImpNuclearPower:     c.NuclearPower,
		ImpCoalMine:         c.CoalMine,
		ImpOilWell:          c.OilWell,
		ImpUraniumMine:      c.UraniumMine,
		ImpLeadMine:         c.LeadMine,
		ImpIronMine:         c.IronMine,
		ImpBauxiteMine:      c.BauxiteMine,
		ImpFarm:             c.Farm,
		ImpGasRefinery:      c.OilRefinery,
		ImpAluminumRefinery: c.AluminumRefinery,
		ImpMunitionsFactory: c.MunitionsFactory,
		ImpSteelMill:        c.SteelMill,
		ImpPoliceStation:    c.PoliceStation,
		ImpHospital:         c.Hospital,
		ImpRecyclingCenter:  c.RecyclingCenter,
		ImpSubway:           c.Subway,
		ImpSupermarket:      c.Supermarket,
		ImpBank:             c.Bank,
		ImpMall:             c.Mall,
		ImpStadium:          c.Stadium,
		ImpBarracks:         c.Barracks,
		ImpFactory:          c.Factory,
		ImpHangars:          c.Hangar,
		ImpDrydock:          c.Drydock,
	}
}

// Plan converts a record back into a BuildPlan
func (r PlanRecord) Plan() *BuildPlan {
	return &BuildPlan{
		InfraNeeded: r.InfraNeeded,
		ImpTotal:    r.ImpTotal,
		Counts: ImprovementCounts{
			CoalPower:        r.ImpCoalPower,
			OilPower:         r.ImpOilPower,
			WindPower:        r.ImpWindPower,
			NuclearPower:     r.ImpNuclearPower,
			CoalMine:         r.ImpCoalMine,
			OilWell:          r.ImpOilWell,
			UraniumMine:      r.ImpUraniumMine,
			LeadMine:         r.ImpLeadMine,
			IronMine:         r.ImpIronMine,
			BauxiteMine:      r.ImpBauxiteMine,
			Farm:             r.ImpFarm,
			OilRefinery:      r.ImpGasRefinery,
			AluminumRefinery: r.ImpAluminumRefinery,
			MunitionsFactory: r.ImpMunitionsFactory,
			SteelMill:        r.ImpSteelMill,
			PoliceStation:    r.ImpPoliceStation,
			Hospital:         r.ImpHospital,
			RecyclingCenter:  r.ImpRecyclingCenter,
			Subway:           r.ImpSubway,
			Supermarket:      r.ImpSupermarket,
			Bank:             r.ImpBank,
			Mall:             r.ImpMall,
			Stadium:          r.ImpStadium,
			Barracks:         r.ImpBarracks,
			Factory:          r.ImpFactory,
			Hangar:           r.ImpHangars,
			Drydock:          r.ImpDrydock,
		},
	}
}
