package models

// ProjectName represents a national project as named by the game API
type ProjectName string

const (
	ProjectGreenTechnologies         ProjectName = "green_technologies"
	ProjectMassIrrigation            ProjectName = "mass_irrigation"
	ProjectRecyclingInitiative       ProjectName = "recycling_initiative"
	ProjectClinicalResearchCenter    ProjectName = "clinical_research_center"
	ProjectSpecializedPoliceTraining ProjectName = "specialized_police_training_program"
	ProjectAdvancedEngineeringCorps  ProjectName = "advanced_engineering_corps"
	ProjectCenterForCivilEngineering ProjectName = "center_for_civil_engineering"
)

// AllProjectNames returns the projects the allocator knows about
func AllProjectNames() []ProjectName {
	return []ProjectName{
		ProjectGreenTechnologies,
		ProjectMassIrrigation,
		ProjectRecyclingInitiative,
		ProjectClinicalResearchCenter,
		ProjectSpecializedPoliceTraining,
		ProjectAdvancedEngineeringCorps,
		ProjectCenterForCivilEngineering,
	}
}

// ProjectFlags tracks which projects a nation has unlocked (deterministic)
type ProjectFlags struct {
	GreenTechnologies         bool
	MassIrrigation            bool
	RecyclingInitiative       bool
	ClinicalResearchCenter    bool
	SpecializedPoliceTraining bool
	AdvancedEngineeringCorps  bool
	CenterForCivilEngineering bool
}

// Get returns whether a project is unlocked
func (p *ProjectFlags) Get(name ProjectName) bool {
	switch name {
	case ProjectGreenTechnologies:
		return p.GreenTechnologies
	case ProjectMassIrrigation:
		return p.MassIrrigation
	case ProjectRecyclingInitiative:
		return p.RecyclingInitiative
	case ProjectClinicalResearchCenter:
		return p.ClinicalResearchCenter
	case ProjectSpecializedPoliceTraining:
		return p.SpecializedPoliceTraining
	case ProjectAdvancedEngineeringCorps:
		return p.AdvancedEngineeringCorps
	case ProjectCenterForCivilEngineering:
		return p.CenterForCivilEngineering
	}
	return false
}

// Set sets whether a project is unlocked. Unknown names are ignored.
func (p *ProjectFlags) Set(name ProjectName, unlocked bool) {
	switch name {
	case ProjectGreenTechnologies:
		p.GreenTechnologies = unlocked
	case ProjectMassIrrigation:
		p.MassIrrigation = unlocked
	case ProjectRecyclingInitiative:
		p.RecyclingInitiative = unlocked
	case ProjectClinicalResearchCenter:
		p.ClinicalResearchCenter = unlocked
	case ProjectSpecializedPoliceTraining:
		p.SpecializedPoliceTraining = unlocked
	case ProjectAdvancedEngineeringCorps:
		p.AdvancedEngineeringCorps = unlocked
	case ProjectCenterForCivilEngineering:
		p.CenterForCivilEngineering = unlocked
	}
}

// SetByString sets a project from its API name (for JSON and GraphQL input)
func (p *ProjectFlags) SetByString(name string, unlocked bool) {
	p.Set(ProjectName(name), unlocked)
}

// Each iterates over all projects in deterministic order
func (p *ProjectFlags) Each(fn func(ProjectName, bool)) {
	for _, name := range AllProjectNames() {
		fn(name, p.Get(name))
	}
}

// Nominal fallbacks used when the data source omits a field
const (
	DefaultInfrastructure = 2000.0
	DefaultLand           = 2000.0
)

// CityAttributes is the allocator's view of a single city
type CityAttributes struct {
	Infrastructure float64
	Land           float64
	Continent      Continent
	// Existing is informational only; plans are computed from scratch.
	Existing ImprovementCounts
}

// NationProfile carries the nation-level inputs of the allocator
type NationProfile struct {
	Projects  ProjectFlags
	CityCount int
}
