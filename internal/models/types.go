package models

// ResourceType represents a raw resource that can be mined in a city
type ResourceType string

const (
	Oil     ResourceType = "oil"
	Coal    ResourceType = "coal"
	Iron    ResourceType = "iron"
	Bauxite ResourceType = "bauxite"
	Lead    ResourceType = "lead"
	Uranium ResourceType = "uranium"
)

// AllResourceTypes returns all minable resource types
func AllResourceTypes() []ResourceType {
	return []ResourceType{Oil, Coal, Iron, Bauxite, Lead, Uranium}
}

// Improvement represents a city improvement category
type Improvement string

const (
	CoalPower        Improvement = "coalpower"
	OilPower         Improvement = "oilpower"
	WindPower        Improvement = "windpower"
	NuclearPower     Improvement = "nuclearpower"
	CoalMine         Improvement = "coalmine"
	OilWell          Improvement = "oilwell"
	UraniumMine      Improvement = "uramine"
	LeadMine         Improvement = "leadmine"
	IronMine         Improvement = "ironmine"
	BauxiteMine      Improvement = "bauxitemine"
	Farm             Improvement = "farm"
	OilRefinery      Improvement = "gasrefinery"
	AluminumRefinery Improvement = "aluminumrefinery"
	MunitionsFactory Improvement = "munitionsfactory"
	SteelMill        Improvement = "steelmill"
	PoliceStation    Improvement = "policestation"
	Hospital         Improvement = "hospital"
	RecyclingCenter  Improvement = "recyclingcenter"
	Subway           Improvement = "subway"
	Supermarket      Improvement = "supermarket"
	Bank             Improvement = "bank"
	Mall             Improvement = "mall"
	Stadium          Improvement = "stadium"
	Barracks         Improvement = "barracks"
	Factory          Improvement = "factory"
	Hangar           Improvement = "hangars"
	Drydock          Improvement = "drydock"
)

// AllImprovements returns all improvements in output order
func AllImprovements() []Improvement {
	return []Improvement{
		CoalPower, OilPower, WindPower, NuclearPower,
		CoalMine, OilWell, UraniumMine, LeadMine, IronMine, BauxiteMine, Farm,
		OilRefinery, AluminumRefinery, MunitionsFactory, SteelMill,
		PoliceStation, Hospital, RecyclingCenter, Subway,
		Supermarket, Bank, Mall, Stadium,
		Barracks, Factory, Hangar, Drydock,
	}
}

// Key returns the plan record key for the improvement (e.g. "imp_coalpower")
func (i Improvement) Key() string {
	return "imp_" + string(i)
}

// ParseImprovement accepts either the bare name or the "imp_" key
func ParseImprovement(s string) (Improvement, bool) {
	for _, imp := range AllImprovements() {
		if s == string(imp) || s == imp.Key() {
			return imp, true
		}
	}
	return "", false
}

var improvementLabels = map[Improvement]string{
	CoalPower:        "Coal Power Plant",
	OilPower:         "Oil Power Plant",
	WindPower:        "Wind Power Plant",
	NuclearPower:     "Nuclear Power Plant",
	CoalMine:         "Coal Mine",
	OilWell:          "Oil Well",
	UraniumMine:      "Uranium Mine",
	LeadMine:         "Lead Mine",
	IronMine:         "Iron Mine",
	BauxiteMine:      "Bauxite Mine",
	Farm:             "Farm",
	OilRefinery:      "Oil Refinery",
	AluminumRefinery: "Aluminum Refinery",
	MunitionsFactory: "Munitions Factory",
	SteelMill:        "Steel Mill",
	PoliceStation:    "Police Station",
	Hospital:         "Hospital",
	RecyclingCenter:  "Recycling Center",
	Subway:           "Subway",
	Supermarket:      "Supermarket",
	Bank:             "Bank",
	Mall:             "Shopping Mall",
	Stadium:          "Stadium",
	Barracks:         "Barracks",
	Factory:          "Factory",
	Hangar:           "Hangar",
	Drydock:          "Drydock",
}

// Label returns a human readable name
func (i Improvement) Label() string {
	if l, ok := improvementLabels[i]; ok {
		return l
	}
	return string(i)
}

// Group classifies improvements by the pipeline stage that owns them
type Group string

const (
	GroupPower         Group = "power"
	GroupRaw           Group = "raw"
	GroupManufacturing Group = "manufacturing"
	GroupCivil         Group = "civil"
	GroupCommerce      Group = "commerce"
	GroupMilitary      Group = "military"
)

// Group returns the group the improvement belongs to. Subway is civil even
// though it also yields commerce.
func (i Improvement) Group() Group {
	switch i {
	case CoalPower, OilPower, WindPower, NuclearPower:
		return GroupPower
	case CoalMine, OilWell, UraniumMine, LeadMine, IronMine, BauxiteMine, Farm:
		return GroupRaw
	case OilRefinery, AluminumRefinery, MunitionsFactory, SteelMill:
		return GroupManufacturing
	case PoliceStation, Hospital, RecyclingCenter, Subway:
		return GroupCivil
	case Supermarket, Bank, Mall, Stadium:
		return GroupCommerce
	case Barracks, Factory, Hangar, Drydock:
		return GroupMilitary
	}
	return ""
}

// ImprovementsIn returns the improvements of a group in output order
func ImprovementsIn(g Group) []Improvement {
	var out []Improvement
	for _, imp := range AllImprovements() {
		if imp.Group() == g {
			out = append(out, imp)
		}
	}
	return out
}

// MineFor returns the extractor improvement for a resource
func MineFor(r ResourceType) Improvement {
	switch r {
	case Oil:
		return OilWell
	case Coal:
		return CoalMine
	case Iron:
		return IronMine
	case Bauxite:
		return BauxiteMine
	case Lead:
		return LeadMine
	case Uranium:
		return UraniumMine
	}
	return ""
}

// ResourceFor returns the resource mined by an extractor; farms and
// non-extractors return false.
func ResourceFor(i Improvement) (ResourceType, bool) {
	for _, r := range AllResourceTypes() {
		if MineFor(r) == i {
			return r, true
		}
	}
	return "", false
}

// ImprovementCounts is a deterministic struct of per-improvement slot counts
// (replaces map[Improvement]int)
type ImprovementCounts struct {
	CoalPower        int
	OilPower         int
	WindPower        int
	NuclearPower     int
	CoalMine         int
	OilWell          int
	UraniumMine      int
	LeadMine         int
	IronMine         int
	BauxiteMine      int
	Farm             int
	OilRefinery      int
	AluminumRefinery int
	MunitionsFactory int
	SteelMill        int
	PoliceStation    int
	Hospital         int
	RecyclingCenter  int
	Subway           int
	Supermarket      int
	Bank             int
	Mall             int
	Stadium          int
	Barracks         int
	Factory          int
	Hangar           int
	Drydock          int
}

// ptr returns the field backing an improvement
func (c *ImprovementCounts) ptr(i Improvement) *int {
	switch i {
	case CoalPower:
		return &c.CoalPower
	case OilPower:
		return &c.OilPower
	case WindPower:
		return &c.WindPower
	case NuclearPower:
		return &c.NuclearPower
	case CoalMine:
		return &c.CoalMine
	case OilWell:
		return &c.OilWell
	case UraniumMine:
		return &c.UraniumMine
	case LeadMine:
		return &c.LeadMine
	case IronMine:
		return &c.IronMine
	case BauxiteMine:
		return &c.BauxiteMine
	case Farm:
		return &c.Farm
	case OilRefinery:
		return &c.OilRefinery
	case AluminumRefinery:
		return &c.AluminumRefinery
	case MunitionsFactory:
		return &c.MunitionsFactory
	case SteelMill:
		return &c.SteelMill
	case PoliceStation:
		return &c.PoliceStation
	case Hospital:
		return &c.Hospital
	case RecyclingCenter:
		return &c.RecyclingCenter
	case Subway:
		return &c.Subway
	case Supermarket:
		return &c.Supermarket
	case Bank:
		return &c.Bank
	case Mall:
		return &c.Mall
	case Stadium:
		return &c.Stadium
	case Barracks:
		return &c.Barracks
	case Factory:
		return &c.Factory
	case Hangar:
		return &c.Hangar
	case Drydock:
		return &c.Drydock
	}
	return nil
}

// Get returns the count for an improvement
func (c *ImprovementCounts) Get(i Improvement) int {
	if p := c.ptr(i); p != nil {
		return *p
	}
	return 0
}

// Set sets the count for an improvement
func (c *ImprovementCounts) Set(i Improvement, n int) {
	if p := c.ptr(i); p != nil {
		*p = n
	}
}

// Add adds delta to the count for an improvement
func (c *ImprovementCounts) Add(i Improvement, delta int) {
	if p := c.ptr(i); p != nil {
		*p += delta
	}
}

// Each iterates over all improvements in output order
func (c *ImprovementCounts) Each(fn func(Improvement, int)) {
	for _, imp := range AllImprovements() {
		fn(imp, c.Get(imp))
	}
}

// EachNonZero iterates over improvements with non-zero counts
func (c *ImprovementCounts) EachNonZero(fn func(Improvement, int)) {
	for _, imp := range AllImprovements() {
		if n := c.Get(imp); n != 0 {
			fn(imp, n)
		}
	}
}

// Total returns the number of slots used by all improvements
func (c *ImprovementCounts) Total() int {
	total := 0
	c.Each(func(_ Improvement, n int) {
		total += n
	})
	return total
}

// GroupTotal returns the number of slots used by a group
func (c *ImprovementCounts) GroupTotal(g Group) int {
	total := 0
	for _, imp := range ImprovementsIn(g) {
		total += c.Get(imp)
	}
	return total
}
