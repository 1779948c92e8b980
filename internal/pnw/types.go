package pnw

// Nation is a nation as returned by the GraphQL API. IDs are strings on
// the wire.
type Nation struct {
	ID         string  `json:"id"`
	NationName string  `json:"nation_name"`
	LeaderName string  `json:"leader_name"`
	Continent  string  `json:"continent"`
	Score      float64 `json:"score"`
	Population float64 `json:"population"`

	Soldiers int `json:"soldiers"`
	Tanks    int `json:"tanks"`
	Aircraft int `json:"aircraft"`
	Ships    int `json:"ships"`
	Spies    int `json:"spies"`
	Missiles int `json:"missiles"`
	Nukes    int `json:"nukes"`

	Money     float64 `json:"money"`
	Coal      float64 `json:"coal"`
	Oil       float64 `json:"oil"`
	Uranium   float64 `json:"uranium"`
	Iron      float64 `json:"iron"`
	Bauxite   float64 `json:"bauxite"`
	Lead      float64 `json:"lead"`
	Gasoline  float64 `json:"gasoline"`
	Munitions float64 `json:"munitions"`
	Steel     float64 `json:"steel"`
	Aluminum  float64 `json:"aluminum"`
	Food      float64 `json:"food"`
	Credits   float64 `json:"credits"`

	GreenTechnologies                bool `json:"green_technologies"`
	MassIrrigation                   bool `json:"mass_irrigation"`
	RecyclingInitiative              bool `json:"recycling_initiative"`
	ClinicalResearchCenter           bool `json:"clinical_research_center"`
	SpecializedPoliceTrainingProgram bool `json:"specialized_police_training_program"`
	AdvancedEngineeringCorps         bool `json:"advanced_engineering_corps"`
	CenterForCivilEngineering        bool `json:"center_for_civil_engineering"`

	Alliance *Alliance    `json:"alliance"`
	Cities   []City       `json:"cities"`
	BankRecs []BankRecord `json:"bankrecs"`
}

// Alliance is the short form of an alliance
type Alliance struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// City is a city as returned by the API. Infrastructure and land may be
// absent for cities the key cannot see.
type City struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Date           string   `json:"date"`
	Infrastructure *float64 `json:"infrastructure"`
	Land           *float64 `json:"land"`

	CoalPower        int `json:"coal_power"`
	OilPower         int `json:"oil_power"`
	NuclearPower     int `json:"nuclear_power"`
	WindPower        int `json:"wind_power"`
	CoalMine         int `json:"coal_mine"`
	OilWell          int `json:"oil_well"`
	UraniumMine      int `json:"uranium_mine"`
	LeadMine         int `json:"lead_mine"`
	IronMine         int `json:"iron_mine"`
	BauxiteMine      int `json:"bauxite_mine"`
	Farm             int `json:"farm"`
	OilRefinery      int `json:"oil_refinery"`
	AluminumRefinery int `json:"aluminum_refinery"`
	MunitionsFactory int `json:"munitions_factory"`
	SteelMill        int `json:"steel_mill"`
	PoliceStation    int `json:"police_station"`
	Hospital         int `json:"hospital"`
	RecyclingCenter  int `json:"recycling_center"`
	Subway           int `json:"subway"`
	Supermarket      int `json:"supermarket"`
	Bank             int `json:"bank"`
	ShoppingMall     int `json:"shopping_mall"`
	Stadium          int `json:"stadium"`
	Barracks         int `json:"barracks"`
	Factory          int `json:"factory"`
	Hangar           int `json:"hangar"`
	Drydock          int `json:"drydock"`
}

// BankRecord is a bank transfer as returned by the API
type BankRecord struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Note       string `json:"note"`

	Money     float64 `json:"money"`
	Coal      float64 `json:"coal"`
	Oil       float64 `json:"oil"`
	Uranium   float64 `json:"uranium"`
	Iron      float64 `json:"iron"`
	Bauxite   float64 `json:"bauxite"`
	Lead      float64 `json:"lead"`
	Gasoline  float64 `json:"gasoline"`
	Munitions float64 `json:"munitions"`
	Steel     float64 `json:"steel"`
	Aluminum  float64 `json:"aluminum"`
	Food      float64 `json:"food"`
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type nationsResponse struct {
	Data struct {
		Nations struct {
			Data []Nation `json:"data"`
		} `json:"nations"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}
