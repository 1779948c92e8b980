package city

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/solver-pnw/internal/models"
)

func nominalCity(continent models.Continent) models.CityAttributes {
	return models.CityAttributes{
		Infrastructure: 2000,
		Land:           2000,
		Continent:      continent,
	}
}

func solveStrict(t *testing.T, city models.CityAttributes, nation models.NationProfile, o models.Overrides) *Result {
	t.Helper()
	res := NewSolverWithOptions(city, nation, o, Options{Strict: true}).Solve()
	require.NotNil(t, res.Plan)
	require.NoError(t, Check(res.Plan))
	return res
}

func TestNominalCityNorthAmerica(t *testing.T) {
	res := solveStrict(t, nominalCity(models.NorthAmerica), models.NationProfile{CityCount: 10}, models.NewOverrides())
	c := res.Plan.Counts

	assert.Equal(t, 40, res.Plan.ImpTotal)
	assert.Equal(t, 2000.0, res.Plan.InfraNeeded)
	assert.Equal(t, 1, c.NuclearPower)
	assert.Equal(t, RoleRaider, res.Role)
	assert.Equal(t, 5, c.Barracks)
	assert.Equal(t, 5, c.Factory)
	assert.Equal(t, 0, c.Hangar)
	assert.Equal(t, 0, c.Drydock)

	assert.Equal(t, 5, c.PoliceStation)
	assert.Equal(t, 5, c.Hospital)
	assert.Equal(t, 3, c.RecyclingCenter)
	assert.Equal(t, 1, c.Subway)

	assert.Equal(t, 3, c.Stadium)
	assert.Equal(t, 4, c.Mall)
	assert.Equal(t, 4, c.Bank)
	assert.Equal(t, 1, c.Supermarket)
	assert.Equal(t, 99, CommercePercent(&c))

	assert.Equal(t, 2, res.UraniumNeeded)
	assert.Equal(t, 3, c.UraniumMine)
	assert.Equal(t, 0, c.CoalMine)
	assert.Equal(t, 40, res.Plan.Used())
}

func TestUraniumFillsToCapBeforeOtherMines(t *testing.T) {
	o := models.NewOverrides()
	o.Set(models.Barracks, 0)

	res := solveStrict(t, nominalCity(models.NorthAmerica), models.NationProfile{CityCount: 10}, o)
	c := res.Plan.Counts

	assert.Equal(t, RoleCustom, res.Role)
	assert.Equal(t, 1, c.NuclearPower)
	assert.Equal(t, 2, res.UraniumNeeded)
	assert.Equal(t, 5, c.UraniumMine)
	// 13 free: 6 reserved for manufacturing, unused and handed back to coal
	assert.Equal(t, 8, c.CoalMine)
	assert.Equal(t, 0, c.IronMine)
	assert.Equal(t, 40, res.Plan.Used())
}

func TestManufacturingReserveThreshold(t *testing.T) {
	// 27 slots go to power, safety and commerce; barracks set what is left
	tests := []struct {
		name     string
		barracks int
		coal     int
		steel    int
	}{
		{"nine free, no reserve", 4, 7, 0},
		{"ten free, half reserved", 3, 6, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := models.NewOverrides()
			o.Set(models.Barracks, tt.barracks)
			o.Set(models.IronMine, 2)

			res := solveStrict(t, nominalCity(models.Europe), models.NationProfile{}, o)
			c := res.Plan.Counts

			assert.Equal(t, 2, c.IronMine)
			assert.Equal(t, tt.coal, c.CoalMine)
			assert.Equal(t, tt.steel, c.SteelMill)
			assert.Equal(t, 40, res.Plan.Used(), "reserve left over goes back to raw")
		})
	}
}

func TestHugeInfrastructureStaysBounded(t *testing.T) {
	for _, infra := range []float64{1e21, math.MaxFloat64} {
		city := models.CityAttributes{Infrastructure: infra, Land: 2000, Continent: models.NorthAmerica}
		res := solveStrict(t, city, models.NationProfile{}, models.NewOverrides())
		c := res.Plan.Counts

		assert.Equal(t, 20000000, res.Plan.ImpTotal, "infra %g", infra)
		assert.Equal(t, MaxInfrastructure, res.Plan.InfraNeeded)
		assert.Equal(t, 500000, c.NuclearPower)
		assert.True(t, res.Report.Valid)
		c.Each(func(imp models.Improvement, n int) {
			assert.GreaterOrEqual(t, n, 0, "%s", imp)
		})
	}
}

func TestCheckRejectsNegativeCounts(t *testing.T) {
	plan := &models.BuildPlan{ImpTotal: 40}
	plan.Counts.Farm = -3
	assert.ErrorIs(t, Check(plan), ErrNegativeCount)

	plan = &models.BuildPlan{ImpTotal: -1}
	assert.ErrorIs(t, Check(plan), ErrNegativeCount)

	plan.ImpTotal = 0
	assert.NoError(t, Check(plan))
}

func TestWhaleMilitary(t *testing.T) {
	res := solveStrict(t, nominalCity(models.NorthAmerica), models.NationProfile{CityCount: 15}, models.NewOverrides())
	c := res.Plan.Counts

	assert.Equal(t, RoleWhale, res.Role)
	assert.Equal(t, 0, c.Barracks)
	assert.Equal(t, 2, c.Factory)
	assert.Equal(t, 5, c.Hangar)
	assert.Equal(t, 1, c.Drydock)
}

func TestCustomMilitaryZeroesUnsetCategories(t *testing.T) {
	o := models.NewOverrides()
	o.Set(models.Hangar, 3)

	res := solveStrict(t, nominalCity(models.NorthAmerica), models.NationProfile{CityCount: 20}, o)
	c := res.Plan.Counts

	assert.Equal(t, RoleCustom, res.Role)
	assert.Equal(t, 0, c.Barracks)
	assert.Equal(t, 0, c.Factory)
	assert.Equal(t, 3, c.Hangar)
	assert.Equal(t, 0, c.Drydock)
}

func TestUraniumGatedOnSouthAmerica(t *testing.T) {
	o := models.NewOverrides()
	o.Set(models.NuclearPower, 1)

	res := solveStrict(t, nominalCity(models.SouthAmerica), models.NationProfile{CityCount: 5}, o)
	c := res.Plan.Counts

	assert.Equal(t, 1, c.NuclearPower)
	assert.Equal(t, 0, c.UraniumMine, "uranium is not minable in South America")
	assert.Equal(t, 2, res.UraniumNeeded)
	assert.True(t, res.Report.Has(StageAssemble))
	require.NotEmpty(t, res.Report.Warnings)

	found := false
	for _, w := range res.Report.Warnings {
		if w.Improvement == models.UraniumMine {
			found = true
			assert.Equal(t, 2, w.Requested)
			assert.Equal(t, 0, w.Granted)
		}
	}
	assert.True(t, found, "expected a uranium shortfall warning")
}

func TestUraniumOverrideIgnoredWhereNotMinable(t *testing.T) {
	for _, continent := range models.AllContinents() {
		if continent.Has(models.Uranium) {
			continue
		}
		t.Run(string(continent), func(t *testing.T) {
			o := models.NewOverrides()
			o.Set(models.UraniumMine, 4)
			o.Set(models.NuclearPower, 2)

			res := solveStrict(t, nominalCity(continent), models.NationProfile{}, o)
			assert.Equal(t, 0, res.Plan.Counts.UraniumMine)
			assert.True(t, res.Report.Has(StageRaw))
		})
	}
}

func TestUraniumOverrideHonouredWhereMinable(t *testing.T) {
	o := models.NewOverrides()
	o.Set(models.UraniumMine, 4)

	res := solveStrict(t, nominalCity(models.Africa), models.NationProfile{}, o)
	assert.Equal(t, 3, res.Plan.Counts.UraniumMine, "limited to the 3 free slots")
}

func TestTinyCity(t *testing.T) {
	city := models.CityAttributes{Infrastructure: 50, Land: 2000, Continent: models.NorthAmerica}

	res := solveStrict(t, city, models.NationProfile{CityCount: 3}, models.NewOverrides())
	assert.Equal(t, 1, res.Plan.ImpTotal)
	assert.LessOrEqual(t, res.Plan.Used(), 1)
	res.Plan.Counts.Each(func(imp models.Improvement, n int) {
		assert.LessOrEqual(t, n, 1, "%s", imp)
		assert.GreaterOrEqual(t, n, 0, "%s", imp)
	})
	assert.True(t, res.Report.Has(StageRebalance))
}

func TestZeroInfrastructure(t *testing.T) {
	for _, infra := range []float64{0, -100, 49.9} {
		city := models.CityAttributes{Infrastructure: infra, Land: 2000, Continent: models.Europe}
		res := solveStrict(t, city, models.NationProfile{}, models.NewOverrides())
		assert.Equal(t, 0, res.Plan.ImpTotal)
		assert.Equal(t, 0, res.Plan.Used())
	}
}

func TestCommerceOverridesOverCap(t *testing.T) {
	o := models.NewOverrides()
	o.Set(models.Stadium, 3)
	o.Set(models.Mall, 4)
	o.Set(models.Bank, 5)
	o.Set(models.Supermarket, 4)

	res := solveStrict(t, nominalCity(models.NorthAmerica), models.NationProfile{CityCount: 5}, o)
	c := res.Plan.Counts

	// fill order is stadium, mall, bank, supermarket with the subway's 8% first
	assert.Equal(t, 3, c.Stadium)
	assert.Equal(t, 4, c.Mall)
	assert.Equal(t, 4, c.Bank)
	assert.Equal(t, 1, c.Supermarket)
	assert.Equal(t, 1, c.Subway)
	assert.Equal(t, 99, RawCommercePercent(&c))

	truncated := map[models.Improvement]Finding{}
	for _, w := range res.Report.Warnings {
		if w.Stage == StageCommerce {
			truncated[w.Improvement] = w
		}
	}
	require.Len(t, truncated, 2)
	assert.Equal(t, 5, truncated[models.Bank].Requested)
	assert.Equal(t, 4, truncated[models.Bank].Granted)
	assert.Equal(t, 4, truncated[models.Supermarket].Requested)
	assert.Equal(t, 1, truncated[models.Supermarket].Granted)
}

func TestBankOverrideClampedToCap(t *testing.T) {
	o := models.NewOverrides()
	o.Set(models.Bank, 10000)

	res := solveStrict(t, nominalCity(models.NorthAmerica), models.NationProfile{CityCount: 5}, o)
	c := res.Plan.Counts

	assert.Equal(t, 5, c.Bank)
	assert.Equal(t, 3, c.Stadium)
	assert.Equal(t, 3, c.Mall)
	assert.Equal(t, 2, c.Supermarket)
	// only 2 slots are left after commerce
	assert.Equal(t, 2, c.UraniumMine)

	again := solveStrict(t, nominalCity(models.NorthAmerica), models.NationProfile{CityCount: 5}, res.Plan.Overrides())
	assert.Equal(t, res.Plan.Counts, again.Plan.Counts)
	assert.Equal(t, res.Plan.Record(), again.Plan.Record())
}

func TestPowerOverridesReduceNuclear(t *testing.T) {
	o := models.NewOverrides()
	o.Set(models.CoalPower, 2)
	o.Set(models.WindPower, 2)

	city := nominalCity(models.NorthAmerica)
	city.Infrastructure = 3000
	res := solveStrict(t, city, models.NationProfile{}, o)
	c := res.Plan.Counts

	assert.Equal(t, 2, c.CoalPower)
	assert.Equal(t, 2, c.WindPower)
	// 3000 - 2*500 - 2*250 = 1500 uncovered
	assert.Equal(t, 1, c.NuclearPower)
	assert.Equal(t, 2, res.UraniumNeeded)
}

func TestFullyCoveredPowerNeedsNoReactor(t *testing.T) {
	o := models.NewOverrides()
	o.Set(models.OilPower, 4)

	res := solveStrict(t, nominalCity(models.Asia), models.NationProfile{}, o)
	assert.Equal(t, 0, res.Plan.Counts.NuclearPower)
	assert.Equal(t, 0, res.Plan.Counts.UraniumMine)
	assert.Equal(t, 0, res.UraniumNeeded)
}

func TestLargeCityBuildsManufacturing(t *testing.T) {
	city := models.CityAttributes{Infrastructure: 4000, Land: 4000, Continent: models.Europe}
	res := solveStrict(t, city, models.NationProfile{CityCount: 10}, models.NewOverrides())
	c := res.Plan.Counts

	assert.Equal(t, 80, res.Plan.ImpTotal)
	assert.Equal(t, 2, c.NuclearPower)
	assert.Equal(t, 0, c.UraniumMine)
	assert.Positive(t, c.CoalMine)
	assert.Positive(t, c.SteelMill)
	assert.LessOrEqual(t, c.SteelMill, min(c.CoalMine, c.IronMine))
	assert.LessOrEqual(t, c.MunitionsFactory, c.LeadMine)
	assert.Equal(t, 0, c.OilRefinery)
	assert.Equal(t, 0, c.AluminumRefinery)
}

func TestManufacturingOverrideLimitedByMines(t *testing.T) {
	o := models.NewOverrides()
	o.Set(models.OilWell, 2)
	o.Set(models.OilRefinery, 5)

	city := models.CityAttributes{Infrastructure: 4000, Land: 4000, Continent: models.SouthAmerica}
	res := solveStrict(t, city, models.NationProfile{}, o)

	assert.Equal(t, 2, res.Plan.Counts.OilWell)
	assert.Equal(t, 2, res.Plan.Counts.OilRefinery)
	assert.True(t, res.Report.Has(StageManufacturing))
}

func TestUnknownContinentOnlyFarms(t *testing.T) {
	city := models.CityAttributes{Infrastructure: 3000, Land: 3000, Continent: "zz"}
	res := solveStrict(t, city, models.NationProfile{}, models.NewOverrides())
	c := res.Plan.Counts

	for _, r := range models.AllResourceTypes() {
		assert.Zero(t, c.Get(models.MineFor(r)), "%s", r)
	}
	assert.Positive(t, c.Farm)
	assert.Zero(t, c.GroupTotal(models.GroupManufacturing))
}

func TestPinnedSafetyIsNotRaised(t *testing.T) {
	o := models.NewOverrides()
	o.Set(models.Hospital, 0)
	o.Set(models.RecyclingCenter, 0)
	o.Set(models.PoliceStation, 0)

	city := models.CityAttributes{Infrastructure: 4000, Land: 500, Continent: models.Europe}
	res := solveStrict(t, city, models.NationProfile{}, o)
	c := res.Plan.Counts

	assert.Zero(t, c.Hospital)
	assert.Zero(t, c.RecyclingCenter)
	assert.Zero(t, c.PoliceStation)
	assert.True(t, res.Report.Has(StageAssemble))
}

func TestClinicalResearchRaisesHospitalFloor(t *testing.T) {
	nation := models.NationProfile{Projects: models.ProjectFlags{ClinicalResearchCenter: true}}
	res := solveStrict(t, nominalCity(models.Europe), nation, models.NewOverrides())

	assert.Equal(t, 6, res.Plan.Counts.Hospital)
}

func TestMitigateInsertsOneOfEach(t *testing.T) {
	// dense, polluted, crowded city with no civil improvements yet
	city := models.CityAttributes{Infrastructure: 6000, Land: 500, Continent: models.Europe}
	a := newAllocation(NewSolver(city, models.NationProfile{}, models.NewOverrides()))
	a.counts.CoalMine = 10
	a.counts.IronMine = 10
	a.counts.SteelMill = 5

	added := a.mitigate()
	assert.Equal(t, 3, added)
	assert.Equal(t, 1, a.counts.Hospital)
	assert.Equal(t, 1, a.counts.RecyclingCenter)
	assert.Equal(t, 1, a.counts.PoliceStation)
}

func TestMitigateRespectsPinsAndCaps(t *testing.T) {
	city := models.CityAttributes{Infrastructure: 4000, Land: 500, Continent: models.Europe}
	o := models.NewOverrides()
	o.Set(models.Hospital, 0)
	a := newAllocation(NewSolver(city, models.NationProfile{}, o))
	a.counts.CoalMine = 10
	a.counts.IronMine = 10
	a.counts.SteelMill = 5
	a.counts.RecyclingCenter = a.mods.RecyclingCap
	a.counts.PoliceStation = 5

	assert.Equal(t, 0, a.mitigate())
	assert.Equal(t, 0, a.counts.Hospital)
}

func TestProjectSlotBonus(t *testing.T) {
	nation := models.NationProfile{Projects: models.ProjectFlags{
		AdvancedEngineeringCorps:  true,
		CenterForCivilEngineering: true,
	}}
	res := solveStrict(t, nominalCity(models.NorthAmerica), nation, models.NewOverrides())
	assert.Equal(t, 42, res.Plan.ImpTotal)
	assert.Equal(t, 2000.0, res.Plan.InfraNeeded)
}

func TestIncome(t *testing.T) {
	res := solveStrict(t, nominalCity(models.NorthAmerica), models.NationProfile{}, models.NewOverrides())

	assert.Equal(t, 99, res.Income.CommercePercent)
	assert.InDelta(t, 4000.0, res.Income.Base, 1e-9)
	assert.InDelta(t, 7960.0, res.Income.Total, 1e-9)
	assert.InDelta(t, 6.0, res.Income.Production[models.Uranium], 1e-9)
	assert.InDelta(t, 3.0, res.Income.Production[models.Coal], 1e-9)
	assert.NotContains(t, res.Income.Production, models.Oil)
}

func TestPlanShorthand(t *testing.T) {
	plan := Plan(nominalCity(models.NorthAmerica), models.NationProfile{}, models.NewOverrides())
	assert.Equal(t, 40, plan.ImpTotal)
	assert.NoError(t, Check(plan))
}

func TestResultJSON(t *testing.T) {
	res := solveStrict(t, nominalCity(models.NorthAmerica), models.NationProfile{CityCount: 10}, models.NewOverrides())
	data, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded struct {
		Plan   map[string]float64 `json:"plan"`
		Role   string             `json:"role"`
		Income struct {
			CommercePercent int `json:"commerce_percent"`
		} `json:"income"`
		Report struct {
			Valid bool `json:"valid"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 40.0, decoded.Plan["imp_total"])
	assert.Equal(t, 3.0, decoded.Plan["imp_stadium"])
	assert.Len(t, decoded.Plan, 29)
	assert.Equal(t, "raider", decoded.Role)
	assert.Equal(t, 99, decoded.Income.CommercePercent)
	assert.True(t, decoded.Report.Valid)
}

func TestCheckReportsViolations(t *testing.T) {
	plan := &models.BuildPlan{ImpTotal: 3}
	plan.Counts.SteelMill = 2
	plan.Counts.CoalMine = 1
	plan.Counts.IronMine = 3

	err := Check(plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.ErrorIs(t, err, ErrDependencyViolated)
}

func TestClampTrimsManufacturingFirst(t *testing.T) {
	plan := &models.BuildPlan{ImpTotal: 5}
	plan.Counts.NuclearPower = 1
	plan.Counts.OilWell = 3
	plan.Counts.OilRefinery = 3

	clamp(plan)
	require.NoError(t, Check(plan))
	assert.Equal(t, 1, plan.Counts.NuclearPower)
	assert.Equal(t, 3, plan.Counts.OilWell)
	assert.Equal(t, 1, plan.Counts.OilRefinery)
}
