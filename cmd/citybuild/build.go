package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/napolitain/solver-pnw/internal/models"
	"github.com/napolitain/solver-pnw/internal/solver/city"
	"github.com/napolitain/solver-pnw/internal/store"
)

type buildFlags struct {
	source nationSource

	cityKey   string
	request   string
	infra     float64
	land      float64
	continent string
	cities    int
	projects  []string
	set       map[string]int
	asJSON    bool
	noSave    bool
}

func newBuildCmd() *cobra.Command {
	f := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compute a build plan for one city",
		Long: `Computes a build plan from explicit attributes, a plan request file,
or a nation (snapshot, API or registered user). Flags override the values
taken from a request or nation.`,
		Example: `  citybuild build --infra 2000 --land 2000 --continent na --cities 10
  citybuild build --snapshot nation.json --city Capital --set imp_bank=5
  citybuild build --request plan.json --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, f)
		},
	}

	f.source.addFlags(cmd)
	flags := cmd.Flags()
	flags.StringVar(&f.cityKey, "city", "", "City name or ID within the nation (default: first city)")
	flags.StringVarP(&f.request, "request", "r", "", "Plan request JSON file")
	flags.Float64Var(&f.infra, "infra", models.DefaultInfrastructure, "Infrastructure")
	flags.Float64Var(&f.land, "land", models.DefaultLand, "Land")
	flags.StringVar(&f.continent, "continent", "", "Continent code (na, sa, as, an, eu, af, au)")
	flags.IntVar(&f.cities, "cities", 0, "Number of cities in the nation")
	flags.StringSliceVarP(&f.projects, "project", "p", nil, "Unlocked project (repeatable)")
	flags.StringToIntVar(&f.set, "set", nil, "Pin improvements, e.g. --set imp_bank=5,stadium=-1")
	flags.BoolVar(&f.asJSON, "json", false, "Print the plan as JSON")
	flags.BoolVar(&f.noSave, "no-save", false, "Do not record the plan in the history")
	return cmd
}

// buildInput is what the allocator runs on, plus where it came from
type buildInput struct {
	city      models.CityAttributes
	nation    models.NationProfile
	overrides models.Overrides

	nationID int
	cityName string
}

func runBuild(cmd *cobra.Command, f *buildFlags) error {
	in, err := f.input(cmd)
	if err != nil {
		return err
	}

	opts := city.Options{Strict: cfg.Strict, Logger: slog.Default()}
	res := city.NewSolverWithOptions(in.city, in.nation, in.overrides, opts).Solve()

	out := cmd.OutOrStdout()
	if f.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		printPlan(out, in, res)
	}

	if !f.noSave {
		savePlan(f.source.userID, in, res)
	}
	return nil
}

func (f *buildFlags) input(cmd *cobra.Command) (*buildInput, error) {
	in := &buildInput{
		city: models.CityAttributes{
			Infrastructure: models.DefaultInfrastructure,
			Land:           models.DefaultLand,
		},
		overrides: models.NewOverrides(),
	}

	switch {
	case f.request != "":
		req, err := models.LoadPlanRequest(f.request)
		if err != nil {
			return nil, err
		}
		if err := models.ValidatePlanRequest(req); err != nil {
			return nil, err
		}
		in.city = req.City()
		in.nation = req.Nation()
		in.overrides = req.PlanOverrides()

	case f.source.isSet():
		n, err := f.source.resolve(cmd.Context())
		if err != nil {
			return nil, err
		}
		if len(n.Cities) == 0 {
			return nil, fmt.Errorf("nation %d has no cities", n.ID)
		}
		c := &n.Cities[0]
		if f.cityKey != "" {
			var ok bool
			if c, ok = n.FindCity(f.cityKey); !ok {
				return nil, fmt.Errorf("nation %d has no city %q", n.ID, f.cityKey)
			}
		}
		in.city = n.CityAttributes(c)
		in.nation = n.Profile()
		in.nationID = n.ID
		in.cityName = c.Name
	}

	return in, f.apply(cmd, in)
}

// apply layers explicitly set flags over the input
func (f *buildFlags) apply(cmd *cobra.Command, in *buildInput) error {
	flags := cmd.Flags()
	if flags.Changed("infra") {
		in.city.Infrastructure = f.infra
	}
	if flags.Changed("land") {
		in.city.Land = f.land
	}
	if flags.Changed("continent") {
		c, ok := models.ParseContinent(f.continent)
		if !ok {
			return fmt.Errorf("unknown continent %q", f.continent)
		}
		in.city.Continent = c
	}
	if flags.Changed("cities") {
		in.nation.CityCount = max(f.cities, 0)
	}

	for _, name := range f.projects {
		known := false
		for _, p := range models.AllProjectNames() {
			if string(p) == name {
				known = true
			}
		}
		if !known {
			return fmt.Errorf("unknown project %q", name)
		}
		in.nation.Projects.SetByString(name, true)
	}

	for key, v := range f.set {
		imp, ok := models.ParseImprovement(key)
		if !ok {
			return fmt.Errorf("unknown improvement %q", key)
		}
		in.overrides.SetSentinel(imp, v)
	}
	return nil
}

// savePlan records the plan; the history is best effort
func savePlan(userID string, in *buildInput, res *city.Result) {
	db, err := openStore()
	if err != nil {
		slog.Warn("plan not saved", "err", err)
		return
	}
	defer db.Close()

	id, err := db.SavePlan(store.PlanEntry{
		UserID:    userID,
		NationID:  in.nationID,
		City:      in.cityName,
		Continent: in.city.Continent,
		Plan:      res.Plan.Record(),
	})
	if err != nil {
		slog.Warn("plan not saved", "err", err)
		return
	}
	slog.Debug("plan saved", "id", id)
}
