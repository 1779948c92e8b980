package models

import "strings"

// Continent is a lowercase two-letter continent code
type Continent string

const (
	NorthAmerica Continent = "na"
	SouthAmerica Continent = "sa"
	Asia         Continent = "as"
	Antarctica   Continent = "an"
	Europe       Continent = "eu"
	Africa       Continent = "af"
	Australia    Continent = "au"
)

// AllContinents returns all continents in deterministic order
func AllContinents() []Continent {
	return []Continent{NorthAmerica, SouthAmerica, Asia, Antarctica, Europe, Africa, Australia}
}

// continentResources lists the three raw resources minable on each continent
var continentResources = map[Continent][3]ResourceType{
	NorthAmerica: {Coal, Iron, Uranium},
	SouthAmerica: {Oil, Bauxite, Lead},
	Asia:         {Oil, Iron, Uranium},
	Antarctica:   {Oil, Coal, Uranium},
	Europe:       {Coal, Iron, Lead},
	Africa:       {Oil, Bauxite, Uranium},
	Australia:    {Coal, Bauxite, Lead},
}

var continentAliases = map[string]Continent{
	"north_america": NorthAmerica,
	"south_america": SouthAmerica,
	"asia":          Asia,
	"antarctica":    Antarctica,
	"europe":        Europe,
	"africa":        Africa,
	"australia":     Australia,
}

// ParseContinent accepts a two-letter code or the API's long name, case-insensitive
func ParseContinent(s string) (Continent, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if _, ok := continentResources[Continent(key)]; ok {
		return Continent(key), true
	}
	key = strings.ReplaceAll(key, " ", "_")
	if c, ok := continentAliases[key]; ok {
		return c, true
	}
	return "", false
}

// Resources returns the minable resources; unknown continents have none
func (c Continent) Resources() []ResourceType {
	res, ok := continentResources[c]
	if !ok {
		return nil
	}
	return res[:]
}

// Has reports whether a resource can be mined on the continent
func (c Continent) Has(r ResourceType) bool {
	for _, have := range c.Resources() {
		if have == r {
			return true
		}
	}
	return false
}

// CanBuild reports whether an improvement is allowed by the continent.
// Only resource extractors are gated.
func (c Continent) CanBuild(i Improvement) bool {
	r, ok := ResourceFor(i)
	if !ok {
		return true
	}
	return c.Has(r)
}
