package models

// UnitDefinition contains static per-turn unit data. Units not listed have
// no upkeep the warchest tracks.
type UnitDefinition struct {
	Kind UnitKind

	// UpkeepPerTurn is the wartime money upkeep of one unit
	UpkeepPerTurn float64

	// Per is the number of units that burn the listed amounts each turn
	Per       float64
	Gasoline  float64
	Munitions float64
	Steel     float64
	Aluminum  float64
}

// AllUnitDefinitions returns definitions for units with upkeep
func AllUnitDefinitions() []*UnitDefinition {
	return []*UnitDefinition{
		{
			Kind:          Soldiers,
			UpkeepPerTurn: 1.88 / 12,
			Per:           5000,
			Gasoline:      1,
			Munitions:     1,
		},
		{
			Kind:          Tanks,
			UpkeepPerTurn: 75.0 / 12,
			Per:           100,
			Gasoline:      1,
			Munitions:     1,
			Steel:         1,
		},
		{
			Kind:          Aircraft,
			UpkeepPerTurn: 750.0 / 12,
			Per:           4,
			Gasoline:      1,
			Munitions:     1,
			Aluminum:      1,
		},
		{
			Kind:          Ships,
			UpkeepPerTurn: 5062.5 / 12,
			Per:           5,
			Steel:         1,
		},
	}
}

// GetUnitDefinition returns the definition for a unit kind
func GetUnitDefinition(k UnitKind) *UnitDefinition {
	for _, def := range AllUnitDefinitions() {
		if def.Kind == k {
			return def
		}
	}
	return nil
}
