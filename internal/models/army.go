package models

// UnitKind is a military unit as named by the game API
type UnitKind string

const (
	Soldiers UnitKind = "soldiers"
	Tanks    UnitKind = "tanks"
	Aircraft UnitKind = "aircraft"
	Ships    UnitKind = "ships"
	Spies    UnitKind = "spies"
	Missiles UnitKind = "missiles"
	Nukes    UnitKind = "nukes"
)

// AllUnitKinds returns every unit kind in deterministic order
func AllUnitKinds() []UnitKind {
	return []UnitKind{Soldiers, Tanks, Aircraft, Ships, Spies, Missiles, Nukes}
}

// Military represents a nation's units with strict typing (no maps)
type Military struct {
	Soldiers int `json:"soldiers"`
	Tanks    int `json:"tanks"`
	Aircraft int `json:"aircraft"`
	Ships    int `json:"ships"`
	Spies    int `json:"spies"`
	Missiles int `json:"missiles"`
	Nukes    int `json:"nukes"`
}

func (m *Military) ptr(k UnitKind) *int {
	switch k {
	case Soldiers:
		return &m.Soldiers
	case Tanks:
		return &m.Tanks
	case Aircraft:
		return &m.Aircraft
	case Ships:
		return &m.Ships
	case Spies:
		return &m.Spies
	case Missiles:
		return &m.Missiles
	case Nukes:
		return &m.Nukes
	}
	return nil
}

// Get returns count for a unit kind
func (m *Military) Get(k UnitKind) int {
	if p := m.ptr(k); p != nil {
		return *p
	}
	return 0
}

// Set sets count for a unit kind (floors at 0)
func (m *Military) Set(k UnitKind, n int) {
	if p := m.ptr(k); p != nil {
		*p = max(n, 0)
	}
}

// Each calls fn for every unit kind in order
func (m *Military) Each(fn func(UnitKind, int)) {
	for _, k := range AllUnitKinds() {
		fn(k, m.Get(k))
	}
}

// IsEmpty returns true if the nation has no units
func (m *Military) IsEmpty() bool {
	empty := true
	m.Each(func(_ UnitKind, n int) {
		if n > 0 {
			empty = false
		}
	})
	return empty
}
