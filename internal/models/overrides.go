package models

// UnsetOverride is the sentinel external callers use for "let the allocator decide"
const UnsetOverride = -1

// Overrides pins improvement counts chosen by the caller. An improvement
// absent from the set is decided by the allocator.
type Overrides struct {
	values map[Improvement]int
}

// NewOverrides returns an empty override set
func NewOverrides() Overrides {
	return Overrides{values: make(map[Improvement]int)}
}

// Set pins an improvement. Negative values are stored as 0; caps are
// applied by the allocator.
func (o *Overrides) Set(i Improvement, n int) {
	if o.values == nil {
		o.values = make(map[Improvement]int)
	}
	if n < 0 {
		n = 0
	}
	o.values[i] = n
}

// SetSentinel pins an improvement from a sentinel-encoded value:
// UnsetOverride clears the pin, any other negative pins 0.
func (o *Overrides) SetSentinel(i Improvement, v int) {
	if v == UnsetOverride {
		o.Unset(i)
		return
	}
	o.Set(i, v)
}

// Unset removes a pin
func (o *Overrides) Unset(i Improvement) {
	delete(o.values, i)
}

// Get returns the pinned value and whether one is set
func (o Overrides) Get(i Improvement) (int, bool) {
	n, ok := o.values[i]
	return n, ok
}

// Has reports whether an improvement is pinned
func (o Overrides) Has(i Improvement) bool {
	_, ok := o.values[i]
	return ok
}

// AnyOf reports whether any of the improvements is pinned
func (o Overrides) AnyOf(imps ...Improvement) bool {
	for _, i := range imps {
		if o.Has(i) {
			return true
		}
	}
	return false
}

// Len returns the number of pinned improvements
func (o Overrides) Len() int {
	return len(o.values)
}

// EachSet iterates over pinned improvements in output order
func (o Overrides) EachSet(fn func(Improvement, int)) {
	for _, imp := range AllImprovements() {
		if n, ok := o.values[imp]; ok {
			fn(imp, n)
		}
	}
}

// OverridesFromSentinels builds overrides from a key -> value map such as
// a slash-command payload. Keys may be bare names or "imp_" keys; unknown
// keys are ignored.
func OverridesFromSentinels(raw map[string]int) Overrides {
	o := NewOverrides()
	for key, v := range raw {
		if imp, ok := ParseImprovement(key); ok {
			o.SetSentinel(imp, v)
		}
	}
	return o
}
