package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
)

// ErrInvalidRequest is returned when a plan request cannot be interpreted
var ErrInvalidRequest = errors.New("invalid plan request")

// PlanRequest is the JSON shape accepted by the CLI (--request file) and
// the HTTP service. Overrides use -1 as "unset".
type PlanRequest struct {
	Infrastructure *float64        `json:"infrastructure,omitempty"`
	Land           *float64        `json:"land,omitempty"`
	Continent      string          `json:"continent"`
	CityCount      int             `json:"city_count"`
	Projects       map[string]bool `json:"projects,omitempty"`
	Overrides      map[string]int  `json:"overrides,omitempty"`
}

// LoadPlanRequest loads a plan request from a JSON file
func LoadPlanRequest(path string) (*PlanRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePlanRequest(data)
}

// ParsePlanRequest decodes a plan request from JSON
func ParsePlanRequest(data []byte) (*PlanRequest, error) {
	req := &PlanRequest{}
	if err := json.Unmarshal(data, req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return req, nil
}

// ValidatePlanRequest rejects requests with unknown override keys or
// project names. Missing or out-of-range numbers are not errors: they fall
// back to nominal values.
func ValidatePlanRequest(r *PlanRequest) error {
	var unknown []string
	for key := range r.Overrides {
		if _, ok := ParseImprovement(key); !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: unknown improvements %v", ErrInvalidRequest, unknown)
	}

	known := make(map[ProjectName]bool)
	for _, name := range AllProjectNames() {
		known[name] = true
	}
	for name := range r.Projects {
		if !known[ProjectName(name)] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: unknown projects %v", ErrInvalidRequest, unknown)
	}

	if r.CityCount < 0 {
		return fmt.Errorf("%w: city_count must not be negative", ErrInvalidRequest)
	}
	return nil
}

// City converts the request into city attributes, applying fallbacks
func (r *PlanRequest) City() CityAttributes {
	city := CityAttributes{
		Infrastructure: DefaultInfrastructure,
		Land:           DefaultLand,
	}
	if r.Infrastructure != nil {
		city.Infrastructure = sanitize(*r.Infrastructure)
	}
	if r.Land != nil {
		city.Land = sanitize(*r.Land)
	}
	if c, ok := ParseContinent(r.Continent); ok {
		city.Continent = c
	}
	return city
}

// Nation converts the request into a nation profile
func (r *PlanRequest) Nation() NationProfile {
	var n NationProfile
	for name, on := range r.Projects {
		n.Projects.SetByString(name, on)
	}
	n.CityCount = max(r.CityCount, 0)
	return n
}

// PlanOverrides converts the sentinel-encoded overrides
func (r *PlanRequest) PlanOverrides() Overrides {
	return OverridesFromSentinels(r.Overrides)
}

// sanitize maps NaN, Inf and negatives to 0
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
