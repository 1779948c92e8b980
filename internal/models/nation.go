package models

import (
	"strconv"
	"time"
)

// Commodity is anything a nation stockpiles, money included
type Commodity string

const (
	CommodityMoney     Commodity = "money"
	CommodityCoal      Commodity = "coal"
	CommodityOil       Commodity = "oil"
	CommodityUranium   Commodity = "uranium"
	CommodityIron      Commodity = "iron"
	CommodityBauxite   Commodity = "bauxite"
	CommodityLead      Commodity = "lead"
	CommodityGasoline  Commodity = "gasoline"
	CommodityMunitions Commodity = "munitions"
	CommoditySteel     Commodity = "steel"
	CommodityAluminum  Commodity = "aluminum"
	CommodityFood      Commodity = "food"
	CommodityCredits   Commodity = "credits"
)

// AllCommodities returns every commodity in report order
func AllCommodities() []Commodity {
	return []Commodity{
		CommodityMoney, CommodityCoal, CommodityOil, CommodityUranium, CommodityIron,
		CommodityBauxite, CommodityLead, CommodityGasoline, CommodityMunitions,
		CommoditySteel, CommodityAluminum, CommodityFood, CommodityCredits,
	}
}

// Stockpile holds an amount per commodity (no maps)
type Stockpile struct {
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
}

func (s *Stockpile) ptr(c Commodity) *float64 {
	switch c {
	case CommodityMoney:
		return &s.Money
	case CommodityCoal:
		return &s.Coal
	case CommodityOil:
		return &s.Oil
	case CommodityUranium:
		return &s.Uranium
	case CommodityIron:
		return &s.Iron
	case CommodityBauxite:
		return &s.Bauxite
	case CommodityLead:
		return &s.Lead
	case CommodityGasoline:
		return &s.Gasoline
	case CommodityMunitions:
		return &s.Munitions
	case CommoditySteel:
		return &s.Steel
	case CommodityAluminum:
		return &s.Aluminum
	case CommodityFood:
		return &s.Food
	case CommodityCredits:
		return &s.Credits
	}
	return nil
}

// Get returns the amount of a commodity
func (s *Stockpile) Get(c Commodity) float64 {
	if p := s.ptr(c); p != nil {
		return *p
	}
	return 0
}

// Set sets the amount of a commodity
func (s *Stockpile) Set(c Commodity, v float64) {
	if p := s.ptr(c); p != nil {
		*p = v
	}
}

// Add adds to the amount of a commodity
func (s *Stockpile) Add(c Commodity, v float64) {
	if p := s.ptr(c); p != nil {
		*p += v
	}
}

// Each calls fn for every commodity in report order
func (s *Stockpile) Each(fn func(Commodity, float64)) {
	for _, c := range AllCommodities() {
		fn(c, s.Get(c))
	}
}

// CitySnapshot is a city as reported by the game API
type CitySnapshot struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Infrastructure float64           `json:"infrastructure"`
	Land           float64           `json:"land"`
	Founded        time.Time         `json:"founded"`
	Improvements   ImprovementCounts `json:"improvements"`
}

// Age returns the city's age in whole days at now, never below 1
func (c *CitySnapshot) Age(now time.Time) int {
	if c.Founded.IsZero() {
		return 1
	}
	days := int(now.Sub(c.Founded).Hours() / 24)
	return max(days, 1)
}

// BankRecord is a single bank transfer
type BankRecord struct {
	ID         int       `json:"id"`
	Date       time.Time `json:"date"`
	SenderID   int       `json:"sender_id"`
	ReceiverID int       `json:"receiver_id"`
	Note       string    `json:"note"`
	Amounts    Stockpile `json:"amounts"`
}

// Nation is the subset of a nation the tools work with
type Nation struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Leader      string         `json:"leader"`
	Continent   Continent      `json:"continent"`
	Score       float64        `json:"score"`
	Projects    ProjectFlags   `json:"projects"`
	Military    Military       `json:"military"`
	Stockpile   Stockpile      `json:"stockpile"`
	Cities      []CitySnapshot `json:"cities"`
	BankRecords []BankRecord   `json:"bank_records"`
}

// Profile returns the allocator's view of the nation
func (n *Nation) Profile() NationProfile {
	return NationProfile{Projects: n.Projects, CityCount: len(n.Cities)}
}

// CityAttributes returns the allocator's view of one of the nation's
// cities. Unreported (zero) infrastructure and land fall back to nominal.
func (n *Nation) CityAttributes(c *CitySnapshot) CityAttributes {
	attrs := CityAttributes{
		Infrastructure: c.Infrastructure,
		Land:           c.Land,
		Continent:      n.Continent,
		Existing:       c.Improvements,
	}
	if attrs.Infrastructure == 0 {
		attrs.Infrastructure = DefaultInfrastructure
	}
	if attrs.Land <= 0 {
		attrs.Land = DefaultLand
	}
	return attrs
}

// FindCity returns the city with the given ID or name
func (n *Nation) FindCity(key string) (*CitySnapshot, bool) {
	for i := range n.Cities {
		c := &n.Cities[i]
		if c.Name == key || strconv.Itoa(c.ID) == key {
			return c, true
		}
	}
	return nil, false
}
