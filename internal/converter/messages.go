package converter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/napolitain/solver-pnw/internal/models"
	"github.com/napolitain/solver-pnw/internal/pnw"
)

// apiDateLayouts are the date formats the API is known to use
var apiDateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// APINationToModel converts an API nation to the model nation. Missing
// infrastructure and land fall back to the nominal 2000.
func APINationToModel(n *pnw.Nation) (*models.Nation, error) {
	id, err := parseID(n.ID)
	if err != nil {
		return nil, fmt.Errorf("nation id: %w", err)
	}

	continent, _ := models.ParseContinent(n.Continent)
	out := &models.Nation{
		ID:        id,
		Name:      n.NationName,
		Leader:    n.LeaderName,
		Continent: continent,
		Score:     n.Score,
		Projects:  APIProjectsToFlags(n),
		Military: models.Military{
			Soldiers: n.Soldiers,
			Tanks:    n.Tanks,
			Aircraft: n.Aircraft,
			Ships:    n.Ships,
			Spies:    n.Spies,
			Missiles: n.Missiles,
			Nukes:    n.Nukes,
		},
		Stockpile: models.Stockpile{
			Money:     n.Money,
			Coal:      n.Coal,
			Oil:       n.Oil,
			Uranium:   n.Uranium,
			Iron:      n.Iron,
			Bauxite:   n.Bauxite,
			Lead:      n.Lead,
			Gasoline:  n.Gasoline,
			Munitions: n.Munitions,
			Steel:     n.Steel,
			Aluminum:  n.Aluminum,
			Food:      n.Food,
			Credits:   n.Credits,
		},
	}

	for i := range n.Cities {
		c, err := APICityToModel(&n.Cities[i])
		if err != nil {
			return nil, fmt.Errorf("city %d: %w", i, err)
		}
		out.Cities = append(out.Cities, c)
	}
	for i := range n.BankRecs {
		rec, err := APIBankRecordToModel(&n.BankRecs[i])
		if err != nil {
			return nil, fmt.Errorf("bank record %d: %w", i, err)
		}
		out.BankRecords = append(out.BankRecords, rec)
	}
	return out, nil
}

// APICityToModel converts an API city to a model snapshot
func APICityToModel(c *pnw.City) (models.CitySnapshot, error) {
	snap := models.CitySnapshot{
		Name:           c.Name,
		Infrastructure: orDefault(c.Infrastructure, models.DefaultInfrastructure),
		Land:           orDefault(c.Land, models.DefaultLand),
		Improvements:   APICityToCounts(c),
	}
	if c.ID != "" {
		id, err := parseID(c.ID)
		if err != nil {
			return snap, err
		}
		snap.ID = id
	}
	if c.Date != "" {
		founded, err := parseDate(c.Date)
		if err != nil {
			return snap, err
		}
		snap.Founded = founded
	}
	return snap, nil
}

// APIBankRecordToModel converts an API bank record
func APIBankRecordToModel(r *pnw.BankRecord) (models.BankRecord, error) {
	rec := models.BankRecord{
		Note: r.Note,
		Amounts: models.Stockpile{
			Money:     r.Money,
			Coal:      r.Coal,
			Oil:       r.Oil,
			Uranium:   r.Uranium,
			Iron:      r.Iron,
			Bauxite:   r.Bauxite,
			Lead:      r.Lead,
			Gasoline:  r.Gasoline,
			Munitions: r.Munitions,
			Steel:     r.Steel,
			Aluminum:  r.Aluminum,
			Food:      r.Food,
		},
	}
	var err error
	for _, f := range []struct {
		raw string
		dst *int
	}{{r.ID, &rec.ID}, {r.SenderID, &rec.SenderID}, {r.ReceiverID, &rec.ReceiverID}} {
		if f.raw == "" {
			continue
		}
		if *f.dst, err = parseID(f.raw); err != nil {
			return rec, err
		}
	}
	if r.Date != "" {
		if rec.Date, err = parseDate(r.Date); err != nil {
			return rec, err
		}
	}
	return rec, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return id, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range apiDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
