package city

import (
	"fmt"

	"github.com/napolitain/solver-pnw/internal/models"
)

// Stage identifies the pipeline stage that produced a finding
type Stage string

const (
	StageMilitary      Stage = "military"
	StagePower         Stage = "power"
	StageSafety        Stage = "safety"
	StageCommerce      Stage = "commerce"
	StageRebalance     Stage = "rebalance"
	StageRaw           Stage = "raw"
	StageManufacturing Stage = "manufacturing"
	StageAssemble      Stage = "assemble"
)

// Severity indicates how important a finding is
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding is a single note about how the plan was produced
type Finding struct {
	Stage       Stage              `json:"stage"`
	Severity    Severity           `json:"severity"`
	Message     string             `json:"message"`
	Improvement models.Improvement `json:"improvement,omitempty"`
	Requested   int                `json:"requested,omitempty"`
	Granted     int                `json:"granted,omitempty"`
}

// Report collects findings for a plan
type Report struct {
	Valid    bool      `json:"valid"`
	Errors   []Finding `json:"errors"`
	Warnings []Finding `json:"warnings"`
	Info     []Finding `json:"info"`
	Summary  string    `json:"summary"`
}

// NewReport creates an empty valid report
func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Finding{},
		Warnings: []Finding{},
		Info:     []Finding{},
	}
	r.updateSummary()
	return r
}

// AddError adds an error finding and marks the report invalid
func (r *Report) AddError(f Finding) {
	f.Severity = SeverityError
	r.Errors = append(r.Errors, f)
	r.Valid = false
	r.updateSummary()
}

// AddWarning adds a warning finding
func (r *Report) AddWarning(f Finding) {
	f.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, f)
	r.updateSummary()
}

// AddInfo adds an informational finding
func (r *Report) AddInfo(f Finding) {
	f.Severity = SeverityInfo
	r.Info = append(r.Info, f)
	r.updateSummary()
}

// Has reports whether any finding came from the given stage
func (r *Report) Has(stage Stage) bool {
	for _, list := range [][]Finding{r.Errors, r.Warnings, r.Info} {
		for _, f := range list {
			if f.Stage == stage {
				return true
			}
		}
	}
	return false
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}
