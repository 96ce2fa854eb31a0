// Package normalize validates and coerces raw employee fields into the
// numeric domains the scoring formula expects.
package normalize

import (
	"math"
	"strings"

	"github.com/staffsight/staffsight/internal/domain/model"
)

// Field domains. Review and satisfaction scales are fixed by the source
// dataset; everything else is simply non-negative.
const (
	PerformanceMin  = 1.0
	PerformanceMax  = 5.0
	SatisfactionMin = 1.0
	SatisfactionMax = 5.0
)

// Adjustment records a single out-of-domain value that was clamped to
// the nearest bound. Callers log these as warnings; they are not errors.
type Adjustment struct {
	Field string
	From  float64
	To    float64
}

// Normalize returns a copy of rec with every numeric field clamped into
// its domain, together with one Adjustment per clamped field. The input
// is never mutated. Missing identity fields are the only fatal
// conditions; every numeric value, including NaN, normalizes to
// something the scorer can consume.
func Normalize(rec model.EmployeeRecord) (model.EmployeeRecord, []Adjustment, error) {
	if strings.TrimSpace(rec.ID) == "" {
		return model.EmployeeRecord{}, nil, ErrMissingID
	}
	if strings.TrimSpace(rec.Department) == "" {
		return model.EmployeeRecord{}, nil, ErrMissingDepartment
	}

	out := rec
	var adj []Adjustment

	out.PerformanceScore = clamp("performance_score", rec.PerformanceScore, PerformanceMin, PerformanceMax, &adj)
	out.SatisfactionScore = clamp("satisfaction_score", rec.SatisfactionScore, SatisfactionMin, SatisfactionMax, &adj)
	out.TenureYears = clamp("tenure_years", rec.TenureYears, 0, math.Inf(1), &adj)
	out.TrainingHours = clamp("training_hours", rec.TrainingHours, 0, math.Inf(1), &adj)

	if rec.ProjectsHandled < 0 {
		adj = append(adj, Adjustment{Field: "projects_handled", From: float64(rec.ProjectsHandled), To: 0})
		out.ProjectsHandled = 0
	}
	if rec.SickLeaveDays < 0 {
		adj = append(adj, Adjustment{Field: "sick_leave_days", From: float64(rec.SickLeaveDays), To: 0})
		out.SickLeaveDays = 0
	}

	return out, adj, nil
}

// clamp coerces v into [lo, hi], appending an Adjustment when it moved.
// NaN counts as below the lower bound.
func clamp(field string, v, lo, hi float64, adj *[]Adjustment) float64 {
	switch {
	case math.IsNaN(v), v < lo:
		*adj = append(*adj, Adjustment{Field: field, From: v, To: lo})
		return lo
	case v > hi:
		*adj = append(*adj, Adjustment{Field: field, From: v, To: hi})
		return hi
	default:
		return v
	}
}
