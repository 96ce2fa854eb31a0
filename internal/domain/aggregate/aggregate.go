// Package aggregate rolls per-employee evaluation results into
// department-level summaries and deterministic rankings.
package aggregate

import (
	"github.com/montanaflynn/stats"

	"github.com/staffsight/staffsight/internal/domain/model"
)

// OverallDepartment labels the summary computed across every result
// regardless of department.
const OverallDepartment = "overall"

// Summarize groups results by department and computes one summary per
// group. Zero results yield an empty map, never an error.
func Summarize(results []model.EvaluationResult) map[string]model.DepartmentSummary {
	byDept := make(map[string][]model.EvaluationResult)
	for _, r := range results {
		byDept[r.Department] = append(byDept[r.Department], r)
	}

	summaries := make(map[string]model.DepartmentSummary, len(byDept))
	for dept, group := range byDept {
		summaries[dept] = summarize(dept, group)
	}
	return summaries
}

// Overall computes a single summary across all results. With zero
// results it returns the explicit empty marker instead of NaN
// statistics.
func Overall(results []model.EvaluationResult) model.DepartmentSummary {
	return summarize(OverallDepartment, results)
}

func summarize(dept string, group []model.EvaluationResult) model.DepartmentSummary {
	s := model.DepartmentSummary{Department: dept, Count: len(group)}
	if len(group) == 0 {
		s.Empty = true
		return s
	}

	scores := make([]float64, len(group))
	for i, r := range group {
		scores[i] = r.Score

		switch r.Flags.ResignationRisk {
		case model.RiskHigh:
			s.HighRisk++
		case model.RiskMedium:
			s.MediumRisk++
		default:
			s.LowRisk++
		}
		if r.Flags.PromotionEligible {
			s.PromotionEligible++
		}
		if r.Flags.TrainingNeeded {
			s.TrainingNeeded++
		}
		if r.Flags.LeaveAlert {
			s.LeaveAlerts++
		}
	}

	// stats errors only on empty input, which is handled above.
	s.MeanScore, _ = stats.Mean(scores)
	s.MedianScore, _ = stats.Median(scores)
	s.ScoreStdDev, _ = stats.StandardDeviation(scores)
	return s
}
