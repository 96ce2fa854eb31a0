package report

import (
	"fmt"

	"github.com/staffsight/staffsight/internal/domain/model"
)

// Recommendations derives actionable guidance lines from a record and
// its evaluation. Lines are grouped by concern; a concern with nothing
// to flag contributes nothing.
func Recommendations(rec model.EmployeeRecord, res model.EvaluationResult) []string {
	var lines []string

	switch {
	case rec.PerformanceScore >= 4:
		lines = append(lines,
			"High performer detected:",
			"- Fast-track for leadership training",
			"- Consider special projects assignment",
			"- Eligible for early promotion review",
		)
	case rec.PerformanceScore <= 2:
		lines = append(lines,
			"Performance concerns:",
			"- Implement 90-day improvement plan",
			"- Assign mentor for weekly check-ins",
			"- Required training: 40+ hours",
		)
	default:
		lines = append(lines,
			"Solid performer:",
			"- Recommend skill development plan",
			"- Regular performance feedback",
		)
	}

	switch res.Flags.ResignationRisk {
	case model.RiskHigh:
		lines = append(lines,
			"High attrition risk:",
			"- Schedule retention interview immediately",
			"- Review workload balance",
			"- Consider spot bonus or recognition",
		)
	case model.RiskMedium:
		lines = append(lines,
			"Moderate attrition risk:",
			"- Monitor engagement closely",
			"- Conduct stay interviews quarterly",
		)
	}

	if res.Flags.TrainingNeeded {
		lines = append(lines,
			"Training deficiency:",
			fmt.Sprintf("- Current training hours: %.0f", rec.TrainingHours),
			"- Enroll in foundational skills program",
		)
	}

	if res.Flags.LeaveAlert {
		lines = append(lines,
			"Elevated sick days:",
			"- Recommend wellness check",
			"- Review work-life balance",
		)
	}

	return lines
}
