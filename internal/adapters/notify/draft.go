// Package notify builds outreach email drafts from evaluation results
// and optionally delivers them through SendGrid.
package notify

import (
	"fmt"

	"github.com/staffsight/staffsight/internal/domain/model"
)

// Kind identifies the outreach template a draft was built from.
type Kind string

const (
	KindRetention Kind = "retention"
	KindPromotion Kind = "promotion"
	KindTraining  Kind = "training"
	KindWellness  Kind = "wellness"
)

// Draft is a prepared email awaiting a recipient. Bodies are plain
// text so HR staff can edit them before sending.
type Draft struct {
	Kind       Kind
	EmployeeID string
	Subject    string
	Body       string
}

// DraftsFor builds one draft per raised flag. A record with nothing
// flagged yields no drafts.
func DraftsFor(rec model.EmployeeRecord, res model.EvaluationResult) []Draft {
	var drafts []Draft
	if res.Flags.ResignationRisk == model.RiskHigh || res.Flags.ResignationRisk == model.RiskMedium {
		drafts = append(drafts, RetentionDraft(rec, res))
	}
	if res.Flags.PromotionEligible {
		drafts = append(drafts, PromotionDraft(rec, res))
	}
	if res.Flags.TrainingNeeded {
		drafts = append(drafts, TrainingDraft(rec, res))
	}
	if res.Flags.LeaveAlert {
		drafts = append(drafts, WellnessDraft(rec))
	}
	return drafts
}

// RetentionDraft prepares a check-in email for an employee showing
// attrition indicators.
func RetentionDraft(rec model.EmployeeRecord, res model.EvaluationResult) Draft {
	body := fmt.Sprintf(`Dear %s,

We've noticed some indicators that you might be considering other opportunities. We value your contributions and would like to understand how we can better support you.

Some areas we'd like to discuss:
- Your current satisfaction level (%.1f/5)
- Workload balance (currently handling %d projects)
- Career development opportunities

Would you be available for a conversation this week to discuss how we can improve your experience?

Best regards,
[Your Name]
[Your Position]`, greetName(rec), rec.SatisfactionScore, rec.ProjectsHandled)

	return Draft{
		Kind:       KindRetention,
		EmployeeID: rec.ID,
		Subject:    fmt.Sprintf("Retention Discussion - %s", rec.ID),
		Body:       body,
	}
}

// PromotionDraft prepares a promotion recommendation addressed to the
// HR team rather than the employee.
func PromotionDraft(rec model.EmployeeRecord, res model.EvaluationResult) Draft {
	body := fmt.Sprintf(`Dear HR Team,

I'm recommending %s for promotion consideration based on their outstanding performance and contributions.

Key highlights:
- Productivity score of %.1f/100
- Tenure with company: %.1f years
- Completed %.0f training hours
- Currently handling %d projects

Suggested next steps:
1. Schedule promotion review meeting
2. Discuss potential new role and responsibilities
3. Plan announcement timeline

Please let me know your availability to discuss.

Best regards,
[Your Name]
[Your Position]`, greetName(rec), res.Score, rec.TenureYears, rec.TrainingHours, rec.ProjectsHandled)

	return Draft{
		Kind:       KindPromotion,
		EmployeeID: rec.ID,
		Subject:    fmt.Sprintf("Promotion Recommendation - %s", rec.ID),
		Body:       body,
	}
}

// TrainingDraft prepares a development-program invitation.
func TrainingDraft(rec model.EmployeeRecord, res model.EvaluationResult) Draft {
	body := fmt.Sprintf(`Dear %s,

As part of our ongoing development program, I'd like to recommend some training opportunities that would help support your growth.

Current status:
- Training hours completed: %.0f
- Productivity score: %.1f/100
- Projects handled: %d

Recommended training areas:
1. Core skills development
2. Advanced %s methodologies
3. Professional effectiveness workshops

Would you be available to discuss a personalized training plan?

Best regards,
[Your Name]
[Your Position]`, greetName(rec), rec.TrainingHours, res.Score, rec.ProjectsHandled, rec.Department)

	return Draft{
		Kind:       KindTraining,
		EmployeeID: rec.ID,
		Subject:    fmt.Sprintf("Training Recommendation - %s", rec.ID),
		Body:       body,
	}
}

// WellnessDraft prepares a wellbeing check-in for an employee with
// elevated sick leave.
func WellnessDraft(rec model.EmployeeRecord) Draft {
	body := fmt.Sprintf(`Dear %s,

I wanted to check in as I noticed you've had %d sick days recently. Your health and wellbeing are important to us.

We'd like to offer:
- A confidential discussion with HR about any support you might need
- Information about our wellness programs
- Flexible work options if helpful

Please know we're here to support you. Would you be available for a conversation?

Best regards,
[Your Name]
[Your Position]`, greetName(rec), rec.SickLeaveDays)

	return Draft{
		Kind:       KindWellness,
		EmployeeID: rec.ID,
		Subject:    fmt.Sprintf("Wellness Check-In - %s", rec.ID),
		Body:       body,
	}
}

func greetName(rec model.EmployeeRecord) string {
	if rec.Name != "" {
		return rec.Name
	}
	return "Employee"
}
