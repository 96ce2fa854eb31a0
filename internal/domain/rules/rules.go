// Package rules derives the categorical classification flags from a
// normalized record and its productivity score.
package rules

import (
	"github.com/staffsight/staffsight/internal/domain/model"
)

// Default threshold constants. Chosen heuristically from the historical
// dataset; tune through configuration, not here.
const (
	defaultLowSatisfaction        = 2.5
	defaultLowScore               = 40.0
	defaultPromotionScore         = 75.0
	defaultPromotionTenureYears   = 2.0
	defaultPromotionTrainingHours = 30.0
	defaultTrainingLowScore       = 40.0
	defaultTrainingMinHours       = 20.0
	defaultSickLeaveCeiling       = 5
)

// Thresholds is the named threshold table every rule reads from. Two
// classifiers sharing a table produce identical flags for identical
// input.
type Thresholds struct {
	// LowSatisfaction and LowScore bound the resignation-risk tiers.
	LowSatisfaction float64 `koanf:"low_satisfaction"`
	LowScore        float64 `koanf:"low_score"`

	// Promotion requires all three minimums at once.
	PromotionScore         float64 `koanf:"promotion_score"`
	PromotionTenureYears   float64 `koanf:"promotion_tenure_years"`
	PromotionTrainingHours float64 `koanf:"promotion_training_hours"`

	// Training is recommended when either bound is missed.
	TrainingLowScore float64 `koanf:"training_low_score"`
	TrainingMinHours float64 `koanf:"training_min_hours"`

	// SickLeaveCeiling is the most sick-leave days tolerated before an
	// alert is raised.
	SickLeaveCeiling int `koanf:"sick_leave_ceiling"`
}

// DefaultThresholds returns the documented threshold table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LowSatisfaction:        defaultLowSatisfaction,
		LowScore:               defaultLowScore,
		PromotionScore:         defaultPromotionScore,
		PromotionTenureYears:   defaultPromotionTenureYears,
		PromotionTrainingHours: defaultPromotionTrainingHours,
		TrainingLowScore:       defaultTrainingLowScore,
		TrainingMinHours:       defaultTrainingMinHours,
		SickLeaveCeiling:       defaultSickLeaveCeiling,
	}
}

func (t Thresholds) valid() bool {
	return t.LowSatisfaction > 0 && t.LowScore > 0 &&
		t.PromotionScore > 0 && t.PromotionTenureYears > 0 && t.PromotionTrainingHours > 0 &&
		t.TrainingLowScore > 0 && t.TrainingMinHours > 0 && t.SickLeaveCeiling >= 0
}

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithThresholds replaces the threshold table. Tables with non-positive
// bounds are ignored and the defaults kept.
func WithThresholds(t Thresholds) Option {
	return func(c *Classifier) {
		if t.valid() {
			c.thresholds = t
		}
	}
}

// Classifier evaluates the flag rules. Stateless apart from its
// threshold table, so safe for concurrent use.
type Classifier struct {
	thresholds Thresholds
}

// New creates a Classifier with the default threshold table.
func New(opts ...Option) *Classifier {
	c := &Classifier{thresholds: DefaultThresholds()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Thresholds returns the active threshold table.
func (c *Classifier) Thresholds() Thresholds { return c.thresholds }

// Classify derives the flag set for a normalized record and its score.
// Each flag is computed from its own rule only; no flag consults another.
func (c *Classifier) Classify(rec model.EmployeeRecord, score float64) model.FlagSet {
	t := c.thresholds

	// Values sitting exactly on a risk threshold count as below it, so
	// ties land on the riskier tier.
	satLow := rec.SatisfactionScore <= t.LowSatisfaction
	scoreLow := score <= t.LowScore

	risk := model.RiskLow
	switch {
	case satLow && scoreLow:
		risk = model.RiskHigh
	case satLow || scoreLow:
		risk = model.RiskMedium
	}

	return model.FlagSet{
		ResignationRisk: risk,
		PromotionEligible: score >= t.PromotionScore &&
			rec.TenureYears >= t.PromotionTenureYears &&
			rec.TrainingHours >= t.PromotionTrainingHours,
		TrainingNeeded: score < t.TrainingLowScore || rec.TrainingHours < t.TrainingMinHours,
		LeaveAlert:     rec.SickLeaveDays > t.SickLeaveCeiling,
	}
}
