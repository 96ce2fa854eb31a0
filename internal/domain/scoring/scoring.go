// Package scoring computes the weighted productivity score from
// normalized employee metrics.
package scoring

import (
	"math"

	"github.com/staffsight/staffsight/internal/domain/model"
)

// Default scoring configuration constants. Performance and project load
// carry most of the weight; training and satisfaction act as secondary
// modifiers. The caps fix the point at which more projects or training
// hours stop raising the score.
const (
	defaultPerformanceWeight  = 0.40
	defaultProjectsWeight     = 0.30
	defaultTrainingWeight     = 0.20
	defaultSatisfactionWeight = 0.10

	defaultProjectsCap      = 10.0
	defaultTrainingHoursCap = 40.0

	performanceScale  = 5.0
	satisfactionScale = 5.0

	maxScoreValue = 100.0
)

// Weights is the fixed relative weighting of the four scored metrics.
// Weights need not sum to one; the scorer renormalizes by their sum so
// the output range stays [0,100] for any positive table.
type Weights struct {
	Performance  float64 `koanf:"performance"`
	Projects     float64 `koanf:"projects"`
	Training     float64 `koanf:"training"`
	Satisfaction float64 `koanf:"satisfaction"`
}

// Scale holds the saturation caps for the open-ended metrics.
type Scale struct {
	ProjectsCap      float64 `koanf:"projects_cap"`
	TrainingHoursCap float64 `koanf:"training_hours_cap"`
}

// DefaultWeights returns the documented weight table.
func DefaultWeights() Weights {
	return Weights{
		Performance:  defaultPerformanceWeight,
		Projects:     defaultProjectsWeight,
		Training:     defaultTrainingWeight,
		Satisfaction: defaultSatisfactionWeight,
	}
}

// DefaultScale returns the documented saturation caps.
func DefaultScale() Scale {
	return Scale{ProjectsCap: defaultProjectsCap, TrainingHoursCap: defaultTrainingHoursCap}
}

func (w Weights) valid() bool {
	return w.Performance > 0 && w.Projects > 0 && w.Training > 0 && w.Satisfaction > 0
}

func (s Scale) valid() bool {
	return s.ProjectsCap > 0 && s.TrainingHoursCap > 0
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithWeights replaces the weight table. Tables with a non-positive
// entry are ignored and the defaults kept.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		if w.valid() {
			s.weights = w
		}
	}
}

// WithScale replaces the saturation caps. Non-positive caps are ignored.
func WithScale(sc Scale) Option {
	return func(s *Scorer) {
		if sc.valid() {
			s.scale = sc
		}
	}
}

// Scorer computes productivity scores. It holds only the fixed
// configuration table, so a single instance is safe for concurrent use.
type Scorer struct {
	weights Weights
	scale   Scale
}

// New creates a Scorer with the default configuration table.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		weights: DefaultWeights(),
		scale:   DefaultScale(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score computes the productivity score for a normalized record.
// Deterministic: the same record always yields the same value, and the
// result is always within [0,100].
func (s *Scorer) Score(rec model.EmployeeRecord) float64 {
	w := s.weights
	total := w.Performance + w.Projects + w.Training + w.Satisfaction

	weighted := w.Performance*ratio(rec.PerformanceScore, performanceScale) +
		w.Projects*ratio(float64(rec.ProjectsHandled), s.scale.ProjectsCap) +
		w.Training*ratio(rec.TrainingHours, s.scale.TrainingHoursCap) +
		w.Satisfaction*ratio(rec.SatisfactionScore, satisfactionScale)

	score := maxScoreValue * weighted / total
	return math.Max(0, math.Min(maxScoreValue, score))
}

// Weights returns the active weight table.
func (s *Scorer) Weights() Weights { return s.weights }

// ratio maps v onto [0,1], saturating at limit.
func ratio(v, limit float64) float64 {
	if v <= 0 {
		return 0
	}
	if v >= limit {
		return 1
	}
	return v / limit
}
