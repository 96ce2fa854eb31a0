// Package app provides the evaluation service that implements the
// dependencies required by the HTTP API.
package app

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/staffsight/staffsight/internal/domain/aggregate"
	"github.com/staffsight/staffsight/internal/domain/dedupe"
	"github.com/staffsight/staffsight/internal/domain/model"
	"github.com/staffsight/staffsight/internal/domain/normalize"
	"github.com/staffsight/staffsight/internal/domain/rules"
	"github.com/staffsight/staffsight/internal/domain/scoring"
	"github.com/staffsight/staffsight/internal/domain/types"
	"github.com/staffsight/staffsight/pkg/logger"
	"github.com/staffsight/staffsight/pkg/metrics"
)

// Service implements the evaluation engine behind the HTTP API. It holds
// only fixed configuration tables; every call receives its full input
// and returns its full output, so concurrent calls need no locking.
type Service struct {
	scorer     *scoring.Scorer
	classifier *rules.Classifier

	weights    scoring.Weights
	scale      scoring.Scale
	thresholds rules.Thresholds

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWeights sets the productivity-score weight table.
func WithWeights(w scoring.Weights) Option {
	return func(s *Service) {
		s.weights = w
	}
}

// WithScale sets the saturation caps for the open-ended metrics.
func WithScale(sc scoring.Scale) Option {
	return func(s *Service) {
		s.scale = sc
	}
}

// WithThresholds sets the classification threshold table.
func WithThresholds(t rules.Thresholds) Option {
	return func(s *Service) {
		s.thresholds = t
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		weights:    scoring.DefaultWeights(),
		scale:      scoring.DefaultScale(),
		thresholds: rules.DefaultThresholds(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.scorer = scoring.New(scoring.WithWeights(s.weights), scoring.WithScale(s.scale))
	s.classifier = rules.New(rules.WithThresholds(s.thresholds))

	return s
}

// EvaluateOne runs the full pipeline for a single record: normalize,
// score, classify. Returns the result together with any normalization
// adjustments so callers can surface them.
func (s *Service) EvaluateOne(ctx context.Context, rec model.EmployeeRecord) (model.EvaluationResult, []normalize.Adjustment, error) {
	norm, adjustments, err := normalize.Normalize(rec)
	if err != nil {
		metrics.RecordRejected()
		return model.EvaluationResult{}, nil, err
	}

	for _, a := range adjustments {
		metrics.RecordClamp(a.Field)
		s.logger.Warn(ctx, "field outside expected domain; clamped",
			logger.String("employeeID", norm.ID),
			logger.String("field", a.Field),
			logger.Float64("from", a.From),
			logger.Float64("to", a.To),
		)
	}

	score := s.scorer.Score(norm)
	flags := s.classifier.Classify(norm, score)

	metrics.RecordEvaluation(score)
	metrics.RecordRiskTier(string(flags.ResignationRisk))
	if flags.PromotionEligible {
		metrics.RecordPromotionEligible()
	}
	if flags.TrainingNeeded {
		metrics.RecordTrainingNeeded()
	}
	if flags.LeaveAlert {
		metrics.RecordLeaveAlert()
	}

	s.logger.Debug(ctx, "record evaluated",
		logger.String("employeeID", norm.ID),
		logger.String("department", norm.Department),
		logger.Float64("score", score),
		logger.String("resignationRisk", string(flags.ResignationRisk)),
		logger.Bool("promotionEligible", flags.PromotionEligible),
	)

	return model.EvaluationResult{
		EmployeeID: norm.ID,
		Department: norm.Department,
		Score:      score,
		Flags:      flags,
	}, adjustments, nil
}

// EvaluateBatch evaluates every record in order. Records with missing
// identity fields or duplicate IDs are skipped and reported; the batch
// itself never fails.
func (s *Service) EvaluateBatch(ctx context.Context, recs []model.EmployeeRecord) model.BatchResult {
	batch := model.BatchResult{
		RunID:   uuid.NewString(),
		Results: make([]model.EvaluationResult, 0, len(recs)),
	}

	seen := dedupe.NewInMemoryDeduper(dedupe.WithInitialCapacity(len(recs)))
	for i, rec := range recs {
		if rec.ID != "" && seen.SeenAndRecord(ctx, rec.ID) {
			metrics.RecordDuplicate()
			batch.Skipped = append(batch.Skipped, model.RecordError{
				Index:      i,
				EmployeeID: rec.ID,
				Reason:     ErrDuplicateID.Error(),
			})
			continue
		}

		result, _, err := s.EvaluateOne(ctx, rec)
		if err != nil {
			batch.Skipped = append(batch.Skipped, model.RecordError{
				Index:      i,
				EmployeeID: rec.ID,
				Reason:     err.Error(),
			})
			continue
		}
		batch.Results = append(batch.Results, result)
	}

	metrics.RecordBatch(len(recs))
	s.logger.Info(ctx, "batch evaluated",
		logger.String("runID", batch.RunID),
		logger.Int("records", len(recs)),
		logger.Int("evaluated", len(batch.Results)),
		logger.Int("skipped", len(batch.Skipped)),
	)

	return batch
}

// Summaries groups results by department and returns the API shape.
func (s *Service) Summaries(ctx context.Context, results []model.EvaluationResult) map[string]types.Summary {
	grouped := aggregate.Summarize(results)
	out := make(map[string]types.Summary, len(grouped))
	for dept, sum := range grouped {
		out[dept] = toSummary(sum)
	}
	return out
}

// Overall returns the population-wide summary. With zero results the
// summary carries the explicit empty marker.
func (s *Service) Overall(ctx context.Context, results []model.EvaluationResult) types.Summary {
	return toSummary(aggregate.Overall(results))
}

// TopN returns the n best results as ranked entries.
func (s *Service) TopN(ctx context.Context, results []model.EvaluationResult, n int) ([]types.RankedEntry, error) {
	top, err := aggregate.TopN(results, n)
	if err != nil {
		return nil, err
	}
	return toRanked(top), nil
}

// BottomN returns the n weakest results as ranked entries.
func (s *Service) BottomN(ctx context.Context, results []model.EvaluationResult, n int) ([]types.RankedEntry, error) {
	bottom, err := aggregate.BottomN(results, n)
	if err != nil {
		return nil, err
	}
	return toRanked(bottom), nil
}

// GetStats returns the active configuration tables for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"weights":    s.scorer.Weights(),
		"scale":      s.scale,
		"thresholds": s.classifier.Thresholds(),
	}
}

// ToEvaluation converts a domain result to its API shape.
func ToEvaluation(r model.EvaluationResult) types.Evaluation {
	return types.Evaluation{
		EmployeeID:        r.EmployeeID,
		Department:        r.Department,
		Score:             r.Score,
		ResignationRisk:   string(r.Flags.ResignationRisk),
		PromotionEligible: r.Flags.PromotionEligible,
		TrainingNeeded:    r.Flags.TrainingNeeded,
		LeaveAlert:        r.Flags.LeaveAlert,
	}
}

func toRanked(results []model.EvaluationResult) []types.RankedEntry {
	entries := make([]types.RankedEntry, len(results))
	for i, r := range results {
		entries[i] = types.RankedEntry{
			Rank:       i + 1,
			EmployeeID: r.EmployeeID,
			Department: r.Department,
			Score:      r.Score,
		}
	}
	return entries
}

func toSummary(s model.DepartmentSummary) types.Summary {
	return types.Summary{
		Department:        s.Department,
		Count:             s.Count,
		MeanScore:         s.MeanScore,
		MedianScore:       s.MedianScore,
		ScoreStdDev:       s.ScoreStdDev,
		HighRisk:          s.HighRisk,
		MediumRisk:        s.MediumRisk,
		LowRisk:           s.LowRisk,
		PromotionEligible: s.PromotionEligible,
		TrainingNeeded:    s.TrainingNeeded,
		LeaveAlerts:       s.LeaveAlerts,
		Empty:             s.Empty,
	}
}

// IsInvalidRecord reports whether err marks a record-level input
// failure rather than a systemic one.
func IsInvalidRecord(err error) bool {
	return errors.Is(err, normalize.ErrMissingID) ||
		errors.Is(err, normalize.ErrMissingDepartment) ||
		errors.Is(err, ErrDuplicateID)
}
