// Package model contains domain values passed between layers.
package model

// EmployeeRecord holds one employee's raw attributes as loaded from a
// tabular source. The engine treats it as immutable; normalization
// returns a copy.
type EmployeeRecord struct {
	ID         string // unique employee identifier, required
	Name       string // optional, used only in rendered output
	Department string // grouping category, required
	JobTitle   string // optional, used only in rendered output

	TenureYears       float64 // years since hire, >= 0
	PerformanceScore  float64 // review score on a 1-5 scale
	TrainingHours     float64 // monthly training hours, >= 0
	ProjectsHandled   int     // projects currently handled, >= 0
	SatisfactionScore float64 // self-reported satisfaction on a 1-5 scale
	SickLeaveDays     int     // sick-leave days in the evaluation period, >= 0
}

// RiskTier is the categorical resignation-risk estimate.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// FlagSet carries the classification flags derived from a record and
// its productivity score.
type FlagSet struct {
	ResignationRisk   RiskTier
	PromotionEligible bool
	TrainingNeeded    bool
	LeaveAlert        bool
}

// EvaluationResult is the engine's per-employee output. Created fresh on
// every evaluation call and never mutated afterwards.
type EvaluationResult struct {
	EmployeeID string
	Department string
	Score      float64 // productivity score in [0,100]
	Flags      FlagSet
}

// RecordError reports one record skipped during a batch evaluation.
type RecordError struct {
	Index      int
	EmployeeID string
	Reason     string
}

// BatchResult is the output of one batch evaluation run. Results and
// Skipped partition the input: a bad record degrades to a RecordError
// while its siblings still evaluate.
type BatchResult struct {
	RunID   string
	Results []EvaluationResult
	Skipped []RecordError
}

// DepartmentSummary aggregates evaluation results sharing a department.
// Empty marks a summary computed over zero results; its statistics are
// zero rather than NaN.
type DepartmentSummary struct {
	Department string
	Count      int

	MeanScore   float64
	MedianScore float64
	ScoreStdDev float64

	HighRisk          int
	MediumRisk        int
	LowRisk           int
	PromotionEligible int
	TrainingNeeded    int
	LeaveAlerts       int

	Empty bool
}
