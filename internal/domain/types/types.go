// Package types contains common types used across the application
package types

// Evaluation mirrors the JSON shape returned for a single evaluated employee.
type Evaluation struct {
	EmployeeID        string  `json:"employee_id"`
	Department        string  `json:"department"`
	Score             float64 `json:"productivity_score"`
	ResignationRisk   string  `json:"resignation_risk"`
	PromotionEligible bool    `json:"promotion_eligible"`
	TrainingNeeded    bool    `json:"training_needed"`
	LeaveAlert        bool    `json:"leave_alert"`
}

// RankedEntry is one row of a top-N or bottom-N ranking.
type RankedEntry struct {
	Rank       int     `json:"rank"`
	EmployeeID string  `json:"employee_id"`
	Department string  `json:"department"`
	Score      float64 `json:"productivity_score"`
}

// Summary mirrors the JSON shape of a department summary.
type Summary struct {
	Department        string  `json:"department"`
	Count             int     `json:"employee_count"`
	MeanScore         float64 `json:"mean_score"`
	MedianScore       float64 `json:"median_score"`
	ScoreStdDev       float64 `json:"score_stddev"`
	HighRisk          int     `json:"high_risk"`
	MediumRisk        int     `json:"medium_risk"`
	LowRisk           int     `json:"low_risk"`
	PromotionEligible int     `json:"promotion_eligible"`
	TrainingNeeded    int     `json:"training_needed"`
	LeaveAlerts       int     `json:"leave_alerts"`
	Empty             bool    `json:"empty"`
}
