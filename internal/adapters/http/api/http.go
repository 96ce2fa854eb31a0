// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/staffsight/staffsight/internal/adapters/notify"
	"github.com/staffsight/staffsight/internal/adapters/report"
	"github.com/staffsight/staffsight/internal/domain/model"
	"github.com/staffsight/staffsight/internal/domain/normalize"
	"github.com/staffsight/staffsight/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// EvaluateOne runs the full pipeline for a single record.
	EvaluateOne(ctx context.Context, rec model.EmployeeRecord) (model.EvaluationResult, []normalize.Adjustment, error)

	// EvaluateBatch evaluates every record, skipping bad ones.
	EvaluateBatch(ctx context.Context, recs []model.EmployeeRecord) model.BatchResult

	// Read operations expose aggregate views over results.
	Summaries(ctx context.Context, results []model.EvaluationResult) map[string]types.Summary
	Overall(ctx context.Context, results []model.EvaluationResult) types.Summary
	TopN(ctx context.Context, results []model.EvaluationResult, n int) ([]types.RankedEntry, error)
	BottomN(ctx context.Context, results []model.EvaluationResult, n int) ([]types.RankedEntry, error)
}

// isInvalidRecord reports whether err marks a record-level input
// failure that should map to 422 rather than 500.
func isInvalidRecord(err error) bool {
	return errors.Is(err, normalize.ErrMissingID) ||
		errors.Is(err, normalize.ErrMissingDepartment)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	evaluateHandler    *EvaluateHandler
	evaluationsHandler *EvaluationsHandler
	reportsHandler     *ReportsHandler
	alertsHandler      *AlertsHandler
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*serverSettings)

type serverSettings struct {
	maxLimit  int
	defaultN  int
	generator *report.Generator
	sender    notify.Sender
}

// WithRankingLimits sets the maximum and default sizes for ranking queries.
func WithRankingLimits(maxLimit, defaultN int) ServerOption {
	return func(s *serverSettings) {
		if maxLimit >= 1 {
			s.maxLimit = maxLimit
		}
		if defaultN >= 1 {
			s.defaultN = defaultN
		}
	}
}

// WithReportGenerator sets the PDF generator used by report endpoints.
func WithReportGenerator(g *report.Generator) ServerOption {
	return func(s *serverSettings) {
		if g != nil {
			s.generator = g
		}
	}
}

// WithAlertSender enables email delivery on the alerts endpoint. Without
// a sender the endpoint still returns drafts.
func WithAlertSender(sender notify.Sender) ServerOption {
	return func(s *serverSettings) {
		s.sender = sender
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	settings := &serverSettings{
		maxLimit:  100,
		defaultN:  5,
		generator: report.New(),
	}
	for _, opt := range opts {
		opt(settings)
	}

	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		evaluateHandler:    NewEvaluateHandler(deps),
		evaluationsHandler: NewEvaluationsHandler(deps, settings.maxLimit, settings.defaultN),
		reportsHandler:     NewReportsHandler(deps, settings.generator, settings.defaultN),
		alertsHandler:      NewAlertsHandler(deps, settings.sender),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/evaluate", MetricsMiddleware(s.evaluateHandler.HandlePostEvaluate, "evaluate"))
	mux.HandleFunc("/evaluations/csv", MetricsMiddleware(s.evaluationsHandler.HandlePostCSV, "evaluations_csv"))
	mux.HandleFunc("/evaluations", MetricsMiddleware(s.evaluationsHandler.HandlePostEvaluations, "evaluations"))
	mux.HandleFunc("/reports/evaluation", MetricsMiddleware(s.reportsHandler.HandleEvaluationReport, "report_evaluation"))
	mux.HandleFunc("/reports/summary", MetricsMiddleware(s.reportsHandler.HandleSummaryReport, "report_summary"))
	mux.HandleFunc("/alerts", MetricsMiddleware(s.alertsHandler.HandlePostAlerts, "alerts"))
}

// recordRequest mirrors the JSON schema for one employee record.
type recordRequest struct {
	EmployeeID        string  `json:"employee_id"`
	Name              string  `json:"name"`
	Department        string  `json:"department"`
	JobTitle          string  `json:"job_title"`
	TenureYears       float64 `json:"tenure_years"`
	PerformanceScore  float64 `json:"performance_score"`
	TrainingHours     float64 `json:"training_hours"`
	ProjectsHandled   int     `json:"projects_handled"`
	SatisfactionScore float64 `json:"satisfaction_score"`
	SickLeaveDays     int     `json:"sick_leave_days"`
}

func (r recordRequest) validate() error {
	switch {
	case strings.TrimSpace(r.EmployeeID) == "":
		return errors.New("missing employee_id")
	case strings.TrimSpace(r.Department) == "":
		return errors.New("missing department")
	}
	return nil
}

func (r recordRequest) toModel() model.EmployeeRecord {
	return model.EmployeeRecord{
		ID:                strings.TrimSpace(r.EmployeeID),
		Name:              strings.TrimSpace(r.Name),
		Department:        strings.TrimSpace(r.Department),
		JobTitle:          strings.TrimSpace(r.JobTitle),
		TenureYears:       r.TenureYears,
		PerformanceScore:  r.PerformanceScore,
		TrainingHours:     r.TrainingHours,
		ProjectsHandled:   r.ProjectsHandled,
		SatisfactionScore: r.SatisfactionScore,
		SickLeaveDays:     r.SickLeaveDays,
	}
}

// adjustmentResponse reports one clamped field on an evaluated record.
type adjustmentResponse struct {
	Field string  `json:"field"`
	From  float64 `json:"from"`
	To    float64 `json:"to"`
}

func toAdjustments(adjs []normalize.Adjustment) []adjustmentResponse {
	out := make([]adjustmentResponse, len(adjs))
	for i, a := range adjs {
		out[i] = adjustmentResponse{Field: a.Field, From: a.From, To: a.To}
	}
	return out
}

// skippedResponse reports one record dropped from a batch.
type skippedResponse struct {
	Index      int    `json:"index"`
	EmployeeID string `json:"employee_id,omitempty"`
	Reason     string `json:"reason"`
}

func toSkipped(errs []model.RecordError) []skippedResponse {
	out := make([]skippedResponse, len(errs))
	for i, e := range errs {
		out[i] = skippedResponse{Index: e.Index, EmployeeID: e.EmployeeID, Reason: e.Reason}
	}
	return out
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// parseLimit reads the "limit" query parameter, falling back to
// defaultN when absent. Values outside [1, maxLimit] are rejected.
func parseLimit(r *http.Request, defaultN, maxLimit int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultN, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.New("limit must be a positive integer")
	}
	if n > maxLimit {
		return 0, errors.New("limit exceeds maximum")
	}
	return n, nil
}
