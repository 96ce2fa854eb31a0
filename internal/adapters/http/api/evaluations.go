// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/staffsight/staffsight/internal/adapters/dataset"
	"github.com/staffsight/staffsight/internal/domain/model"
	"github.com/staffsight/staffsight/internal/domain/types"
)

// EvaluationsHandler handles batch evaluation requests, JSON and CSV.
type EvaluationsHandler struct {
	deps     Dependencies
	maxLimit int
	defaultN int
}

// NewEvaluationsHandler creates a new evaluations handler.
func NewEvaluationsHandler(deps Dependencies, maxLimit, defaultN int) *EvaluationsHandler {
	return &EvaluationsHandler{
		deps:     deps,
		maxLimit: maxLimit,
		defaultN: defaultN,
	}
}

// evaluationsRequest mirrors the JSON schema for POST /evaluations.
type evaluationsRequest struct {
	Records []recordRequest `json:"records"`
}

// rowErrorResponse reports one CSV row that failed to decode.
type rowErrorResponse struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// batchResponse is the full output of one batch run: per-employee
// evaluations, skip reports, aggregate views, and rankings.
type batchResponse struct {
	RunID     string                   `json:"run_id"`
	Results   []types.Evaluation       `json:"results"`
	Skipped   []skippedResponse        `json:"skipped,omitempty"`
	RowErrors []rowErrorResponse       `json:"row_errors,omitempty"`
	Summaries map[string]types.Summary `json:"summaries"`
	Overall   types.Summary            `json:"overall"`
	Top       []types.RankedEntry      `json:"top"`
	Bottom    []types.RankedEntry      `json:"bottom"`
}

// HandlePostEvaluations handles POST /evaluations?limit=N requests.
func (h *EvaluationsHandler) HandlePostEvaluations(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_evaluations"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	n, err := parseLimit(r, h.defaultN, h.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	var req evaluationsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if len(req.Records) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	recs := make([]model.EmployeeRecord, len(req.Records))
	for i, rr := range req.Records {
		recs[i] = rr.toModel()
	}

	resp, err := h.runBatch(r, recs, n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandlePostCSV handles POST /evaluations/csv?limit=N requests with a
// CSV body. Decode failures on individual rows degrade to row_errors.
func (h *EvaluationsHandler) HandlePostCSV(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_evaluations_csv"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	n, err := parseLimit(r, h.defaultN, h.maxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	recs, rowErrs, err := dataset.DecodeCSV(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	resp, err := h.runBatch(r, recs, n)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	for _, re := range rowErrs {
		resp.RowErrors = append(resp.RowErrors, rowErrorResponse{Line: re.Line, Reason: re.Reason})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *EvaluationsHandler) runBatch(r *http.Request, recs []model.EmployeeRecord, n int) (*batchResponse, error) {
	ctx := r.Context()
	batch := h.deps.EvaluateBatch(ctx, recs)

	top, err := h.deps.TopN(ctx, batch.Results, n)
	if err != nil {
		return nil, err
	}
	bottom, err := h.deps.BottomN(ctx, batch.Results, n)
	if err != nil {
		return nil, err
	}

	return &batchResponse{
		RunID:     batch.RunID,
		Results:   toEvaluations(batch.Results),
		Skipped:   toSkipped(batch.Skipped),
		Summaries: h.deps.Summaries(ctx, batch.Results),
		Overall:   h.deps.Overall(ctx, batch.Results),
		Top:       top,
		Bottom:    bottom,
	}, nil
}

func toEvaluation(r model.EvaluationResult) types.Evaluation {
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

func toEvaluations(results []model.EvaluationResult) []types.Evaluation {
	out := make([]types.Evaluation, len(results))
	for i, r := range results {
		out[i] = toEvaluation(r)
	}
	return out
}
