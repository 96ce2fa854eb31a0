// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/staffsight/staffsight/internal/adapters/report"
	"github.com/staffsight/staffsight/internal/domain/aggregate"
	"github.com/staffsight/staffsight/internal/domain/model"
)

// ReportsHandler handles PDF report generation requests.
type ReportsHandler struct {
	deps      Dependencies
	generator *report.Generator
	defaultN  int
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(deps Dependencies, generator *report.Generator, defaultN int) *ReportsHandler {
	return &ReportsHandler{
		deps:      deps,
		generator: generator,
		defaultN:  defaultN,
	}
}

// HandleEvaluationReport handles POST /reports/evaluation requests.
// The body is one employee record; the response is a PDF document.
func (h *ReportsHandler) HandleEvaluationReport(w http.ResponseWriter, r *http.Request) {
	const op = "api.report_evaluation"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	rec := req.toModel()
	result, _, err := h.deps.EvaluateOne(r.Context(), rec)
	if err != nil {
		if isInvalidRecord(err) {
			writeError(w, http.StatusUnprocessableEntity, "invalid_record", WrapKind(op, ErrInvalidRecord, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	pdf, err := h.generator.EvaluationReport(rec, result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writePDF(w, "evaluation-"+result.EmployeeID+".pdf", pdf)
}

// HandleSummaryReport handles POST /reports/summary requests. The body
// carries a batch of records; the response is a PDF with department
// summaries and top/bottom rankings.
func (h *ReportsHandler) HandleSummaryReport(w http.ResponseWriter, r *http.Request) {
	const op = "api.report_summary"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
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
	batch := h.deps.EvaluateBatch(r.Context(), recs)

	top, err := aggregate.TopN(batch.Results, h.defaultN)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	bottom, err := aggregate.BottomN(batch.Results, h.defaultN)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	pdf, err := h.generator.SummaryReport(aggregate.Summarize(batch.Results), aggregate.Overall(batch.Results), top, bottom)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writePDF(w, "summary-"+batch.RunID+".pdf", pdf)
}

func writePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
