// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/staffsight/staffsight/internal/domain/types"
)

// EvaluateHandler handles single-record evaluation requests.
type EvaluateHandler struct {
	deps Dependencies
}

// NewEvaluateHandler creates a new evaluate handler.
func NewEvaluateHandler(deps Dependencies) *EvaluateHandler {
	return &EvaluateHandler{deps: deps}
}

// evaluateResponse carries one evaluation plus any normalization
// adjustments applied before scoring.
type evaluateResponse struct {
	Evaluation  types.Evaluation     `json:"evaluation"`
	Adjustments []adjustmentResponse `json:"adjustments,omitempty"`
}

// HandlePostEvaluate handles POST /evaluate requests.
func (h *EvaluateHandler) HandlePostEvaluate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_evaluate"
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

	result, adjustments, err := h.deps.EvaluateOne(r.Context(), req.toModel())
	if err != nil {
		if isInvalidRecord(err) {
			writeError(w, http.StatusUnprocessableEntity, "invalid_record", WrapKind(op, ErrInvalidRecord, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	writeJSON(w, http.StatusOK, evaluateResponse{
		Evaluation:  toEvaluation(result),
		Adjustments: toAdjustments(adjustments),
	})
}
