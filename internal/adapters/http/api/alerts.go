// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/staffsight/staffsight/internal/adapters/notify"
)

// AlertsHandler builds outreach drafts for a flagged employee and
// optionally delivers them by email.
type AlertsHandler struct {
	deps   Dependencies
	sender notify.Sender
}

// NewAlertsHandler creates a new alerts handler. A nil sender disables
// delivery; drafts are still returned.
func NewAlertsHandler(deps Dependencies, sender notify.Sender) *AlertsHandler {
	return &AlertsHandler{deps: deps, sender: sender}
}

// alertsRequest mirrors the JSON schema for POST /alerts.
type alertsRequest struct {
	Record    recordRequest `json:"record"`
	Recipient string        `json:"recipient"`
	Send      bool          `json:"send"`
}

type draftResponse struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type alertsResponse struct {
	EmployeeID string          `json:"employee_id"`
	Drafts     []draftResponse `json:"drafts"`
	Sent       int             `json:"sent"`
}

// HandlePostAlerts handles POST /alerts requests.
func (h *AlertsHandler) HandlePostAlerts(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_alerts"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req alertsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.Record.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if req.Send && h.sender == nil {
		writeError(w, http.StatusBadRequest, "bad_request",
			WrapKind(op, ErrBadRequest, errors.New("email delivery not configured")))
		return
	}
	if req.Send && req.Recipient == "" {
		writeError(w, http.StatusBadRequest, "bad_request",
			WrapKind(op, ErrBadRequest, errors.New("missing recipient")))
		return
	}

	rec := req.Record.toModel()
	result, _, err := h.deps.EvaluateOne(r.Context(), rec)
	if err != nil {
		if isInvalidRecord(err) {
			writeError(w, http.StatusUnprocessableEntity, "invalid_record", WrapKind(op, ErrInvalidRecord, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}

	drafts := notify.DraftsFor(rec, result)
	resp := alertsResponse{
		EmployeeID: result.EmployeeID,
		Drafts:     make([]draftResponse, 0, len(drafts)),
	}
	for _, d := range drafts {
		resp.Drafts = append(resp.Drafts, draftResponse{
			Kind:    string(d.Kind),
			Subject: d.Subject,
			Body:    d.Body,
		})
		if req.Send {
			if err := h.sender.Send(r.Context(), req.Recipient, d); err != nil {
				writeError(w, http.StatusBadGateway, "delivery_failed", Wrap(op, err))
				return
			}
			resp.Sent++
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
