package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"doce-festa/go_backend/internal/domain/quote/pdf"
	"doce-festa/go_backend/internal/domain/rental"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeError maps the domain error taxonomy to HTTP statuses. Anything
// outside it is reported as an internal error without details.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *rental.ValidationError
	switch {
	case errors.As(err, &ve):
		h.Log.Warn("request rejected", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Details: ve.Violations})
	case errors.Is(err, rental.ErrNotFound):
		h.Log.Warn("request rejected", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "not_found", Details: err.Error()})
	case errors.Is(err, rental.ErrRange):
		h.Log.Warn("request rejected", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "quantity_out_of_range", Details: err.Error()})
	case errors.Is(err, rental.ErrEmptySelection):
		h.Log.Warn("request rejected", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "empty_selection"})
	case errors.Is(err, pdf.ErrRender):
		h.Log.Error("quote render failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "render_failed"})
	default:
		h.Log.Error("request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal_error"})
	}
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &rental.ValidationError{Violations: rental.Violations{"body": "invalid_json"}}
	}
	return nil
}
