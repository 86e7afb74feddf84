package api

import (
	"context"
	"net/http"
)

// ResetDependencies defines the interface for resetting the roster.
type ResetDependencies interface {
	Reset(ctx context.Context)
}

// ResetHandler handles reset requests.
type ResetHandler struct {
	deps ResetDependencies
}

// NewResetHandler creates a new reset handler.
func NewResetHandler(deps ResetDependencies) *ResetHandler {
	return &ResetHandler{deps: deps}
}

// HandleReset handles POST /reset requests.
func (h *ResetHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	h.deps.Reset(r.Context())
	writeJSON(w, http.StatusOK, statusResponse{Status: "reset"})
}
