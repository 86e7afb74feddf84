package api

import (
	"context"
	"net/http"

	"github.com/okian/gaffer/internal/domain/types"
)

// AllocateDependencies defines the interface for running an allocation.
type AllocateDependencies interface {
	Allocate(ctx context.Context) (types.Report, error)
}

// AllocateHandler handles allocation requests.
type AllocateHandler struct {
	deps AllocateDependencies
}

// NewAllocateHandler creates a new allocate handler.
func NewAllocateHandler(deps AllocateDependencies) *AllocateHandler {
	return &AllocateHandler{deps: deps}
}

// HandleAllocate handles POST /allocate requests. A failed run reports a
// single batch-level error with no partial results; tasks nobody could
// take are a normal part of the report, not an error.
func (h *AllocateHandler) HandleAllocate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_allocate"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	report, err := h.deps.Allocate(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "allocation_failed", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, report)
}
