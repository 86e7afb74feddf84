package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	repository "github.com/okian/gaffer/internal/adapters/repository"
	"github.com/okian/gaffer/internal/domain/model"
)

// MemberDependencies defines the interface for member roster operations.
type MemberDependencies interface {
	AddMember(ctx context.Context, m model.Member) (model.Member, error)
	Members(ctx context.Context) []model.Member
	Member(ctx context.Context, id string) (model.Member, error)
	RemoveMember(ctx context.Context, id string) error
}

// MembersHandler handles member roster requests.
type MembersHandler struct {
	deps     MemberDependencies
	maxLimit int
}

// NewMembersHandler creates a new members handler.
func NewMembersHandler(deps MemberDependencies, maxLimit int) *MembersHandler {
	return &MembersHandler{deps: deps, maxLimit: maxLimit}
}

// HandleMembers handles POST /members and GET /members requests.
func (h *MembersHandler) HandleMembers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleCreate(w, r)
	case http.MethodGet:
		h.handleList(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *MembersHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_member"
	var req memberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	stored, err := h.deps.AddMember(r.Context(), req.toModel())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			writeError(w, http.StatusConflict, "duplicate_id", Wrap(op, err))
			return
		}
		if errors.Is(err, model.ErrInvalidMember) {
			writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (h *MembersHandler) handleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_members"
	members := h.deps.Members(r.Context())

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		if n < len(members) {
			members = members[:n]
		}
	}
	writeJSON(w, http.StatusOK, members)
}

// HandleMemberByID handles GET /members/{id} and DELETE /members/{id}.
func (h *MembersHandler) HandleMemberByID(w http.ResponseWriter, r *http.Request) {
	const op = "api.member_by_id"
	id := strings.TrimPrefix(r.URL.Path, "/members/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch r.Method {
	case http.MethodGet:
		m, err := h.deps.Member(r.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrMemberNotFound) {
				writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, m)
	case http.MethodDelete:
		if err := h.deps.RemoveMember(r.Context(), id); err != nil {
			if errors.Is(err, repository.ErrMemberNotFound) {
				writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, statusResponse{Status: "deleted"})
	default:
		http.NotFound(w, r)
	}
}
