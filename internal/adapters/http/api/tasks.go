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

// TaskDependencies defines the interface for task backlog operations.
type TaskDependencies interface {
	AddTask(ctx context.Context, t model.Task) (model.Task, error)
	Tasks(ctx context.Context) []model.Task
	Task(ctx context.Context, id string) (model.Task, error)
	RemoveTask(ctx context.Context, id string) error
}

// TasksHandler handles task backlog requests.
type TasksHandler struct {
	deps     TaskDependencies
	maxLimit int
}

// NewTasksHandler creates a new tasks handler.
func NewTasksHandler(deps TaskDependencies, maxLimit int) *TasksHandler {
	return &TasksHandler{deps: deps, maxLimit: maxLimit}
}

// HandleTasks handles POST /tasks and GET /tasks requests.
func (h *TasksHandler) HandleTasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleCreate(w, r)
	case http.MethodGet:
		h.handleList(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *TasksHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_task"
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	stored, err := h.deps.AddTask(r.Context(), req.toModel())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			writeError(w, http.StatusConflict, "duplicate_id", Wrap(op, err))
			return
		}
		if errors.Is(err, model.ErrInvalidTask) {
			writeError(w, http.StatusBadRequest, "bad_request", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (h *TasksHandler) handleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_tasks"
	tasks := h.deps.Tasks(r.Context())

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
		if n < len(tasks) {
			tasks = tasks[:n]
		}
	}
	writeJSON(w, http.StatusOK, tasks)
}

// HandleTaskByID handles GET /tasks/{id} and DELETE /tasks/{id}.
func (h *TasksHandler) HandleTaskByID(w http.ResponseWriter, r *http.Request) {
	const op = "api.task_by_id"
	id := strings.TrimPrefix(r.URL.Path, "/tasks/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	switch r.Method {
	case http.MethodGet:
		t, err := h.deps.Task(r.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
				writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, t)
	case http.MethodDelete:
		if err := h.deps.RemoveTask(r.Context(), id); err != nil {
			if errors.Is(err, repository.ErrTaskNotFound) {
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
