// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/okian/gaffer/internal/domain/model"
	"github.com/okian/gaffer/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	AddMember(ctx context.Context, m model.Member) (model.Member, error)
	Members(ctx context.Context) []model.Member
	Member(ctx context.Context, id string) (model.Member, error)
	RemoveMember(ctx context.Context, id string) error

	AddTask(ctx context.Context, t model.Task) (model.Task, error)
	Tasks(ctx context.Context) []model.Task
	Task(ctx context.Context, id string) (model.Task, error)
	RemoveTask(ctx context.Context, id string) error

	// Allocate runs one allocation pass and commits the outcome.
	Allocate(ctx context.Context) (types.Report, error)

	// Reset zeroes workloads and clears assignment outcomes.
	Reset(ctx context.Context)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	membersHandler  *MembersHandler
	tasksHandler    *TasksHandler
	allocateHandler *AllocateHandler
	resetHandler    *ResetHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxListLimit int) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		membersHandler:  NewMembersHandler(deps, maxListLimit),
		tasksHandler:    NewTasksHandler(deps, maxListLimit),
		allocateHandler: NewAllocateHandler(deps),
		resetHandler:    NewResetHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/members", MetricsMiddleware(s.membersHandler.HandleMembers, "members"))
	mux.HandleFunc("/members/", MetricsMiddleware(s.membersHandler.HandleMemberByID, "member"))
	mux.HandleFunc("/tasks", MetricsMiddleware(s.tasksHandler.HandleTasks, "tasks"))
	mux.HandleFunc("/tasks/", MetricsMiddleware(s.tasksHandler.HandleTaskByID, "task"))
	mux.HandleFunc("/allocate", MetricsMiddleware(s.allocateHandler.HandleAllocate, "allocate"))
	mux.HandleFunc("/reset", MetricsMiddleware(s.resetHandler.HandleReset, "reset"))
}

// memberRequest mirrors the OpenAPI schema for POST /members.
type memberRequest struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Skills      []string           `json:"skills"`
	SkillLevels map[string]float64 `json:"skill_levels"`
	MaxCapacity float64            `json:"max_capacity"`
}

func (m memberRequest) validate() error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return errors.New("missing name")
	case m.MaxCapacity <= 0:
		return errors.New("max_capacity must be positive")
	}
	for skill, level := range m.SkillLevels {
		if strings.TrimSpace(skill) == "" {
			return errors.New("empty skill name in skill_levels")
		}
		if level < 0 {
			return fmt.Errorf("negative level for skill %q", skill)
		}
	}
	return nil
}

func (m memberRequest) toModel() model.Member {
	return model.Member{
		ID:          strings.TrimSpace(m.ID),
		Name:        strings.TrimSpace(m.Name),
		Skills:      m.Skills,
		SkillLevels: m.SkillLevels,
		MaxCapacity: m.MaxCapacity,
	}
}

// taskRequest mirrors the OpenAPI schema for POST /tasks. Deadline accepts
// a calendar date (2006-01-02) or a full RFC3339 timestamp.
type taskRequest struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	EstimatedHours float64  `json:"estimated_hours"`
	Priority       string   `json:"priority"`
	Deadline       string   `json:"deadline"`
}

func (t taskRequest) validate() error {
	switch {
	case strings.TrimSpace(t.Title) == "":
		return errors.New("missing title")
	case t.EstimatedHours <= 0:
		return errors.New("estimated_hours must be positive")
	case strings.TrimSpace(t.Deadline) == "":
		return errors.New("missing deadline")
	}
	if _, err := model.ParsePriority(t.Priority); err != nil {
		return errors.New("priority must be one of high, medium, low")
	}
	if _, err := parseDeadline(t.Deadline); err != nil {
		return errors.New("invalid deadline; must be YYYY-MM-DD or RFC3339")
	}
	return nil
}

func (t taskRequest) toModel() model.Task {
	priority, _ := model.ParsePriority(t.Priority)
	deadline, _ := parseDeadline(t.Deadline)
	return model.Task{
		ID:             strings.TrimSpace(t.ID),
		Title:          strings.TrimSpace(t.Title),
		Description:    t.Description,
		RequiredSkills: t.RequiredSkills,
		EstimatedHours: t.EstimatedHours,
		Priority:       priority,
		Deadline:       deadline,
	}
}

func parseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if ts, err := time.Parse("2006-01-02", s); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, s)
}

type statusResponse struct {
	Status string `json:"status"`
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
