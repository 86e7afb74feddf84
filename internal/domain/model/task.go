package model

import (
	"fmt"
	"strings"
	"time"
)

// Priority classifies task urgency.
type Priority string

// Priority levels in descending urgency.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Priority weights used for ordering tasks before allocation.
const (
	weightHigh   = 3
	weightMedium = 2
	weightLow    = 1
)

// ParsePriority normalizes and validates a priority string.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityHigh:
		return PriorityHigh, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityLow:
		return PriorityLow, nil
	default:
		return "", fmt.Errorf("%w: unknown priority %q", ErrInvalidTask, s)
	}
}

// Weight maps a priority to its ordering weight (high=3, medium=2, low=1).
// Unknown priorities sort last.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return weightHigh
	case PriorityMedium:
		return weightMedium
	case PriorityLow:
		return weightLow
	default:
		return 0
	}
}

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Task represents a unit of work waiting for an assignee.
// AssignedTo holds the id of the assigned member; empty means unassigned.
type Task struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"required_skills"`
	EstimatedHours float64   `json:"estimated_hours"`
	Priority       Priority  `json:"priority"`
	Deadline       time.Time `json:"deadline"`
	AssignedTo     string    `json:"assigned_to,omitempty"`
}

// Validate checks the task for structural problems.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: missing title", ErrInvalidTask)
	}
	if t.EstimatedHours <= 0 {
		return fmt.Errorf("%w: estimated_hours must be positive, got %v", ErrInvalidTask, t.EstimatedHours)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidTask, t.Priority)
	}
	if t.Deadline.IsZero() {
		return fmt.Errorf("%w: missing deadline", ErrInvalidTask)
	}
	return nil
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	cp := *t
	cp.RequiredSkills = append([]string(nil), t.RequiredSkills...)
	return &cp
}
