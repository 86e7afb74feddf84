// Package rostersim drives a running allocation service with a generated
// roster and verifies allocation behavior end to end.
package rostersim

import "time"

// Config holds configuration for a simulation run.
type Config struct {
	BaseURL string        // Base URL of the service
	Members int           // Number of members to generate
	Tasks   int           // Number of tasks to generate
	Seed    int64         // RNG seed for reproducible rosters
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Enable verbose logging
}

// Member mirrors the service's member schema.
type Member struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Skills          []string           `json:"skills"`
	SkillLevels     map[string]float64 `json:"skill_levels"`
	CurrentWorkload float64            `json:"current_workload"`
	MaxCapacity     float64            `json:"max_capacity"`
}

// Task mirrors the service's task schema.
type Task struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	EstimatedHours float64  `json:"estimated_hours"`
	Priority       string   `json:"priority"`
	Deadline       string   `json:"deadline"`
}

// AssignmentRecord mirrors one row of the allocation report.
type AssignmentRecord struct {
	TaskID         string  `json:"task_id"`
	TaskTitle      string  `json:"task_title"`
	MemberID       string  `json:"member_id"`
	MemberName     string  `json:"member_name"`
	MatchScore     int     `json:"match_score"`
	EstimatedHours float64 `json:"estimated_hours"`
	Reason         string  `json:"reason"`
}

// Stats mirrors the allocation report summary.
type Stats struct {
	TotalTasks      int `json:"total_tasks"`
	AssignedTasks   int `json:"assigned_tasks"`
	UnassignedTasks int `json:"unassigned_tasks"`
	AvgMatchScore   int `json:"avg_match_score"`
	Efficiency      int `json:"efficiency"`
}

// MemberSummary mirrors per-member utilization in the report.
type MemberSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CurrentWorkload float64 `json:"current_workload"`
	MaxCapacity     float64 `json:"max_capacity"`
	Utilization     int     `json:"utilization"`
}

// Report mirrors the full allocation report.
type Report struct {
	Assignments []AssignmentRecord `json:"assignments"`
	Stats       Stats              `json:"stats"`
	Members     []MemberSummary    `json:"members"`
}
