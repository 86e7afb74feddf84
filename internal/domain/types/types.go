// Package types contains read-model shapes shared by the allocator,
// the service layer, and the HTTP API.
package types

// UnassignedName is the member name reported for tasks nobody could take.
const UnassignedName = "Unassigned"

// AssignmentRecord describes the outcome of one task in an allocation run.
// MemberID is empty and Reason is set when the task stayed unassigned.
type AssignmentRecord struct {
	TaskID         string  `json:"task_id"`
	TaskTitle      string  `json:"task_title"`
	MemberID       string  `json:"member_id,omitempty"`
	MemberName     string  `json:"member_name"`
	MatchScore     int     `json:"match_score"`
	EstimatedHours float64 `json:"estimated_hours"`
	Reason         string  `json:"reason,omitempty"`
}

// Assigned reports whether the record carries an assignee.
func (r AssignmentRecord) Assigned() bool {
	return r.MemberID != ""
}

// Stats summarizes an allocation run.
// AvgMatchScore averages assigned records only; Efficiency is the assigned
// share in whole percent. Both are rounded to the nearest integer.
type Stats struct {
	TotalTasks      int `json:"total_tasks"`
	AssignedTasks   int `json:"assigned_tasks"`
	UnassignedTasks int `json:"unassigned_tasks"`
	AvgMatchScore   int `json:"avg_match_score"`
	Efficiency      int `json:"efficiency"`
}

// MemberSummary reports a member's committed workload after a run.
// Utilization is workload over capacity in whole percent, reported for
// every member whether or not they received work.
type MemberSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CurrentWorkload float64 `json:"current_workload"`
	MaxCapacity     float64 `json:"max_capacity"`
	Utilization     int     `json:"utilization"`
}

// Report is the full caller-facing result of an allocation run.
type Report struct {
	Assignments []AssignmentRecord `json:"assignments"`
	Stats       Stats              `json:"stats"`
	Members     []MemberSummary    `json:"members"`
}
