// Package allocator implements the greedy task assignment pass.
//
// The allocator works on the member and task slices it is handed and
// mutates them: workloads are reset and rebuilt, assignment outcomes are
// overwritten. Callers that need their originals untouched pass clones;
// the service layer snapshots the roster, runs the allocator, and commits
// the result back to the store.
package allocator

import (
	"fmt"
	"math"
	"sort"

	"github.com/okian/gaffer/internal/domain/model"
	"github.com/okian/gaffer/internal/domain/types"
)

// ReasonNoEligibleMember is reported on every unassigned record. A task
// whose required skills nobody holds and a task nobody has capacity for
// fold into the same outcome.
const ReasonNoEligibleMember = "No available member with required skills"

// noScore sits strictly below any achievable score, so the first member
// reaching a tied maximum wins and later equal scores do not override.
const noScore = -1

// Scorer is the allocator's view of the scoring engine.
type Scorer interface {
	Score(member *model.Member, task *model.Task) float64
}

// Allocator assigns tasks to members one at a time in urgency order.
type Allocator struct {
	scorer Scorer
}

// New creates an allocator backed by the given scorer.
func New(scorer Scorer) *Allocator {
	return &Allocator{scorer: scorer}
}

// Allocate runs a single greedy pass over the given roster.
//
// Tasks are processed by priority weight descending, then deadline
// ascending, with input order as the final tie-break (stable sort). Each
// task goes to the member with the highest positive score among those
// whose capacity still fits the task's estimate; members are scanned in
// input order and ties keep the earliest member. Records come back in
// processing order, not input order.
//
// Malformed entities fail the whole run; a task nobody can take is a
// normal outcome, never an error.
func (a *Allocator) Allocate(members []*model.Member, tasks []*model.Task) ([]types.AssignmentRecord, error) {
	for _, m := range members {
		if m.MaxCapacity <= 0 {
			return nil, fmt.Errorf("member %s: %w: max_capacity %v", m.ID, ErrMalformedInput, m.MaxCapacity)
		}
	}
	for _, t := range tasks {
		if t.EstimatedHours <= 0 {
			return nil, fmt.Errorf("task %s: %w: estimated_hours %v", t.ID, ErrMalformedInput, t.EstimatedHours)
		}
	}

	// Every run starts from a clean slate so rerunning on the same
	// roster is idempotent.
	ResetWorkloads(members, tasks)

	ordered := make([]*model.Task, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		wi, wj := ordered[i].Priority.Weight(), ordered[j].Priority.Weight()
		if wi != wj {
			return wi > wj
		}
		return ordered[i].Deadline.Before(ordered[j].Deadline)
	})

	records := make([]types.AssignmentRecord, 0, len(ordered))
	for _, task := range ordered {
		var best *model.Member
		bestScore := float64(noScore)
		for _, m := range members {
			// Capacity check is strict exceedance: filling a member
			// exactly to capacity is allowed.
			if m.CurrentWorkload+task.EstimatedHours > m.MaxCapacity {
				continue
			}
			if score := a.scorer.Score(m, task); score > bestScore {
				best = m
				bestScore = score
			}
		}

		rec := types.AssignmentRecord{
			TaskID:         task.ID,
			TaskTitle:      task.Title,
			MemberName:     types.UnassignedName,
			EstimatedHours: task.EstimatedHours,
		}
		// A best score of exactly 0 means nobody held any required skill.
		if best != nil && bestScore > 0 {
			best.CurrentWorkload += task.EstimatedHours
			task.AssignedTo = best.ID
			rec.MemberID = best.ID
			rec.MemberName = best.Name
			rec.MatchScore = int(math.Round(bestScore))
		} else {
			rec.Reason = ReasonNoEligibleMember
		}
		records = append(records, rec)
	}

	return records, nil
}

// ResetWorkloads zeroes every member's committed workload and clears every
// task's assignment outcome. Independent of running an allocation.
func ResetWorkloads(members []*model.Member, tasks []*model.Task) {
	for _, m := range members {
		m.CurrentWorkload = 0
	}
	for _, t := range tasks {
		t.AssignedTo = ""
	}
}
