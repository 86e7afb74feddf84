// Package repository defines the roster store interface and errors.
package repository

import (
	"context"

	"github.com/okian/gaffer/internal/domain/model"
)

// Store provides access to the current roster of members and tasks.
//
// Insertion order is part of the contract: Members and Snapshot return
// members in the order they were added, because the allocator's
// first-max-wins tie-break depends on scan order.
type Store interface {
	// AddMember stores a member, assigning an id when the member has none.
	// Returns the stored copy. Returns ErrDuplicateID on id collision.
	AddMember(ctx context.Context, m model.Member) (model.Member, error)

	// Members lists all members in insertion order.
	Members(ctx context.Context) []model.Member

	// Member returns one member by id, or ErrMemberNotFound.
	Member(ctx context.Context, id string) (model.Member, error)

	// RemoveMember deletes a member by id, or ErrMemberNotFound.
	RemoveMember(ctx context.Context, id string) error

	// AddTask stores a task, assigning an id when the task has none.
	AddTask(ctx context.Context, t model.Task) (model.Task, error)

	// Tasks lists all tasks in insertion order.
	Tasks(ctx context.Context) []model.Task

	// Task returns one task by id, or ErrTaskNotFound.
	Task(ctx context.Context, id string) (model.Task, error)

	// RemoveTask deletes a task by id, or ErrTaskNotFound.
	RemoveTask(ctx context.Context, id string) error

	// Snapshot returns deep copies of the roster for an allocation run.
	// Mutating the snapshot never touches store state.
	Snapshot(ctx context.Context) ([]*model.Member, []*model.Task)

	// Commit writes allocation outcomes back: member workloads and task
	// assignments are matched by id. Entities removed since the snapshot
	// was taken are skipped silently.
	Commit(ctx context.Context, members []*model.Member, tasks []*model.Task)

	// Reset zeroes every workload and clears every assignment outcome.
	Reset(ctx context.Context)

	// Counts returns the number of members and tasks tracked.
	Counts(ctx context.Context) (members, tasks int)
}
