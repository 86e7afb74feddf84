package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/gaffer/internal/domain/model"
	"github.com/okian/gaffer/pkg/metrics"
)

// RosterStore is the in-memory Store implementation.
//
// Entities are held behind a single RWMutex; everything handed out is a
// deep copy, so callers can never alias store-owned state. Insertion
// order is tracked explicitly because allocation scan order matters.
type RosterStore struct {
	mu sync.RWMutex

	members     map[string]*model.Member
	memberOrder []string
	tasks       map[string]*model.Task
	taskOrder   []string

	newID func() string
}

// NewRosterStore creates an empty in-memory roster store.
func NewRosterStore(opts ...Option) *RosterStore {
	s := &RosterStore{
		members: make(map[string]*model.Member),
		tasks:   make(map[string]*model.Task),
		newID:   func() string { return uuid.New().String() },
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddMember stores a member, minting an id when absent.
func (s *RosterStore) AddMember(_ context.Context, m model.Member) (model.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == "" {
		m.ID = s.newID()
	}
	if _, exists := s.members[m.ID]; exists {
		return model.Member{}, ErrDuplicateID
	}

	cp := m.Clone()
	s.members[cp.ID] = cp
	s.memberOrder = append(s.memberOrder, cp.ID)

	metrics.UpdateMemberCount(len(s.members))
	metrics.RecordRosterMutation("member", "add")
	return *cp.Clone(), nil
}

// Members lists all members in insertion order.
func (s *RosterStore) Members(_ context.Context) []model.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Member, 0, len(s.memberOrder))
	for _, id := range s.memberOrder {
		out = append(out, *s.members[id].Clone())
	}
	return out
}

// Member returns one member by id.
func (s *RosterStore) Member(_ context.Context, id string) (model.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.members[id]
	if !ok {
		return model.Member{}, ErrMemberNotFound
	}
	return *m.Clone(), nil
}

// RemoveMember deletes a member by id.
func (s *RosterStore) RemoveMember(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[id]; !ok {
		return ErrMemberNotFound
	}
	delete(s.members, id)
	s.memberOrder = removeID(s.memberOrder, id)

	metrics.UpdateMemberCount(len(s.members))
	metrics.RecordRosterMutation("member", "remove")
	return nil
}

// AddTask stores a task, minting an id when absent.
func (s *RosterStore) AddTask(_ context.Context, t model.Task) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = s.newID()
	}
	if _, exists := s.tasks[t.ID]; exists {
		return model.Task{}, ErrDuplicateID
	}

	cp := t.Clone()
	s.tasks[cp.ID] = cp
	s.taskOrder = append(s.taskOrder, cp.ID)

	metrics.UpdateTaskCount(len(s.tasks))
	metrics.RecordRosterMutation("task", "add")
	return *cp.Clone(), nil
}

// Tasks lists all tasks in insertion order.
func (s *RosterStore) Tasks(_ context.Context) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, 0, len(s.taskOrder))
	for _, id := range s.taskOrder {
		out = append(out, *s.tasks[id].Clone())
	}
	return out
}

// Task returns one task by id.
func (s *RosterStore) Task(_ context.Context, id string) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, ErrTaskNotFound
	}
	return *t.Clone(), nil
}

// RemoveTask deletes a task by id.
func (s *RosterStore) RemoveTask(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(s.tasks, id)
	s.taskOrder = removeID(s.taskOrder, id)

	metrics.UpdateTaskCount(len(s.tasks))
	metrics.RecordRosterMutation("task", "remove")
	return nil
}

// Snapshot returns deep copies of the roster in insertion order.
func (s *RosterStore) Snapshot(_ context.Context) ([]*model.Member, []*model.Task) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := make([]*model.Member, 0, len(s.memberOrder))
	for _, id := range s.memberOrder {
		members = append(members, s.members[id].Clone())
	}
	tasks := make([]*model.Task, 0, len(s.taskOrder))
	for _, id := range s.taskOrder {
		tasks = append(tasks, s.tasks[id].Clone())
	}
	return members, tasks
}

// Commit writes allocation outcomes back into the store by id. Entities
// removed since the snapshot are skipped.
func (s *RosterStore) Commit(_ context.Context, members []*model.Member, tasks []*model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range members {
		if cur, ok := s.members[m.ID]; ok {
			cur.CurrentWorkload = m.CurrentWorkload
		}
	}
	for _, t := range tasks {
		if cur, ok := s.tasks[t.ID]; ok {
			cur.AssignedTo = t.AssignedTo
		}
	}
}

// Reset zeroes workloads and clears assignment outcomes.
func (s *RosterStore) Reset(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.members {
		m.CurrentWorkload = 0
	}
	for _, t := range s.tasks {
		t.AssignedTo = ""
	}
	metrics.RecordRosterMutation("roster", "reset")
}

// Counts returns the number of members and tasks tracked.
func (s *RosterStore) Counts(_ context.Context) (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members), len(s.tasks)
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
