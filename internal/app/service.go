// Package app provides the core business service that implements
// the dependencies required by the HTTP API.
package app

import (
	"context"
	"sync"
	"time"

	repository "github.com/okian/gaffer/internal/adapters/repository"
	"github.com/okian/gaffer/internal/domain/allocator"
	"github.com/okian/gaffer/internal/domain/model"
	"github.com/okian/gaffer/internal/domain/scoring"
	"github.com/okian/gaffer/internal/domain/types"
	"github.com/okian/gaffer/pkg/logger"
	"github.com/okian/gaffer/pkg/metrics"
)

// Service ties the roster store, the scoring engine, and the allocator
// together behind the operations the HTTP API needs.
type Service struct {
	mu sync.RWMutex

	// allocMu serializes allocation runs. The greedy pass reads a roster
	// snapshot and commits workloads back; overlapping runs would race on
	// that commit, so only one runs at a time.
	allocMu sync.Mutex

	// Core components
	roster    repository.Store
	scorer    scoring.Scorer
	allocator *allocator.Allocator

	// Configuration
	levelWeight       float64
	loadPenaltyWeight float64
	seedDemoData      bool

	// State
	started    bool
	lastReport *types.Report

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets a custom roster store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.roster = store
		}
	}
}

// WithScoringWeights sets the level and load-penalty weights for scoring.
func WithScoringWeights(levelWeight, loadPenaltyWeight float64) Option {
	return func(s *Service) {
		if levelWeight > 0 {
			s.levelWeight = levelWeight
		}
		if loadPenaltyWeight > 0 {
			s.loadPenaltyWeight = loadPenaltyWeight
		}
	}
}

// WithDemoSeed loads a small demo roster at startup.
func WithDemoSeed(enabled bool) Option {
	return func(s *Service) {
		s.seedDemoData = enabled
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		levelWeight:       10,
		loadPenaltyWeight: 20,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting allocation service...")

	if s.roster == nil {
		s.roster = repository.NewRosterStore()
	}
	s.scorer = scoring.NewEngine(
		scoring.WithLevelWeight(s.levelWeight),
		scoring.WithLoadPenaltyWeight(s.loadPenaltyWeight),
	)
	s.allocator = allocator.New(s.scorer)

	if s.seedDemoData {
		s.seedDemo(ctx)
	}

	s.started = true
	s.logger.Info(ctx, "allocation service started",
		logger.Float64("levelWeight", s.levelWeight),
		logger.Float64("loadPenaltyWeight", s.loadPenaltyWeight),
		logger.Bool("seedDemoData", s.seedDemoData),
	)

	return nil
}

// Stop shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "allocation service stopped")
}

// AddMember validates and stores a member.
func (s *Service) AddMember(ctx context.Context, m model.Member) (model.Member, error) {
	if err := m.Validate(); err != nil {
		return model.Member{}, err
	}
	return s.roster.AddMember(ctx, m)
}

// Members lists all members in insertion order.
func (s *Service) Members(ctx context.Context) []model.Member {
	return s.roster.Members(ctx)
}

// Member returns one member by id.
func (s *Service) Member(ctx context.Context, id string) (model.Member, error) {
	return s.roster.Member(ctx, id)
}

// RemoveMember deletes a member by id.
func (s *Service) RemoveMember(ctx context.Context, id string) error {
	return s.roster.RemoveMember(ctx, id)
}

// AddTask validates and stores a task.
func (s *Service) AddTask(ctx context.Context, t model.Task) (model.Task, error) {
	if err := t.Validate(); err != nil {
		return model.Task{}, err
	}
	return s.roster.AddTask(ctx, t)
}

// Tasks lists all tasks in insertion order.
func (s *Service) Tasks(ctx context.Context) []model.Task {
	return s.roster.Tasks(ctx)
}

// Task returns one task by id.
func (s *Service) Task(ctx context.Context, id string) (model.Task, error) {
	return s.roster.Task(ctx, id)
}

// RemoveTask deletes a task by id.
func (s *Service) RemoveTask(ctx context.Context, id string) error {
	return s.roster.RemoveTask(ctx, id)
}

// Allocate runs one allocation pass over the current roster and commits
// the outcome. Runs are serialized; a failed run commits nothing.
func (s *Service) Allocate(ctx context.Context) (types.Report, error) {
	s.allocMu.Lock()
	defer s.allocMu.Unlock()

	start := time.Now()
	members, tasks := s.roster.Snapshot(ctx)

	records, err := s.allocator.Allocate(members, tasks)
	if err != nil {
		metrics.RecordAllocationError()
		s.logger.Error(ctx, "allocation run failed", logger.Error(err))
		return types.Report{}, err
	}

	s.roster.Commit(ctx, members, tasks)

	report := types.Report{
		Assignments: records,
		Stats:       allocator.Summarize(records),
		Members:     allocator.SummarizeMembers(members),
	}

	s.mu.Lock()
	s.lastReport = &report
	s.mu.Unlock()

	metrics.RecordAllocationRun()
	metrics.RecordAllocationLatency(float64(time.Since(start).Milliseconds()))
	metrics.RecordTasksAssigned(report.Stats.AssignedTasks)
	metrics.RecordTasksUnassigned(report.Stats.UnassignedTasks)
	metrics.UpdateLastEfficiency(report.Stats.Efficiency)

	s.logger.Info(ctx, "allocation run complete",
		logger.Int("totalTasks", report.Stats.TotalTasks),
		logger.Int("assigned", report.Stats.AssignedTasks),
		logger.Int("unassigned", report.Stats.UnassignedTasks),
		logger.Int("efficiency", report.Stats.Efficiency),
	)

	return report, nil
}

// Reset zeroes workloads and clears assignment outcomes, independent of
// running an allocation. The last report is discarded with it.
func (s *Service) Reset(ctx context.Context) {
	s.allocMu.Lock()
	defer s.allocMu.Unlock()

	s.roster.Reset(ctx)

	s.mu.Lock()
	s.lastReport = nil
	s.mu.Unlock()

	s.logger.Info(ctx, "workloads and assignments reset")
}

// LastReport returns the most recent allocation report, if any.
func (s *Service) LastReport() (types.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastReport == nil {
		return types.Report{}, false
	}
	return *s.lastReport, true
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	started := s.started
	last := s.lastReport
	s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": started,
	}
	if started {
		members, tasks := s.roster.Counts(context.Background())
		stats["members"] = members
		stats["tasks"] = tasks
		metrics.UpdateMemberCount(members)
		metrics.UpdateTaskCount(tasks)
	}
	if last != nil {
		stats["last_run"] = last.Stats
	}
	return stats
}

// seedDemo loads a small roster so a fresh instance has something to
// allocate against.
func (s *Service) seedDemo(ctx context.Context) {
	members := []model.Member{
		{
			Name:        "Alice",
			Skills:      []string{"react", "javascript", "css"},
			SkillLevels: map[string]float64{"react": 8, "javascript": 9, "css": 7},
			MaxCapacity: 40,
		},
		{
			Name:        "Bob",
			Skills:      []string{"go", "postgres"},
			SkillLevels: map[string]float64{"go": 9, "postgres": 7},
			MaxCapacity: 40,
		},
		{
			Name:        "Carol",
			Skills:      []string{"go", "javascript", "docker"},
			SkillLevels: map[string]float64{"go": 6, "javascript": 7, "docker": 8},
			MaxCapacity: 30,
		},
	}
	tasks := []model.Task{
		{
			Title:          "Build login component",
			Description:    "Login form with validation",
			RequiredSkills: []string{"react", "javascript"},
			EstimatedHours: 8,
			Priority:       model.PriorityHigh,
			Deadline:       time.Now().AddDate(0, 0, 7),
		},
		{
			Title:          "Write migration scripts",
			Description:    "Schema migrations for the billing tables",
			RequiredSkills: []string{"postgres"},
			EstimatedHours: 12,
			Priority:       model.PriorityMedium,
			Deadline:       time.Now().AddDate(0, 0, 14),
		},
		{
			Title:          "Containerize the worker",
			Description:    "Dockerfile and compose entry for the worker",
			RequiredSkills: []string{"docker", "go"},
			EstimatedHours: 6,
			Priority:       model.PriorityLow,
			Deadline:       time.Now().AddDate(0, 0, 21),
		},
	}

	for _, m := range members {
		if _, err := s.roster.AddMember(ctx, m); err != nil {
			s.logger.Warn(ctx, "failed to seed member", logger.String("name", m.Name), logger.Error(err))
		}
	}
	for _, t := range tasks {
		if _, err := s.roster.AddTask(ctx, t); err != nil {
			s.logger.Warn(ctx, "failed to seed task", logger.String("title", t.Title), logger.Error(err))
		}
	}
	s.logger.Info(ctx, "demo roster seeded",
		logger.Int("members", len(members)),
		logger.Int("tasks", len(tasks)),
	)
}
