package rostersim

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/gaffer/pkg/logger"
)

// Run executes a full simulation: seed a generated roster, allocate, and
// verify the invariants the allocator promises.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Get()
	start := time.Now()

	log.Info(ctx, "starting roster simulation",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("members", cfg.Members),
		logger.Int("tasks", cfg.Tasks),
		logger.Duration("timeout", cfg.Timeout),
	)

	c := newClient(cfg)
	if err := c.checkHealth(ctx); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Start from a clean slate so reruns against a live instance behave.
	if err := c.reset(ctx); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	gen := newGenerator(cfg.Seed)
	members := gen.members(cfg.Members)
	tasks := gen.tasks(cfg.Tasks)

	for _, m := range members {
		if err := c.addMember(ctx, m); err != nil {
			return fmt.Errorf("member submission failed: %w", err)
		}
	}
	for _, t := range tasks {
		if err := c.addTask(ctx, t); err != nil {
			return fmt.Errorf("task submission failed: %w", err)
		}
	}
	log.Info(ctx, "roster submitted",
		logger.Int("members", len(members)),
		logger.Int("tasks", len(tasks)),
	)

	first, err := c.allocate(ctx)
	if err != nil {
		return fmt.Errorf("allocation failed: %w", err)
	}
	if err := verifyReport(first, members, tasks); err != nil {
		return fmt.Errorf("report verification failed: %w", err)
	}

	// Reset and reallocate: the same roster must produce the same report.
	if err := c.reset(ctx); err != nil {
		return fmt.Errorf("reset before rerun failed: %w", err)
	}
	second, err := c.allocate(ctx)
	if err != nil {
		return fmt.Errorf("rerun allocation failed: %w", err)
	}
	if err := verifyDeterminism(first, second); err != nil {
		return err
	}

	log.Info(ctx, "simulation complete",
		logger.Int("totalTasks", first.Stats.TotalTasks),
		logger.Int("assigned", first.Stats.AssignedTasks),
		logger.Int("unassigned", first.Stats.UnassignedTasks),
		logger.Int("efficiency", first.Stats.Efficiency),
		logger.Duration("elapsed", time.Since(start)),
	)
	return nil
}
