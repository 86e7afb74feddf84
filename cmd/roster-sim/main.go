// Command roster-sim seeds a running gaffer instance with a generated
// roster, triggers an allocation, and verifies the reported invariants.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/gaffer/internal/rostersim"
	"github.com/okian/gaffer/pkg/logger"
)

// Default simulation parameters.
const (
	defaultMembers = 25
	defaultTasks   = 100
	defaultSeed    = 42
	defaultTimeout = 30 * time.Second
)

func main() {
	baseURL := flag.String("url", "http://localhost:9090", "Base URL of the service")
	members := flag.Int("members", defaultMembers, "Number of members to generate")
	tasks := flag.Int("tasks", defaultTasks, "Number of tasks to generate")
	seed := flag.Int64("seed", defaultSeed, "RNG seed for reproducible rosters")
	timeout := flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	cfg := &rostersim.Config{
		BaseURL: *baseURL,
		Members: *members,
		Tasks:   *tasks,
		Seed:    *seed,
		Timeout: *timeout,
		Verbose: *verbose,
	}

	ctx := context.Background()
	if err := rostersim.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "simulation failed", logger.Error(err))
		os.Exit(1)
	}
}
