// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors are wrapped via this package's sentinel kinds.
package config

import "context"

// Default configuration values.
const (
	defaultAddr              = ":9090"
	defaultMaxListLimit      = 500
	defaultLevelWeight       = 10
	defaultLoadPenaltyWeight = 20
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// MaxListLimit caps the ?limit parameter on list endpoints.
	MaxListLimit int `koanf:"max_list_limit"`

	// LevelWeight multiplies the average matched skill level in scoring.
	LevelWeight float64 `koanf:"level_weight"`

	// LoadPenaltyWeight multiplies the workload ratio penalty in scoring.
	LoadPenaltyWeight float64 `koanf:"load_penalty_weight"`

	// SeedDemoData loads a small demo roster at startup.
	SeedDemoData bool `koanf:"seed_demo_data"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              defaultAddr,
		MaxListLimit:      defaultMaxListLimit,
		LevelWeight:       defaultLevelWeight,
		LoadPenaltyWeight: defaultLoadPenaltyWeight,
		SeedDemoData:      false,
	}
}
