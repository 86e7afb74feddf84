package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if GAFFER_CONFIG is set
//  3. env (prefix GAFFER_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("GAFFER_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Env keys like GAFFER_MAX_LIST_LIMIT map to max_list_limit; underscores
	// are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("GAFFER_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "gaffer_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MaxListLimit < 1:
		return fmt.Errorf("%w: max_list_limit must be positive", ErrInvalidConfig)
	case c.LevelWeight <= 0:
		return fmt.Errorf("%w: level_weight must be positive", ErrInvalidConfig)
	case c.LoadPenaltyWeight <= 0:
		return fmt.Errorf("%w: load_penalty_weight must be positive", ErrInvalidConfig)
	}
	return nil
}
