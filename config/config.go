// Package config loads verifier settings from an optional TOML file and
// then from NETCHECK_* environment variables, in that order, on top of
// built-in defaults.
//
// Example file:
//
//	scale     = 1000
//	degree    = 2
//	min_nodes = 5
//	max_nodes = 24
//	format    = "text"
//
//	[log]
//	level = "warn"
//	file  = "logs/check_network.log"
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/netcheck/instance"
	"github.com/katalvlaran/netcheck/verify"
)

// EnvPrefix prefixes every environment variable, e.g. NETCHECK_SCALE.
const EnvPrefix = "NETCHECK_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every tunable of a verification run.
type Config struct {
	Scale    int64     `toml:"scale" env:"SCALE"`
	Degree   int64     `toml:"degree" env:"DEGREE"`
	MinNodes int       `toml:"min_nodes" env:"MIN_NODES"`
	MaxNodes int       `toml:"max_nodes" env:"MAX_NODES"`
	Format   string    `toml:"format" env:"FORMAT"`
	Log      LogConfig `toml:"log" envPrefix:"LOG_"`
}

// LogConfig controls the diagnostic logger. An empty File logs to stderr only.
type LogConfig struct {
	Level      string `toml:"level" env:"LEVEL"`
	File       string `toml:"file" env:"FILE"`
	MaxSizeMB  int    `toml:"max_size_mb" env:"MAX_SIZE_MB"`
	MaxBackups int    `toml:"max_backups" env:"MAX_BACKUPS"`
	MaxAgeDays int    `toml:"max_age_days" env:"MAX_AGE_DAYS"`
	Compress   bool   `toml:"compress" env:"COMPRESS"`
}

// Default returns the benchmark defaults.
func Default() Config {
	return Config{
		Scale:    verify.DefaultScale,
		Degree:   verify.DefaultDegree,
		MinNodes: instance.DefaultMinNodes,
		MaxNodes: instance.DefaultMaxNodes,
		Format:   "text",
		Log: LogConfig{
			Level:      "warn",
			MaxSizeMB:  100,
			MaxBackups: 7,
			MaxAgeDays: 30,
			Compress:   true,
		},
	}
}

// Load starts from Default, decodes path when non-empty, applies
// environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: failed to load %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects settings no run could use. Node bounds may narrow the
// benchmark range [5, 24] but never widen it.
func (c Config) Validate() error {
	switch {
	case c.Scale <= 0 || c.Scale > instance.MaxValue:
		return fmt.Errorf("%w: scale must be in [1, %d], got %d", ErrInvalid, instance.MaxValue, c.Scale)
	case c.Degree <= 0:
		return fmt.Errorf("%w: degree must be positive, got %d", ErrInvalid, c.Degree)
	case c.MaxNodes < c.MinNodes:
		return fmt.Errorf("%w: node bounds [%d, %d]", ErrInvalid, c.MinNodes, c.MaxNodes)
	case c.MinNodes < instance.DefaultMinNodes || c.MaxNodes > instance.DefaultMaxNodes:
		return fmt.Errorf("%w: node bounds [%d, %d] must lie within [%d, %d]",
			ErrInvalid, c.MinNodes, c.MaxNodes, instance.DefaultMinNodes, instance.DefaultMaxNodes)
	}

	return nil
}

// Bounds returns the accepted node-count range.
func (c Config) Bounds() instance.Bounds {
	return instance.Bounds{Min: c.MinNodes, Max: c.MaxNodes}
}

// VerifyOptions maps the config onto verify.Options; the logger is left
// for the caller.
func (c Config) VerifyOptions() verify.Options {
	return verify.Options{Scale: c.Scale, Degree: c.Degree, Bounds: c.Bounds()}
}
