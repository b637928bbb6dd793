// Package config loads the YAML configuration of the spanforest command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spanforest/decision"
	"github.com/katalvlaran/spanforest/mst"
)

// ErrInvalid indicates a configuration that cannot be run.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the settings of the run command.
type Config struct {
	// Algorithms run in order on the same input.
	Algorithms []string `yaml:"algorithms"`

	// Precomputed is the path of a collection written by the precompute
	// command. Empty means decision trees are built on demand.
	Precomputed string `yaml:"precomputed"`

	// Pettie–Ramachandran tuning
	ErrorRate     float64 `yaml:"error_rate"`
	PartitionSize int     `yaml:"partition_size"` // 0 = automatic

	RequireConnected bool `yaml:"require_connected"`

	// Log enables debug logging.
	Log bool `yaml:"log"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Algorithms: []string{mst.MethodPettieRamachandran},
		ErrorRate:  mst.DefaultErrorRate,
	}
}

// Load reads path over the defaults and applies environment overrides. A
// missing file (or an empty path) yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies SPANFOREST_* environment variables.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SPANFOREST_ALGORITHMS"); v != "" {
		c.Algorithms = strings.Split(v, ",")
	}
	if v := os.Getenv("SPANFOREST_PRECOMPUTED"); v != "" {
		c.Precomputed = v
	}
	if v := os.Getenv("SPANFOREST_ERROR_RATE"); v != "" {
		if eps, err := strconv.ParseFloat(v, 64); err == nil {
			c.ErrorRate = eps
		}
	}
	if v := os.Getenv("SPANFOREST_PARTITION_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PartitionSize = n
		}
	}
	if v := os.Getenv("SPANFOREST_REQUIRE_CONNECTED"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			c.RequireConnected = on
		}
	}
	if v := os.Getenv("SPANFOREST_LOG"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			c.Log = on
		}
	}
}

// Validate reports the first setting that cannot be run.
func (c *Config) Validate() error {
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms", ErrInvalid)
	}
	for _, name := range c.Algorithms {
		if !slices.Contains(mst.Methods(), name) {
			return fmt.Errorf("%w: unknown algorithm %q (allowed: %s)", ErrInvalid, name, strings.Join(mst.Methods(), " | "))
		}
	}
	if !(c.ErrorRate > 0 && c.ErrorRate < 1) {
		return fmt.Errorf("%w: error_rate %v not in (0, 1)", ErrInvalid, c.ErrorRate)
	}
	if c.PartitionSize < 0 || c.PartitionSize > decision.MaxSupported {
		return fmt.Errorf("%w: partition_size %d not in [0, %d]", ErrInvalid, c.PartitionSize, decision.MaxSupported)
	}

	return nil
}

// Options translates the configuration into mst options.
func (c *Config) Options() []mst.Option {
	opts := []mst.Option{mst.WithErrorRate(c.ErrorRate), mst.WithPartitionSize(c.PartitionSize)}
	if c.RequireConnected {
		opts = append(opts, mst.WithRequireConnected())
	}

	return opts
}
