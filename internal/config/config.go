// Package config provides runtime configuration for the colony simulation.
// Values load from a YAML file with hardcoded defaults; world sizing is
// treated as a constant input by the rest of the system once loaded.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all tunable runtime parameters.
type Config struct {
	// World sizing. InnerMapSize and ViewportSize derive from WorldSize
	// when left at zero.
	WorldSize    int `yaml:"world_size"`
	InnerMapSize int `yaml:"inner_map_size"`
	ViewportSize int `yaml:"viewport_size"`

	// Seed for world generation and per-tile inner-map derivation.
	// 0 = randomize at startup.
	Seed int64 `yaml:"seed"`

	// TickIntervalMS is the scheduler cadence in milliseconds.
	TickIntervalMS int `yaml:"tick_interval_ms"`

	// Persistence and content paths.
	DBPath     string `yaml:"db_path"`
	CatalogDir string `yaml:"catalog_dir"`

	// Observation API.
	APIPort int `yaml:"api_port"`

	// SaveEveryTicks is how often the authoritative state is flushed to
	// the database. 0 disables periodic saves (final save still happens).
	SaveEveryTicks int `yaml:"save_every_ticks"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		WorldSize:      100,
		Seed:           0,
		TickIntervalMS: 1000,
		DBPath:         "data/colony.db",
		CatalogDir:     "",
		APIPort:        8080,
		SaveEveryTicks: 60,
	}
}

// Load reads configuration from path, merging over defaults. An empty path
// returns defaults. Derived sizes are filled in after merging.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.fillDerived()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// fillDerived computes InnerMapSize and ViewportSize from WorldSize when
// they were not set explicitly.
func (c *Config) fillDerived() {
	if c.InnerMapSize == 0 {
		c.InnerMapSize = c.WorldSize / 5
		if c.InnerMapSize < 5 {
			c.InnerMapSize = 5
		}
	}
	if c.ViewportSize == 0 {
		c.ViewportSize = c.WorldSize / 7
		if c.ViewportSize < 5 {
			c.ViewportSize = 5
		}
	}
}

func (c *Config) validate() error {
	if c.WorldSize < 10 {
		return fmt.Errorf("world_size %d too small (minimum 10)", c.WorldSize)
	}
	if c.TickIntervalMS <= 0 {
		return fmt.Errorf("tick_interval_ms must be positive, got %d", c.TickIntervalMS)
	}
	return nil
}

// TickInterval returns the scheduler cadence as a duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMS) * time.Millisecond
}
