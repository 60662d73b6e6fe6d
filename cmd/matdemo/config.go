// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every variable, e.g. MATDEMO_ROWS.
const envPrefix = "matdemo"

// Config holds the demo configuration.
type Config struct {
	Rows    int       `envconfig:"ROWS" default:"3"`
	Cols    int       `envconfig:"COLS" default:"3"`
	Max     int       `envconfig:"MAX" default:"10"`
	Seed    int64     `envconfig:"SEED" default:"-1"` // negative: process-wide source
	Logging LogConfig `envconfig:"LOG"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LEVEL" default:"info"`
	Development bool   `envconfig:"DEV" default:"false"`
}

// Load reads the configuration from MATDEMO_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		Rows: 3,
		Cols: 3,
		Max:  10,
		Seed: -1,
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}

// Validate rejects shapes and bounds the generator cannot honor.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("invalid shape %dx%d: rows and cols must be > 0", c.Rows, c.Cols)
	}
	if c.Max < 0 {
		return fmt.Errorf("invalid max %d: must be >= 0", c.Max)
	}

	return nil
}

// Seeded reports whether a fixed seed was requested.
func (c *Config) Seeded() bool { return c.Seed >= 0 }
