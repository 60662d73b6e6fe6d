// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// envKeys lists every variable Load consults: the prefixed keys and the
// unprefixed tag names envconfig falls back to.
var envKeys = []string{
	"MATDEMO_ROWS", "MATDEMO_COLS", "MATDEMO_MAX", "MATDEMO_SEED",
	"MATDEMO_LOG_LEVEL", "MATDEMO_LOG_DEV",
	"ROWS", "COLS", "MAX", "SEED", "LEVEL", "DEV",
}

// clearEnv unsets envKeys for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, v) })
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.False(t, cfg.Seeded())
}

// TestLoadDefaultsWithLeakedEnv checks that clearEnv shields Load from
// variables already present in the process environment.
func TestLoadDefaultsWithLeakedEnv(t *testing.T) {
	t.Setenv("MATDEMO_MAX", "-5")
	t.Setenv("ROWS", "0")
	t.Setenv("LEVEL", "loud")
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MATDEMO_ROWS", "4")
	t.Setenv("MATDEMO_COLS", "2")
	t.Setenv("MATDEMO_SEED", "7")
	t.Setenv("MATDEMO_LOG_LEVEL", "debug")
	t.Setenv("MATDEMO_LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Rows)
	require.Equal(t, 2, cfg.Cols)
	require.Equal(t, 10, cfg.Max)
	require.True(t, cfg.Seeded())
	require.Equal(t, "debug", cfg.Logging.Level)
	require.True(t, cfg.Logging.Development)
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("MATDEMO_ROWS", "0")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("MATDEMO_ROWS", "two")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("MATDEMO_ROWS", "2")
	t.Setenv("MATDEMO_MAX", "-1")
	_, err = Load()
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(LogConfig{Level: "warn"})
	require.NoError(t, err)
	require.False(t, l.Core().Enabled(zap.InfoLevel))

	_, err = newLogger(LogConfig{Level: "loud"})
	require.Error(t, err)
}

func TestRunSquare(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := Default()
	cfg.Seed = 3

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out, zap.New(core)))

	text := out.String()
	require.True(t, strings.HasPrefix(text, "matrix:\n"))
	require.Contains(t, text, "det: ")
	require.Contains(t, text, "reduced:")
	require.Equal(t, 1, logs.FilterMessage("determinant").Len())
	require.Equal(t, 1, logs.FilterMessage("row reduced").Len())

	// a fixed seed replays the same output
	var again bytes.Buffer
	require.NoError(t, run(cfg, &again, zap.NewNop()))
	require.Equal(t, text, again.String())
}

func TestRunRectangular(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cfg := Default()
	cfg.Rows, cfg.Cols, cfg.Seed = 2, 3, 1

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out, zap.New(core)))
	require.NotContains(t, out.String(), "det: ")
	require.NotContains(t, out.String(), "reduced:")
	require.Equal(t, 1, logs.FilterMessage("determinant skipped").Len())
	require.Equal(t, 1, logs.FilterMessage("row reduction skipped").Len())
}

func TestRunOneByOne(t *testing.T) {
	cfg := Default()
	cfg.Rows, cfg.Cols, cfg.Seed = 1, 1, 1

	var out bytes.Buffer
	require.NoError(t, run(cfg, &out, zap.NewNop()))
	require.Contains(t, out.String(), "reduced:")
}
