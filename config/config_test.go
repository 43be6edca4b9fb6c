// SPDX-License-Identifier: MIT
// Package config_test covers defaults, overrides and logger construction.
package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkernel/config"
	"github.com/katalvlaran/lvkernel/core"
	"github.com/katalvlaran/lvkernel/csi"
	"github.com/katalvlaran/lvkernel/kernel"
)

// TestDefaults pins the harness defaults.
func TestDefaults(t *testing.T) {
	c := config.New()
	require.NoError(t, c.Validate())

	assert.Equal(t, 4, c.Steps())
	assert.Equal(t, 0.1, c.Decay())
	assert.Equal(t, "geometric", c.SeriesName())
	assert.False(t, c.Unbounded())
	assert.Equal(t, 999, c.K())
	assert.Equal(t, "uniform", c.WeightName())
	assert.Equal(t, 1000, c.Iterations())
	assert.Equal(t, runtime.GOMAXPROCS(0), c.Workers())
	assert.Equal(t, "info", c.LogLevel())
}

// TestEnvOverride: LVKERNEL_CSI_K overrides csi.k.
func TestEnvOverride(t *testing.T) {
	t.Setenv("LVKERNEL_CSI_K", "3")
	t.Setenv("LVKERNEL_CSI_WEIGHT", "increasing")

	c := config.New()
	assert.Equal(t, 3, c.K())
	assert.Equal(t, "increasing", c.WeightName())
}

// TestLoadFromFile merges a yaml file over the defaults.
func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvkernel.yaml")
	body := "randomwalk:\n  steps: 6\n  series: exponential\nbench:\n  iterations: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	c := config.New()
	require.NoError(t, c.LoadFromFile(path))
	assert.Equal(t, 6, c.Steps())
	assert.Equal(t, "exponential", c.SeriesName())
	assert.Equal(t, 10, c.Iterations())
	assert.Equal(t, 0.1, c.Decay(), "untouched keys keep defaults")

	assert.Error(t, c.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

// TestValidate rejects values the kernels would reject.
func TestValidate(t *testing.T) {
	c := config.New()
	c.Set("csi.weight", "cubic")
	err := c.Validate()
	assert.ErrorIs(t, err, csi.ErrUnknownWeightFunction)

	c = config.New()
	c.Set("randomwalk.series", "harmonic")
	assert.ErrorIs(t, c.Validate(), core.ErrInvalidParameter)

	c = config.New()
	c.Set("bench.iterations", 0)
	assert.ErrorIs(t, c.Validate(), core.ErrInvalidParameter)

	c = config.New()
	c.Set("logging.level", "loud")
	assert.ErrorIs(t, c.Validate(), core.ErrInvalidParameter)
}

// TestKernelOptions builds kernels from configuration.
func TestKernelOptions(t *testing.T) {
	c := config.New()
	c.Set("randomwalk.decay", 0.05)
	c.Set("randomwalk.unbounded", true)
	c.Set("performance.workers", 2)

	opts, err := c.RandomWalkOptions(zerolog.Nop())
	require.NoError(t, err)
	k, err := kernel.NewRandomWalk(c.Steps(), opts...)
	require.NoError(t, err)
	assert.Equal(t, 0.05, k.Config().Decay)
	assert.True(t, k.Config().Unbounded)
	assert.Equal(t, 2, k.Config().Workers)

	s, err := kernel.NewSubgraphMatching(c.K(), c.WeightName(), c.CSIOptions(zerolog.Nop())...)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Config().Workers)

	c.Set("randomwalk.series", "nope")
	_, err = c.RandomWalkOptions(zerolog.Nop())
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
}

// TestCreateLogger respects logging.level.
func TestCreateLogger(t *testing.T) {
	c := config.New()
	c.Set("logging.level", "warn")

	var buf bytes.Buffer
	log := c.CreateLoggerTo(&buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())

	c.Set("logging.level", "garbage")
	assert.Equal(t, zerolog.InfoLevel, c.CreateLoggerTo(&buf).GetLevel())
}
