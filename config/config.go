// SPDX-License-Identifier: MIT

// Package config holds harness configuration backed by viper and builds the
// zerolog logger the harness and CLI log through.
//
// Keys and defaults:
//
//	randomwalk.steps     4
//	randomwalk.decay     0.1
//	randomwalk.series    geometric
//	randomwalk.unbounded false
//	csi.k                999
//	csi.weight           uniform
//	bench.iterations     1000
//	performance.workers  GOMAXPROCS
//	logging.level        info
//
// Every key can be overridden from the environment with the LVKERNEL_ prefix
// and '.' replaced by '_' (LVKERNEL_CSI_K=4), from a config file
// (LoadFromFile), or programmatically (Set).
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvkernel/core"
	"github.com/katalvlaran/lvkernel/csi"
	"github.com/katalvlaran/lvkernel/kernel"
	"github.com/katalvlaran/lvkernel/randomwalk"
)

// EnvPrefix prefixes environment overrides.
const EnvPrefix = "LVKERNEL"

// Config manages harness configuration using viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults and environment overrides.
func New() *Config {
	v := viper.New()

	v.SetDefault("randomwalk.steps", randomwalk.DefaultSteps)
	v.SetDefault("randomwalk.decay", randomwalk.DefaultDecay)
	v.SetDefault("randomwalk.series", randomwalk.Geometric.String())
	v.SetDefault("randomwalk.unbounded", false)

	v.SetDefault("csi.k", 999)
	v.SetDefault("csi.weight", csi.Uniform.String())

	v.SetDefault("bench.iterations", 1000)

	v.SetDefault("performance.workers", runtime.GOMAXPROCS(0))

	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges a config file (any format viper reads: yaml, toml, json, ...).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}

	return nil
}

// Getters.
func (c *Config) Steps() int         { return c.v.GetInt("randomwalk.steps") }
func (c *Config) Decay() float64     { return c.v.GetFloat64("randomwalk.decay") }
func (c *Config) SeriesName() string { return c.v.GetString("randomwalk.series") }
func (c *Config) Unbounded() bool    { return c.v.GetBool("randomwalk.unbounded") }
func (c *Config) K() int             { return c.v.GetInt("csi.k") }
func (c *Config) WeightName() string { return c.v.GetString("csi.weight") }
func (c *Config) Iterations() int    { return c.v.GetInt("bench.iterations") }
func (c *Config) Workers() int       { return c.v.GetInt("performance.workers") }
func (c *Config) LogLevel() string   { return c.v.GetString("logging.level") }

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Validate checks every value a kernel or the harness would reject.
func (c *Config) Validate() error {
	if _, err := randomwalk.ParseSeries(c.SeriesName()); err != nil {
		return fmt.Errorf("config: randomwalk.series: %w", err)
	}
	if _, err := csi.ParseWeightFunction(c.WeightName()); err != nil {
		return fmt.Errorf("config: csi.weight: %w", err)
	}
	if c.Iterations() < 1 {
		return fmt.Errorf("config: bench.iterations=%d: %w", c.Iterations(), core.ErrInvalidParameter)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel()); err != nil {
		return fmt.Errorf("config: logging.level=%q: %w", c.LogLevel(), core.ErrInvalidParameter)
	}

	return nil
}

// RandomWalkOptions returns the facade options for the random-walk kernels.
func (c *Config) RandomWalkOptions(logger zerolog.Logger) ([]kernel.Option, error) {
	series, err := randomwalk.ParseSeries(c.SeriesName())
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	opts := []kernel.Option{
		kernel.WithDecay(c.Decay()),
		kernel.WithSeries(series),
		kernel.WithWorkers(c.Workers()),
		kernel.WithLogger(logger),
	}
	if c.Unbounded() {
		opts = append(opts, kernel.WithUnbounded())
	}

	return opts, nil
}

// CSIOptions returns the facade options for the CSI kernel.
func (c *Config) CSIOptions(logger zerolog.Logger) []kernel.Option {
	return []kernel.Option{kernel.WithWorkers(c.Workers()), kernel.WithLogger(logger)}
}

// CreateLogger creates a console zerolog logger on stdout at logging.level
// (info when the level does not parse).
func (c *Config) CreateLogger() zerolog.Logger {
	return c.CreateLoggerTo(os.Stdout)
}

// CreateLoggerTo is CreateLogger writing to w.
func (c *Config) CreateLoggerTo(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "lvkernel").Logger()
}
