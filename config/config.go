// SPDX-License-Identifier: MIT

// Package config loads and validates run configuration.
//
// Sources are layered, later ones winning:
//
//	Default()  built-in values
//	YAML file  optional, strict (unknown keys are errors)
//	env        LLMC_-prefixed variables
//	flags      applied by the command layer after Load
//
// Validate must pass before any worker starts; every failure maps to one
// sentinel error so the caller can report it precisely.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/llmc/lattice"
	"github.com/katalvlaran/llmc/mc"
	"github.com/katalvlaran/llmc/seed"
	"github.com/katalvlaran/llmc/sim"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment key.
const EnvPrefix = "LLMC_"

// Config is the full set of run settings.
type Config struct {
	Steps         int     `yaml:"steps"          env:"STEPS"`
	Size          int     `yaml:"size"           env:"SIZE"`
	Temperature   float64 `yaml:"temperature"    env:"TEMPERATURE"`
	PlotFlag      int     `yaml:"plot_flag"      env:"PLOT_FLAG"`
	Workers       int     `yaml:"workers"        env:"WORKERS"`
	Backend       string  `yaml:"backend"        env:"BACKEND"`
	Seed          uint64  `yaml:"seed"           env:"SEED"` // 0 = wall clock
	Init          string  `yaml:"init"           env:"INIT"`
	ProgressEvery int     `yaml:"progress_every" env:"PROGRESS_EVERY"`
	LogLevel      string  `yaml:"log_level"      env:"LOG_LEVEL"`
	Verbose       bool    `yaml:"verbose"        env:"VERBOSE"`
	OTelEndpoint  string  `yaml:"otel_endpoint"  env:"OTEL_ENDPOINT"`
	OutputYAML    string  `yaml:"output_yaml"    env:"OUTPUT_YAML"`
}

// Default returns the built-in configuration. Steps, Size and Temperature
// have no meaningful default and are left for the caller to supply.
func Default() Config {
	return Config{
		Workers:       runtime.GOMAXPROCS(0),
		Backend:       mc.NameDistributed,
		Init:          string(mc.InitRandom),
		ProgressEvery: sim.DefaultProgressEvery,
		LogLevel:      logrus.InfoLevel.String(),
	}
}

// Load layers Default, the YAML file at path (skipped when empty) and the
// process environment.
func Load(path string) (Config, error) {
	return LoadFrom(path, nil)
}

// LoadFrom is Load with an explicit environment; nil means the process one.
func LoadFrom(path string, environ map[string]string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = decodeYAML(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("config: parse env: %w", err)
	}

	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	switch {
	case c.Steps <= 0:
		return ErrSteps
	case c.Size < lattice.MinSize:
		return ErrSize
	case c.Temperature <= 0 || math.IsNaN(c.Temperature) || math.IsInf(c.Temperature, 0):
		return ErrTemperature
	case !lattice.HeatmapMode(c.PlotFlag).Valid():
		return ErrPlotFlag
	case c.Workers < 1:
		return ErrWorkers
	case c.ProgressEvery < 0:
		return ErrProgress
	}
	if !knownBackend(c.Backend) {
		return fmt.Errorf("%q: %w", c.Backend, ErrBackend)
	}
	if c.Backend == mc.NameSerial && c.Workers != 1 {
		return fmt.Errorf("backend %s needs 1 worker, have %d: %w", c.Backend, c.Workers, ErrWorkers)
	}
	if !mc.InitMode(c.Init).Valid() {
		return fmt.Errorf("%q: %w", c.Init, ErrInit)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%q: %w", c.LogLevel, ErrLogLevel)
	}

	return nil
}

func knownBackend(name string) bool {
	for _, n := range mc.Names() {
		if n == name {
			return true
		}
	}

	return false
}

// Params converts the configuration into driver parameters.
func (c Config) Params(program string) sim.Params {
	return sim.Params{
		Program:       program,
		Steps:         c.Steps,
		Size:          c.Size,
		Temperature:   c.Temperature,
		PlotFlag:      lattice.HeatmapMode(c.PlotFlag),
		ProgressEvery: c.ProgressEvery,
	}
}

// BackendOptions returns the mc options selected by the configuration.
func (c Config) BackendOptions() []mc.Option {
	return []mc.Option{
		mc.WithSeeds(seed.FromConfig(c.Seed)),
		mc.WithInit(mc.InitMode(c.Init)),
	}
}
