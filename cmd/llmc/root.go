// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/llmc/comm"
	"github.com/katalvlaran/llmc/config"
	"github.com/katalvlaran/llmc/mc"
	"github.com/katalvlaran/llmc/sim"
	"github.com/katalvlaran/llmc/telemetry"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const serviceName = "llmc"

// flags holds command-line overrides; each is applied only when set.
type flags struct {
	configPath   string
	workers      int
	backend      string
	seed         uint64
	init         string
	verbose      bool
	logLevel     string
	yamlOut      string
	otelEndpoint string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "llmc ITERATIONS SIZE TEMPERATURE PLOTFLAG",
		Short: "Lebwohl-Lasher liquid-crystal Monte Carlo",
		Long: `Simulates a 2D Lebwohl-Lasher lattice with Metropolis Monte Carlo.

The lattice rows are split across a fixed group of workers; after every step the
proposed changes are summed onto the root and the merged lattice is broadcast.

  ITERATIONS   number of Monte Carlo steps (> 0)
  SIZE         lattice side length (>= 2)
  TEMPERATURE  reduced temperature T* (> 0)
  PLOTFLAG     0 none, 1 energy heatmap, 2 angle heatmap`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd, args, f, out, errOut)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	fs := cmd.Flags()
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.IntVarP(&f.workers, "workers", "n", 0, "worker group size (overrides config)")
	fs.StringVar(&f.backend, "backend", "", fmt.Sprintf("backend: %v", mc.Names()))
	fs.Uint64Var(&f.seed, "seed", 0, "fixed base seed for reproducible runs (0 = wall clock)")
	fs.StringVar(&f.init, "init", "", "initial lattice: random or ramp")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	fs.StringVar(&f.yamlOut, "yaml", "", "write the run record as YAML to this path (- for stdout)")
	fs.StringVar(&f.otelEndpoint, "otel-endpoint", "", "OTLP/HTTP trace endpoint URL")

	return cmd
}

// run wires configuration, telemetry, backend and group, then drives the simulation.
func run(cmd *cobra.Command, args []string, f flags, out, errOut io.Writer) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if err = applyArgs(&cfg, args); err != nil {
		return err
	}
	applyFlags(cmd, &cfg, f)
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger, err := telemetry.NewLogger(cfg.LogLevel, cfg.Verbose, errOut)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	shutdown, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		if serr := shutdown(ctx); serr != nil {
			logger.WithError(serr).Warn("trace shutdown")
		}
	}()

	backend, err := mc.NewBackend(cfg.Backend, cfg.BackendOptions()...)
	if err != nil {
		return err
	}
	group, err := comm.NewGroup(cfg.Workers, cfg.Size, comm.WithLogger(logger))
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"backend": cfg.Backend,
		"workers": cfg.Workers,
		"size":    cfg.Size,
		"steps":   cfg.Steps,
		"temp":    cfg.Temperature,
	}).Debug("starting run")

	rec, err := sim.Run(ctx, group, backend, cfg.Params(cmd.Root().Name()))
	if err != nil {
		logger.WithError(err).Error("run failed")
		return err
	}
	fmt.Fprintln(out, rec.Summary())

	return writeRecord(rec, cfg.OutputYAML, out)
}

// applyArgs parses the four positional arguments into cfg.
func applyArgs(cfg *config.Config, args []string) error {
	var err error
	if cfg.Steps, err = strconv.Atoi(args[0]); err != nil {
		return fmt.Errorf("ITERATIONS %q: %w", args[0], config.ErrSteps)
	}
	if cfg.Size, err = strconv.Atoi(args[1]); err != nil {
		return fmt.Errorf("SIZE %q: %w", args[1], config.ErrSize)
	}
	if cfg.Temperature, err = strconv.ParseFloat(args[2], 64); err != nil {
		return fmt.Errorf("TEMPERATURE %q: %w", args[2], config.ErrTemperature)
	}
	if cfg.PlotFlag, err = strconv.Atoi(args[3]); err != nil {
		return fmt.Errorf("PLOTFLAG %q: %w", args[3], config.ErrPlotFlag)
	}

	return nil
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config, f flags) {
	fs := cmd.Flags()
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("backend") {
		cfg.Backend = f.backend
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("init") {
		cfg.Init = f.init
	}
	if fs.Changed("verbose") {
		cfg.Verbose = f.verbose
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("yaml") {
		cfg.OutputYAML = f.yamlOut
	}
	if fs.Changed("otel-endpoint") {
		cfg.OTelEndpoint = f.otelEndpoint
	}
}

func writeRecord(rec *sim.Record, path string, stdout io.Writer) error {
	switch path {
	case "":
		return nil
	case "-":
		return rec.WriteYAML(stdout)
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if err = rec.WriteYAML(fh); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}
