// SPDX-License-Identifier: MIT
package mc

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/llmc/comm"
	"github.com/katalvlaran/llmc/lattice"
	"github.com/katalvlaran/llmc/seed"
)

// Backend is the capability set a simulation driver runs against.
//
// Init and MonteCarloStep are collective: every worker of the group must call
// them, in the same order. The energy and order functions are pure reads.
type Backend interface {
	// Name returns the registry name of the backend.
	Name() string
	// Init returns the worker's copy of the initial n×n lattice; every worker
	// of the group receives an identical lattice.
	Init(ctx context.Context, w *comm.Worker, n int) (*lattice.Lattice, error)
	// EnergyAt returns the single-site energy of (x, y).
	EnergyAt(l *lattice.Lattice, x, y int) float64
	// TotalEnergy returns the lattice energy.
	TotalEnergy(l *lattice.Lattice) float64
	// MonteCarloStep performs one sweep at temperature t, mutating l in place,
	// and returns the acceptance ratio. Every worker returns the same ratio
	// and ends the step holding the same lattice.
	MonteCarloStep(ctx context.Context, w *comm.Worker, l *lattice.Lattice, t float64) (float64, error)
	// OrderParameter returns the nematic order parameter S.
	OrderParameter(l *lattice.Lattice) float64
}

// Backend registry names.
const (
	NameDistributed = "distributed"
	NameSerial      = "serial"
)

// InitMode selects how the initial lattice is filled.
type InitMode string

// Initialisation modes.
const (
	InitRandom InitMode = "random" // uniform angles in [0, 2π)
	InitRamp   InitMode = "ramp"   // evenly spaced angles, deterministic
)

// Valid reports whether m is a known mode.
func (m InitMode) Valid() bool { return m == InitRandom || m == InitRamp }

// Options holds the settings shared by every backend.
type Options struct {
	Seeds seed.Source
	Init  InitMode
}

// Option mutates Options.
type Option func(*Options)

// WithSeeds selects the per-step seed source. A nil source keeps the default.
func WithSeeds(s seed.Source) Option {
	return func(o *Options) {
		if s != nil {
			o.Seeds = s
		}
	}
}

// WithInit selects the initialisation mode. An empty mode keeps the default.
func WithInit(m InitMode) Option {
	return func(o *Options) {
		if m != "" {
			o.Init = m
		}
	}
}

// DefaultOptions returns wall-clock seeding and random initialisation.
func DefaultOptions() Options {
	return Options{Seeds: &seed.Clock{}, Init: InitRandom}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.Init.Valid() {
		return o, fmt.Errorf("%q: %w", o.Init, ErrInit)
	}

	return o, nil
}

var registry = map[string]func(Options) Backend{
	NameDistributed: func(o Options) Backend { return &Distributed{opts: o} },
	NameSerial:      func(o Options) Backend { return &Serial{opts: o} },
}

// Names returns the registered backend names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// NewBackend looks up a backend by name.
// Errors: ErrBackend for unknown names, ErrInit for an unknown init mode.
func NewBackend(name string, opts ...Option) (Backend, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrBackend)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return ctor(o), nil
}

// initial builds a fresh lattice on the calling worker.
func initial(o Options, w *comm.Worker, n int) (*lattice.Lattice, error) {
	switch o.Init {
	case InitRamp:
		return lattice.Ramp(n)
	default:
		s := o.Seeds.Seed(w.Rank(), w.Step())
		w.Log().WithField("seed", s).Debug("init lattice")

		return lattice.Random(n, seed.NewRand(s))
	}
}
