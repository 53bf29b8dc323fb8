// SPDX-License-Identifier: MIT
package mc

import (
	"context"
	"fmt"

	"github.com/katalvlaran/llmc/comm"
	"github.com/katalvlaran/llmc/lattice"
	"github.com/katalvlaran/llmc/seed"
	"github.com/sirupsen/logrus"
)

// Serial is the single-worker in-place backend.
//
// Each step makes n² trials at uniformly random cells anywhere on the lattice
// and applies them directly, so every trial sees all earlier accepted moves.
// The uniform acceptance threshold is drawn only for uphill moves. Serial
// runs only on a group of size 1.
type Serial struct {
	opts Options
}

// NewSerial builds a Serial backend.
func NewSerial(opts ...Option) (*Serial, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Serial{opts: o}, nil
}

// Name implements Backend.
func (s *Serial) Name() string { return NameSerial }

// Init implements Backend.
// Errors: ErrGroupSize when the group has more than one worker.
func (s *Serial) Init(_ context.Context, w *comm.Worker, n int) (*lattice.Lattice, error) {
	if w.Size() != 1 {
		return nil, fmt.Errorf("Serial.Init on %d workers: %w", w.Size(), ErrGroupSize)
	}
	l, err := initial(s.opts, w, n)
	if err != nil {
		return nil, fmt.Errorf("Serial.Init: %w", err)
	}

	return l, nil
}

// EnergyAt implements Backend.
func (s *Serial) EnergyAt(l *lattice.Lattice, x, y int) float64 { return l.EnergyAt(x, y) }

// TotalEnergy sums row energies concurrently with TotalEnergyParallel.
// That sum only fails on context cancellation, which context.Background never
// delivers; if it fails anyway the sequential TotalEnergy is returned.
func (s *Serial) TotalEnergy(l *lattice.Lattice) float64 {
	e, err := l.TotalEnergyParallel(context.Background())
	if err != nil {
		return l.TotalEnergy()
	}

	return e
}

// OrderParameter implements Backend.
func (s *Serial) OrderParameter(l *lattice.Lattice) float64 { return l.OrderParameter() }

// MonteCarloStep implements Backend.
//
// Complexity: O(n²).
func (s *Serial) MonteCarloStep(ctx context.Context, w *comm.Worker, l *lattice.Lattice, t float64) (float64, error) {
	if w.Size() != 1 {
		return 0, fmt.Errorf("Serial.MonteCarloStep on %d workers: %w", w.Size(), ErrGroupSize)
	}
	if !ValidTemperature(t) {
		return 0, ErrTemperature
	}
	if l == nil {
		return 0, ErrNilLattice
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	step := w.NextStep()
	sd := s.opts.Seeds.Seed(w.Rank(), step)
	rng := seed.NewRand(sd)
	w.Log().WithFields(logrus.Fields{"step": step, "seed": sd}).Debug("sweeping")

	n := l.N()
	a := l.Angles()
	scale := Scale(t)
	accepted := 0
	for k := 0; k < n*n; k++ {
		x := rng.Intn(n)
		y := rng.Intn(n)
		d := rng.NormFloat64() * scale
		ok, err := metropolisAt(a, n, x, y, d, t, rng.Float64)
		if err != nil {
			return 0, fmt.Errorf("Serial.MonteCarloStep(step %d): %w", step, err)
		}
		if ok {
			accepted++
		}
	}

	return float64(accepted) / float64(n*n), nil
}
