// SPDX-License-Identifier: MIT
package mc

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/llmc/comm"
	"github.com/katalvlaran/llmc/lattice"
	"github.com/katalvlaran/llmc/matrix"
	"github.com/katalvlaran/llmc/seed"
	"github.com/sirupsen/logrus"
)

// Distributed is the domain-decomposed backend. Any group size works,
// including groups with more workers than rows.
type Distributed struct {
	opts Options
}

// NewDistributed builds a Distributed backend.
func NewDistributed(opts ...Option) (*Distributed, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Distributed{opts: o}, nil
}

// Name implements Backend.
func (d *Distributed) Name() string { return NameDistributed }

// Init builds the lattice on the root and broadcasts it.
func (d *Distributed) Init(ctx context.Context, w *comm.Worker, n int) (*lattice.Lattice, error) {
	var (
		l   *lattice.Lattice
		err error
	)
	if w.IsRoot() {
		l, err = initial(d.opts, w, n)
	} else {
		l, err = lattice.New(n)
	}
	if err != nil {
		return nil, fmt.Errorf("Distributed.Init: %w", err)
	}
	if _, err = w.Broadcast(ctx, l.Dense(), 0); err != nil {
		return nil, fmt.Errorf("Distributed.Init: %w", err)
	}

	return l, nil
}

// EnergyAt implements Backend.
func (d *Distributed) EnergyAt(l *lattice.Lattice, x, y int) float64 { return l.EnergyAt(x, y) }

// TotalEnergy implements Backend.
func (d *Distributed) TotalEnergy(l *lattice.Lattice) float64 { return l.TotalEnergy() }

// OrderParameter implements Backend.
func (d *Distributed) OrderParameter(l *lattice.Lattice) float64 { return l.OrderParameter() }

// MonteCarloStep runs one synchronised sweep.
// MAIN DESCRIPTION:
//   - Each worker proposes n_rows·n trials on its own rows of a private copy.
//   - Acceptance counts and deltas are summed onto the root, which merges the
//     deltas into its lattice and computes accepted / n².
//   - The root broadcasts the merged lattice and ratio; on return every worker
//     holds both.
//
// Implementation:
//   - Stage 1: seed a fresh rng for (rank, step) and draw trials.
//   - Stage 2: Propose on the snapshot l.
//   - Stage 3: ReduceSumInt(accepted), ReduceSumDense(delta).
//   - Stage 4 (root): l += Σdelta; reject a non-finite merge.
//   - Stage 5: Broadcast(l, ratio).
//
// Errors:
//   - ErrTemperature before any collective, so every worker fails alike.
//   - ErrNumerical from a proposal or the merge; the group is aborted.
//   - Collective errors when another worker failed first.
func (d *Distributed) MonteCarloStep(ctx context.Context, w *comm.Worker, l *lattice.Lattice, t float64) (float64, error) {
	if !ValidTemperature(t) {
		return 0, ErrTemperature
	}
	if l == nil {
		return 0, ErrNilLattice
	}
	n := l.N()
	p := w.Partition()
	step := w.NextStep()
	s := d.opts.Seeds.Seed(w.Rank(), step)
	trials := DrawTrials(seed.NewRand(s), p, n, t)

	log := w.Log().WithFields(logrus.Fields{"step": step, "seed": s})
	log.WithField("attempts", len(trials)).Debug("proposing")

	prop, err := Propose(l, p, trials, t)
	if err != nil {
		return 0, fmt.Errorf("Distributed.MonteCarloStep(step %d): %w", step, err)
	}
	log.WithField("accepted", prop.Accepted).Debug("proposed")

	total, err := w.ReduceSumInt(ctx, prop.Accepted)
	if err != nil {
		return 0, err
	}
	sum, err := w.ReduceSumDense(ctx, prop.Delta)
	if err != nil {
		return 0, err
	}

	var ratio float64
	if w.IsRoot() {
		if err = merge(l, sum); err != nil {
			return 0, fmt.Errorf("Distributed.MonteCarloStep(step %d): %w", step, err)
		}
		ratio = float64(total) / float64(n*n)
	}

	return w.Broadcast(ctx, l.Dense(), ratio)
}

// merge adds the summed delta into the lattice and checks the result.
func merge(l *lattice.Lattice, sum *matrix.Dense) error {
	if err := matrix.AddInPlace(l.Dense(), sum); err != nil {
		return err
	}
	if err := matrix.ValidateFinite(l.Dense()); err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return fmt.Errorf("merge: %w: %w", ErrNumerical, err)
		}
		return err
	}

	return nil
}
