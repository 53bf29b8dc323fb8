// SPDX-License-Identifier: MIT
package mc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/llmc/lattice"
	"github.com/katalvlaran/llmc/matrix"
)

// Proposal is one worker's contribution to a step.
type Proposal struct {
	// Delta is working copy minus snapshot; zero outside the partition rows.
	Delta *matrix.Dense
	// Accepted counts accepted trials.
	Accepted int
	// Attempts counts trials applied (rows·n).
	Attempts int
}

// Propose runs trials sequentially against a private copy of snap.
// MAIN DESCRIPTION:
//   - snap is never modified; its neighbours, including rows owned by other
//     workers, are read as of the snapshot.
//   - Each trial perturbs the copy, compares the single-site energies before
//     and after, and either keeps the change or subtracts it back.
//
// Implementation:
//   - Stage 1: validate T, the partition, and every trial's coordinates.
//   - Stage 2: clone the snapshot and apply trials in order.
//   - Stage 3: Delta = copy - snap.
//
// Errors:
//   - ErrTemperature, ErrNilLattice, ErrPartition.
//   - ErrNumerical when an energy or Boltzmann factor is NaN.
//
// Complexity:
//   - Time O(len(trials) + n²), Space O(n²).
func Propose(snap *lattice.Lattice, p lattice.Partition, trials []Trial, t float64) (Proposal, error) {
	if !ValidTemperature(t) {
		return Proposal{}, ErrTemperature
	}
	if snap == nil {
		return Proposal{}, ErrNilLattice
	}
	n := snap.N()
	if p.Start < 0 || p.End > n || p.Start > p.End {
		return Proposal{}, fmt.Errorf("Propose %s on n=%d: %w", p, n, ErrPartition)
	}

	work := snap.Clone()
	a := work.Angles()
	var (
		accepted int
		i        int
		tr       Trial
	)
	draw := func() float64 { return tr.Draw }
	for i, tr = range trials {
		if !p.Contains(tr.X) || tr.Y < 0 || tr.Y >= n {
			return Proposal{}, fmt.Errorf("Propose trial %d (%d,%d) outside %s: %w", i, tr.X, tr.Y, p, ErrPartition)
		}
		ok, err := metropolisAt(a, n, tr.X, tr.Y, tr.Delta, t, draw)
		if err != nil {
			return Proposal{}, fmt.Errorf("Propose trial %d: %w", i, err)
		}
		if ok {
			accepted++
		}
	}

	delta, err := matrix.Sub(work.Dense(), snap.Dense())
	if err != nil {
		return Proposal{}, fmt.Errorf("Propose: %w", err)
	}

	return Proposal{Delta: delta, Accepted: accepted, Attempts: len(trials)}, nil
}

// metropolisAt perturbs a[x,y] by d and keeps or reverts it.
// u is called only for uphill moves.
func metropolisAt(a []float64, n, x, y int, d, t float64, u func() float64) (bool, error) {
	k := x*n + y
	en0 := lattice.EnergyAtData(a, n, x, y)
	a[k] += d
	en1 := lattice.EnergyAtData(a, n, x, y)

	ok, err := metropolis(en0, en1, t, u)
	if err != nil {
		return false, err
	}
	if !ok {
		a[k] -= d
	}

	return ok, nil
}

// metropolis applies the acceptance rule to one energy change.
func metropolis(en0, en1, t float64, u func() float64) (bool, error) {
	if math.IsNaN(en0) || math.IsNaN(en1) {
		return false, ErrNumerical
	}
	if en1 <= en0 {
		return true, nil
	}
	boltz := math.Exp(-(en1 - en0) / t)
	if math.IsNaN(boltz) {
		return false, ErrNumerical
	}

	return boltz >= u(), nil
}
