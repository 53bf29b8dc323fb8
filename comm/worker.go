// SPDX-License-Identifier: MIT
package comm

import (
	"github.com/katalvlaran/llmc/lattice"
	"github.com/sirupsen/logrus"
)

// RootRank is the rank that owns reductions and the authoritative lattice.
const RootRank = 0

// Worker is the explicit per-worker context handed to every Run callback.
// A Worker is owned by exactly one goroutine and must not be shared.
type Worker struct {
	rank int
	size int
	n    int
	part lattice.Partition
	g    *Group
	log  *logrus.Entry
	step uint64
}

// Rank returns this worker's identity in [0, Size).
func (w *Worker) Rank() int { return w.rank }

// Size returns the group size.
func (w *Worker) Size() int { return w.size }

// N returns the lattice side length the worker's partition was computed for.
func (w *Worker) N() int { return w.n }

// IsRoot reports whether this worker is rank 0.
func (w *Worker) IsRoot() bool { return w.rank == RootRank }

// Partition returns the contiguous row range this worker owns.
func (w *Worker) Partition() lattice.Partition { return w.part }

// Log returns the worker's logger, pre-tagged with rank, size and rows.
func (w *Worker) Log() *logrus.Entry { return w.log }

// Step returns the number of Monte Carlo steps this worker has started.
func (w *Worker) Step() uint64 { return w.step }

// NextStep advances the step counter and returns its new value.
// Seed sources use it so that every step draws from a distinct stream.
func (w *Worker) NextStep() uint64 {
	w.step++

	return w.step
}
