// SPDX-License-Identifier: MIT
package lattice

import "errors"

var (
	// ErrSize indicates a lattice side length below the minimum of 2.
	ErrSize = errors.New("lattice: size must be >= 2")

	// ErrShape indicates raw angle data whose length is not n*n.
	ErrShape = errors.New("lattice: angle data does not match n*n")

	// ErrWorkers indicates a non-positive worker-group size.
	ErrWorkers = errors.New("lattice: worker group size must be >= 1")

	// ErrRank indicates a worker rank outside [0, size).
	ErrRank = errors.New("lattice: worker rank out of range")

	// ErrPlotMode indicates an unknown heatmap mode.
	ErrPlotMode = errors.New("lattice: unknown heatmap mode")

	// ErrTolerance indicates a domain tolerance outside (0, π/2].
	ErrTolerance = errors.New("lattice: domain tolerance must be in (0, pi/2]")

	// ErrNilRand indicates Random was called without a PRNG.
	ErrNilRand = errors.New("lattice: nil random source")
)
