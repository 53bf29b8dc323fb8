// SPDX-License-Identifier: MIT
package mc

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/llmc/lattice"
)

// Trial is one pre-drawn Metropolis attempt.
type Trial struct {
	X, Y  int     // target cell; X inside the owning partition
	Delta float64 // angle perturbation, N(0, Scale(T))
	Draw  float64 // acceptance threshold, U[0,1)
}

// Scale returns the standard deviation of the angle perturbation at T.
func Scale(t float64) float64 { return 0.1 + t }

// ValidTemperature reports whether t can drive the acceptance rule.
func ValidTemperature(t float64) bool {
	return t > 0 && !math.IsInf(t, 0) && !math.IsNaN(t)
}

// DrawTrials draws p.Rows()·n trials for one step.
// MAIN DESCRIPTION:
//   - Draws are taken in whole batches: every X, then every Y, then every
//     Delta, then every Draw. The same rng state therefore always yields the
//     same trials regardless of how they are consumed.
//   - X is uniform over the partition rows, Y over all n columns.
//   - A zero-row partition yields no trials and consumes no randomness.
//
// Complexity:
//   - Time O(rows·n), Space O(rows·n).
func DrawTrials(rng *rand.Rand, p lattice.Partition, n int, t float64) []Trial {
	rows := p.Rows()
	if rows <= 0 || n <= 0 {
		return nil
	}
	k := rows * n
	trials := make([]Trial, k)
	for i := range trials {
		trials[i].X = p.Start + rng.Intn(rows)
	}
	for i := range trials {
		trials[i].Y = rng.Intn(n)
	}
	scale := Scale(t)
	for i := range trials {
		trials[i].Delta = rng.NormFloat64() * scale
	}
	for i := range trials {
		trials[i].Draw = rng.Float64()
	}

	return trials
}
