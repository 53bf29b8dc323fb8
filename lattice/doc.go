// SPDX-License-Identifier: MIT

// Package lattice models the two-dimensional Lebwohl-Lasher liquid-crystal
// lattice: an N×N toroidal grid of orientation angles, its pair-interaction
// energy, and the nematic order parameter.
//
// 🚀 What is the Lebwohl-Lasher model?
//
//	Each cell holds an angle θ. Neighbouring cells interact through
//	  E(θi, θj) = 0.5 · (1 − 3·cos²(θi − θj))
//	which is minimised (−1) for parallel or anti-parallel neighbours.
//	Boundaries are periodic: row and column indices wrap modulo N.
//
// ✨ Key features:
//   - Random (uniform [0, 2π)) and Ramp (deterministic) initialisation
//   - EnergyAt: four-neighbour energy of one cell, fixed evaluation order
//   - TotalEnergy / TotalEnergyParallel: whole-lattice energy (serial or row-parallel)
//   - OrderParameter: largest eigenvalue of the 2×2 alignment tensor Q
//   - Partition: contiguous row ranges for a fixed-size worker group
//   - Heatmap: per-cell grids for the plotting collaborator
//
// ⚙️ Usage:
//
//	rng := seed.NewRand(seed.Derive(time.Now().UnixMilli(), 0))
//	l, err := lattice.Random(64, rng)
//	e := l.TotalEnergy()
//	s := l.OrderParameter()
//
// Indexing convention: (x, y) is (row, column). Workers partition rows.
package lattice
