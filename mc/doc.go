// SPDX-License-Identifier: MIT

// Package mc implements Metropolis Monte Carlo sweeps over a Lebwohl-Lasher
// lattice, and the backends that run them on a comm.Group.
//
// Building blocks:
//
//	DrawTrials  pre-draws one step's random trials for a row partition
//	Propose     applies trials to a private copy and returns the delta
//	Backend     the capability set a simulation driver runs against
//
// Backends:
//
//	Distributed  every worker proposes on its own rows of a snapshot; the root
//	             sums deltas and acceptances, merges, and broadcasts. Neighbour
//	             reads across a partition boundary see the pre-step snapshot.
//	Serial       one worker, in-place, n² trials anywhere on the lattice; each
//	             trial sees every earlier accepted move.
//
// Acceptance rule, for energy change dE at temperature T:
//
//	accept  if dE <= 0
//	accept  if exp(-dE/T) >= u, u ~ U[0,1)
//	reject  otherwise (the perturbation is subtracted back)
//
// Perturbations are drawn from N(0, 0.1+T). A NaN anywhere in that rule is
// reported as ErrNumerical instead of silently counting as a rejection.
package mc
