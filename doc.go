// SPDX-License-Identifier: MIT

// Package llmc simulates nematic liquid crystals on a 2D Lebwohl-Lasher
// lattice with Metropolis Monte Carlo, split across a fixed group of
// cooperating workers.
//
// 🚀 What is llmc?
//
//	An n×n toroidal grid of director angles, relaxed one sweep at a time:
//		• Lattice state: energy, Q-tensor order parameter, heatmaps
//		• Proposal engine: pre-drawn trials on a private snapshot copy
//		• Collectives: barrier, integer and matrix sum-reduce, broadcast
//		• Backends: distributed (row-partitioned) and serial (in place)
//		• Driver: step traces, run summary, YAML record, trace spans
//
// ✨ Guarantees
//
//   - Every worker ends every step holding the same lattice and ratio.
//   - Deltas never touch rows a worker does not own.
//   - One failing worker aborts the whole group; no collective hangs on it.
//   - A fixed base seed replays a run bit for bit.
//
// Packages:
//
//	matrix/    — dense float64 storage, elementwise add/sub, finite checks
//	lattice/   — angles, energy, order parameter, partitions, heatmaps, domains
//	seed/      — per-worker, per-step PRNG seeds
//	comm/      — worker group and collectives
//	mc/        — trials, Propose, Backend (Distributed, Serial)
//	sim/       — Run and Record
//	config/    — defaults, YAML, LLMC_ environment
//	telemetry/ — logrus logger, OpenTelemetry provider
//	cmd/llmc/  — command line
//
// Quick start:
//
//	llmc 100 64 0.5 0 --workers 4 --seed 7
package llmc
