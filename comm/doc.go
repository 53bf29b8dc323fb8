// SPDX-License-Identifier: MIT

// Package comm runs a fixed-size group of cooperating workers and provides the
// collective operations they use to agree on one shared lattice.
//
// A Group of size W launches W goroutines; each receives an explicit *Worker
// context carrying its rank, the group size, its row Partition, a structured
// logger, and the collectives:
//
//	Barrier         every worker waits until all have arrived
//	ReduceSumInt    integers summed onto the root (rank 0)
//	ReduceSumDense  matrices summed elementwise onto the root, in rank order
//	Broadcast       root matrix + scalar copied to every worker
//
// Every collective is a synchronous barrier: no worker returns from it before
// every worker has entered it. The group has no timeout of its own; one hung
// worker stalls the whole group. A worker that returns an error cancels the
// run context, which releases every other worker from the barrier it is
// blocked on, so failure is never isolated to one worker and never silent.
//
// The package holds no global state. Exchange slots live on the Group and are
// only touched between the two barrier phases of a collective.
package comm
