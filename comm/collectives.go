// SPDX-License-Identifier: MIT
package comm

import (
	"context"

	"github.com/katalvlaran/llmc/matrix"
)

const (
	opBarrier   = "Barrier"
	opReduceInt = "ReduceSumInt"
	opReduceMat = "ReduceSumDense"
	opBroadcast = "Broadcast"
)

// Barrier blocks until every worker in the group has called Barrier.
// Errors: the context error when the run is cancelled while waiting.
func (w *Worker) Barrier(ctx context.Context) error {
	if err := w.g.bar.Wait(ctx); err != nil {
		return opErrorf(opBarrier, w.rank, err)
	}

	return nil
}

// ReduceSumInt sums v across the group onto the root.
//
// Implementation:
//   - Stage 1: publish v into this rank's slot, then wait for all ranks.
//   - Stage 2: the root sums the slots in rank order.
//   - Stage 3: wait again so no rank republishes before the root has read.
//
// Returns the total on the root and 0 on every other rank.
func (w *Worker) ReduceSumInt(ctx context.Context, v int) (int, error) {
	g := w.g
	g.ints[w.rank] = v
	if err := g.bar.Wait(ctx); err != nil {
		return 0, opErrorf(opReduceInt, w.rank, err)
	}

	var total int
	if w.IsRoot() {
		for _, x := range g.ints {
			total += x
		}
	}

	if err := g.bar.Wait(ctx); err != nil {
		return 0, opErrorf(opReduceInt, w.rank, err)
	}

	return total, nil
}

// ReduceSumDense sums local elementwise across the group onto the root.
// MAIN DESCRIPTION:
//   - The root receives a freshly allocated matrix; others receive nil.
//   - Contributions are accumulated in rank order, so the floating-point
//     result is identical from run to run for the same inputs.
//   - local is only read; callers may reuse it after the call returns.
//
// Errors:
//   - ErrNilBuffer when local is nil.
//   - matrix.ErrDimensionMismatch (on the root) when shapes differ.
//   - The context error when the run is cancelled.
//
// Complexity:
//   - Root: Time O(W·r·c), Space O(r·c). Others: O(1).
func (w *Worker) ReduceSumDense(ctx context.Context, local *matrix.Dense) (*matrix.Dense, error) {
	if local == nil {
		return nil, opErrorf(opReduceMat, w.rank, ErrNilBuffer)
	}
	g := w.g
	g.mats[w.rank] = local
	if err := g.bar.Wait(ctx); err != nil {
		return nil, opErrorf(opReduceMat, w.rank, err)
	}

	var sum *matrix.Dense
	if w.IsRoot() {
		var err error
		if sum, err = matrix.NewDense(local.Rows(), local.Cols()); err != nil {
			return nil, opErrorf(opReduceMat, w.rank, err)
		}
		for _, m := range g.mats {
			if err = matrix.AddInPlace(sum, m); err != nil {
				return nil, opErrorf(opReduceMat, w.rank, err)
			}
		}
	}

	if err := g.bar.Wait(ctx); err != nil {
		return nil, opErrorf(opReduceMat, w.rank, err)
	}
	g.mats[w.rank] = nil

	return sum, nil
}

// Broadcast copies the root's buf and scalar to every worker.
// MAIN DESCRIPTION:
//   - On the root, buf and scalar are the values to send; both are returned
//     unchanged.
//   - On every other rank, buf is overwritten in place with the root's data
//     and the root's scalar is returned.
//
// Errors:
//   - ErrNilBuffer when buf is nil.
//   - matrix.ErrDimensionMismatch when a receiver's buf differs in shape.
//   - The context error when the run is cancelled.
func (w *Worker) Broadcast(ctx context.Context, buf *matrix.Dense, scalar float64) (float64, error) {
	if buf == nil {
		return 0, opErrorf(opBroadcast, w.rank, ErrNilBuffer)
	}
	g := w.g
	if w.IsRoot() {
		g.bcast = buf
		g.scalar = scalar
	}
	if err := g.bar.Wait(ctx); err != nil {
		return 0, opErrorf(opBroadcast, w.rank, err)
	}

	if !w.IsRoot() {
		if err := buf.CopyFrom(g.bcast); err != nil {
			return 0, opErrorf(opBroadcast, w.rank, err)
		}
		scalar = g.scalar
	}

	if err := g.bar.Wait(ctx); err != nil {
		return 0, opErrorf(opBroadcast, w.rank, err)
	}

	return scalar, nil
}
