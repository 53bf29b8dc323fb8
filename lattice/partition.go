// SPDX-License-Identifier: MIT
package lattice

import "fmt"

// Partition is the contiguous row range [Start, End) owned by one worker.
// Start == End is legal: the worker owns no rows but still joins every
// collective operation.
type Partition struct {
	Start int // first owned row
	End   int // one past the last owned row
}

// Rows returns the number of owned rows.
func (p Partition) Rows() int { return p.End - p.Start }

// Contains reports whether row x is owned.
func (p Partition) Contains(x int) bool { return x >= p.Start && x < p.End }

// String renders the range as "[start,end)".
func (p Partition) String() string { return fmt.Sprintf("[%d,%d)", p.Start, p.End) }

// PartitionFor computes the rows owned by rank in a group of size workers.
//
// n rows are divided as evenly as possible; the first n mod size ranks receive
// one extra row:
//
//	base  = n / size, extra = n % size
//	start = rank*base + min(rank, extra)
//	rows  = base + (1 if rank < extra)
//
// Errors: ErrWorkers (size < 1), ErrRank (rank ∉ [0,size)).
// Complexity: O(1).
func PartitionFor(n, rank, size int) (Partition, error) {
	if size < 1 {
		return Partition{}, ErrWorkers
	}
	if rank < 0 || rank >= size {
		return Partition{}, ErrRank
	}
	base := n / size
	extra := n % size

	start := rank*base + min(rank, extra)
	rows := base
	if rank < extra {
		rows++
	}

	return Partition{Start: start, End: start + rows}, nil
}

// Partitions returns the row ranges of every rank, in rank order.
// The ranges are pairwise disjoint and their union is [0, n).
func Partitions(n, size int) ([]Partition, error) {
	if size < 1 {
		return nil, ErrWorkers
	}
	out := make([]Partition, size)
	for r := 0; r < size; r++ {
		p, err := PartitionFor(n, r, size)
		if err != nil {
			return nil, err
		}
		out[r] = p
	}

	return out, nil
}
