// SPDX-License-Identifier: MIT
package comm

import (
	"errors"
	"fmt"
)

var (
	// ErrGroupSize indicates a non-positive worker-group size.
	ErrGroupSize = errors.New("comm: group size must be >= 1")

	// ErrBusy indicates Run was called while the group is already running.
	ErrBusy = errors.New("comm: group is already running")

	// ErrNilFunc indicates Run was called without a worker function.
	ErrNilFunc = errors.New("comm: worker function is nil")

	// ErrNilBuffer indicates a collective was called with a nil matrix.
	ErrNilBuffer = errors.New("comm: nil buffer")
)

// opErrorf tags a collective failure with the operation and the caller's rank.
func opErrorf(op string, rank int, err error) error {
	return fmt.Errorf("comm.%s(rank %d): %w", op, rank, err)
}
