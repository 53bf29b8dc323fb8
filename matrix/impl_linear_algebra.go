// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise kernels used by the Monte Carlo step: Sub builds a worker's
//     local delta, AddInPlace accumulates deltas and merges them into the lattice.
//
// Determinism:
//   - Both kernels walk the flat buffer 0..n-1; summation order never depends
//     on scheduling.

package matrix

import "fmt"

// ---------- op tags ----------

const (
	opSub        = "Sub"
	opAddInPlace = "AddInPlace"
)

// matrixErrorf wraps err with a canonical op tag: "<tag>: <underlying>".
// Callers must only pass non-nil errors.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Sub computes the elementwise difference C = A - B into a freshly allocated Dense.
// Operands are not mutated.
//
// Notes:
//   - For equal finite inputs x-x is exactly 0, so cells a worker never touched
//     produce exact zeros in its local delta.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	for idx := range res.data {
		res.data[idx] = a.data[idx] - b.data[idx]
	}

	return res, nil
}

// AddInPlace accumulates dst += src without allocating.
// MAIN DESCRIPTION:
//   - The reduction kernel of the synchronization protocol: the root sums each
//     worker's delta into one accumulator, and merges the total into the lattice.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AddInPlace(dst, src *Dense) error {
	if err := ValidateBinarySameShape(dst, src); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	for idx := range dst.data {
		dst.data[idx] += src.data[idx]
	}

	return nil
}
