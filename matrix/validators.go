// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finite checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateBinarySameShape is the NotNil(a) → NotNil(b) → SameShape(a,b)
// guard used by every binary elementwise kernel.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateBinarySameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateBinarySameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateBinarySameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every element of m is finite (no NaN, no ±Inf).
// It guards buffers written through Data, which bypasses Set's check.
//
// Implementation:
//   - One NaN scan (floats.HasNaN), then a ±Inf scan reporting the offset.
//
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}
	if floats.HasNaN(m.data) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}
	for k, v := range m.data {
		if math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", k/m.c, k%m.c), ErrNaNInf)
		}
	}

	return nil
}
