// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/llmc/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies dimension accessors.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Len(t, m.Data(), 12) // flat row-major buffer
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf checks the default finite-only numeric policy.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 1, math.Inf(-1)), matrix.ErrNaNInf)
	require.NoError(t, m.Set(1, 1, 7.5)) // finite values pass
}

// TestDataIsView verifies Data returns the live row-major buffer.
func TestDataIsView(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	m.Data()[1*3+0] = 40 // offset = i*cols + j
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 40.0, v)
}

// TestNewDenseFrom covers length and policy validation on raw buffers.
func TestNewDenseFrom(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadData)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, math.NaN(), 3, 4})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	src := []float64{1, 2, 3, 4}
	m, err := matrix.NewDenseFrom(2, 2, src)
	require.NoError(t, err)
	src[0] = 99 // caller buffer is not aliased
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}

// TestCopyIndependence ensures Copy returns a deep copy.
func TestCopyIndependence(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 0, 0, 2})
	require.NoError(t, err)

	cp := m.Copy()
	require.NoError(t, cp.Set(0, 0, 3))
	cp.Data()[3] = 9

	require.Equal(t, []float64{1, 0, 0, 2}, m.Data()) // original unchanged
}

// TestCopyFrom verifies in-place overwrite and its shape guards.
func TestCopyFrom(t *testing.T) {
	src, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	dst, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, dst.CopyFrom(src))
	require.Equal(t, src.Data(), dst.Data())

	other, _ := matrix.NewDense(3, 2)
	require.ErrorIs(t, dst.CopyFrom(other), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, dst.CopyFrom(nil), matrix.ErrNilMatrix)
}
