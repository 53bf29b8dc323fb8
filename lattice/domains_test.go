// SPDX-License-Identifier: MIT
package lattice_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/llmc/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectorGap(t *testing.T) {
	assert.InDelta(t, 0, lattice.DirectorGap(0, math.Pi), 1e-12)
	assert.InDelta(t, math.Pi/2, lattice.DirectorGap(0, math.Pi/2), 1e-12)
	assert.InDelta(t, 0.1, lattice.DirectorGap(0.05, math.Pi-0.05), 1e-12)
	assert.InDelta(t, 0.3, lattice.DirectorGap(2.0, 1.7), 1e-12)
}

func TestDomains_Aligned(t *testing.T) {
	l, err := lattice.New(5)
	require.NoError(t, err)
	l.Rotate(math.Pi) // head-tail flip changes nothing
	labels, sizes, err := l.Domains(lattice.DefaultDomainTolerance)
	require.NoError(t, err)
	assert.Equal(t, []int{25}, sizes)
	for _, id := range labels {
		assert.Equal(t, 0, id)
	}
}

func TestDomains_StripesWrap(t *testing.T) {
	// rows 0 and 3 are horizontal, rows 1 and 2 vertical: row 3 touches row 0
	// through the periodic boundary, so there are two domains, not three.
	const n = 4
	angles := make([]float64, n*n)
	for y := 0; y < n; y++ {
		angles[1*n+y] = math.Pi / 2
		angles[2*n+y] = math.Pi / 2
	}
	l, err := lattice.FromAngles(n, angles)
	require.NoError(t, err)

	labels, sizes, err := l.Domains(0.1)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 8}, sizes)
	assert.Equal(t, labels[0], labels[3*n])
	assert.NotEqual(t, labels[0], labels[n])
}

func TestDomains_Checkerboard(t *testing.T) {
	const n = 4
	angles := make([]float64, n*n)
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if (x+y)%2 == 1 {
				angles[x*n+y] = math.Pi / 2
			}
		}
	}
	l, err := lattice.FromAngles(n, angles)
	require.NoError(t, err)
	_, sizes, err := l.Domains(0.2)
	require.NoError(t, err)
	assert.Len(t, sizes, n*n)
}

func TestDomains_BadTolerance(t *testing.T) {
	l, err := lattice.New(3)
	require.NoError(t, err)
	for _, tol := range []float64{0, -1, 2, math.NaN()} {
		_, _, err = l.Domains(tol)
		require.ErrorIs(t, err, lattice.ErrTolerance, "%v", tol)
	}
}
