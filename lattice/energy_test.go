// SPDX-License-Identifier: MIT
package lattice_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/llmc/lattice"
	"github.com/katalvlaran/llmc/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// relTol is the relative tolerance for commutative-accumulation checks.
const relTol = 1e-9

// TestTotalEnergy_AlignedZeroLattice: a 3×3 lattice of zero angles has
// cos²=1 on every bond, so each of the 9 cells contributes
// four bonds of −1.
func TestTotalEnergy_AlignedZeroLattice(t *testing.T) {
	l, err := lattice.New(3)
	require.NoError(t, err)

	assert.Equal(t, -36.0, l.TotalEnergy())
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			assert.Equal(t, -4.0, l.EnergyAt(x, y))
		}
	}

	par, err := l.TotalEnergyParallel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -36.0, par)
}

// TestEnergyAt_PerpendicularNeighbours checks the potential maximum: a cell
// perpendicular to all four neighbours scores 4 × 0.5.
func TestEnergyAt_PerpendicularNeighbours(t *testing.T) {
	l, err := lattice.New(3)
	require.NoError(t, err)
	require.NoError(t, l.Set(1, 1, math.Pi/2))

	assert.InDelta(t, 2.0, l.EnergyAt(1, 1), 1e-12)
	// Each neighbour sees one perpendicular bond (0.5) and three aligned ones (−1).
	assert.InDelta(t, -2.5, l.EnergyAt(0, 1), 1e-12)
	assert.InDelta(t, -2.5, l.EnergyAt(1, 2), 1e-12)
}

// TestEnergyAt_PeriodicBoundary checks neighbours wrap at the edges.
func TestEnergyAt_PeriodicBoundary(t *testing.T) {
	l, err := lattice.New(4)
	require.NoError(t, err)
	require.NoError(t, l.Set(3, 3, math.Pi/2))

	// (0,3) has (3,3) as its x-1 neighbour; (3,0) has it as y-1.
	assert.InDelta(t, -2.5, l.EnergyAt(0, 3), 1e-12)
	assert.InDelta(t, -2.5, l.EnergyAt(3, 0), 1e-12)
}

// TestEnergyAt_RotationInvariant checks the potential depends only on angle
// differences: a global rotation leaves every cell energy unchanged.
func TestEnergyAt_RotationInvariant(t *testing.T) {
	const n = 12
	base, err := lattice.Random(n, seed.NewRand(11))
	require.NoError(t, err)

	for _, offset := range []float64{0.3, math.Pi, -2.1, 17.0} {
		rot := base.Clone()
		rot.Rotate(offset)
		for x := 0; x < n; x++ {
			for y := 0; y < n; y++ {
				assert.InDelta(t, base.EnergyAt(x, y), rot.EnergyAt(x, y), 1e-9,
					"offset=%v cell=(%d,%d)", offset, x, y)
			}
		}
	}
}

// TestTotalEnergy_EqualsSumOfCells checks total == Σ EnergyAt, independent of
// iteration order, for the serial and the row-parallel implementations.
func TestTotalEnergy_EqualsSumOfCells(t *testing.T) {
	const n = 17
	l, err := lattice.Random(n, seed.NewRand(5))
	require.NoError(t, err)

	forward, backward := 0.0, 0.0
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			forward += l.EnergyAt(x, y)
			backward += l.EnergyAt(n-1-x, n-1-y)
		}
	}

	total := l.TotalEnergy()
	par, err := l.TotalEnergyParallel(context.Background())
	require.NoError(t, err)

	scale := math.Max(1, math.Abs(forward))
	assert.InDelta(t, forward, total, relTol*scale)
	assert.InDelta(t, backward, total, relTol*scale)
	assert.InDelta(t, total, par, relTol*scale)

	again, err := l.TotalEnergyParallel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, par, again, "row sums are combined in a fixed order")
}

// TestTotalEnergyParallel_Cancelled returns the context error.
func TestTotalEnergyParallel_Cancelled(t *testing.T) {
	l, err := lattice.Ramp(8)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.TotalEnergyParallel(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

// TestEnergyAtData_MatchesMethod locks the raw-buffer kernel to the method.
func TestEnergyAtData_MatchesMethod(t *testing.T) {
	l, err := lattice.Random(6, seed.NewRand(3))
	require.NoError(t, err)
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			require.Equal(t, l.EnergyAt(x, y), lattice.EnergyAtData(l.Angles(), 6, x, y))
		}
	}
}
