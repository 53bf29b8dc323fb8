// SPDX-License-Identifier: MIT
package lattice_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/llmc/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeatmap_Modes(t *testing.T) {
	l, err := lattice.FromAngles(2, []float64{0, math.Pi / 2, 3 * math.Pi / 2, 5})
	require.NoError(t, err)

	none, err := l.Heatmap(lattice.HeatmapNone)
	require.NoError(t, err)
	assert.Nil(t, none)

	en, err := l.Heatmap(lattice.HeatmapEnergy)
	require.NoError(t, err)
	assert.Equal(t, l.CellEnergies(), en.Data())
	v, _ := en.At(1, 1)
	assert.Equal(t, l.EnergyAt(1, 1), v)

	ang, err := l.Heatmap(lattice.HeatmapAngle)
	require.NoError(t, err)
	for _, v := range ang.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, math.Pi)
	}
	v, _ = ang.At(1, 0)
	assert.InDelta(t, math.Pi/2, v, 1e-12)

	_, err = l.Heatmap(lattice.HeatmapMode(7))
	require.ErrorIs(t, err, lattice.ErrPlotMode)
}

func TestHeatmapMode_String(t *testing.T) {
	assert.Equal(t, "none", lattice.HeatmapNone.String())
	assert.Equal(t, "energy", lattice.HeatmapEnergy.String())
	assert.Equal(t, "angle", lattice.HeatmapAngle.String())
	assert.Equal(t, "unknown", lattice.HeatmapMode(-1).String())
	assert.False(t, lattice.HeatmapMode(3).Valid())
}
