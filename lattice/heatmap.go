// SPDX-License-Identifier: MIT
package lattice

import (
	"math"

	"github.com/katalvlaran/llmc/matrix"
)

// HeatmapMode selects which per-cell quantity is handed to the plotting
// collaborator. The values match the command-line plot flag.
type HeatmapMode int

const (
	// HeatmapNone disables plotting.
	HeatmapNone HeatmapMode = iota
	// HeatmapEnergy colours each cell by EnergyAt.
	HeatmapEnergy
	// HeatmapAngle colours each cell by θ mod π (the director is head-tail symmetric).
	HeatmapAngle
)

// Valid reports whether m is a known mode.
func (m HeatmapMode) Valid() bool { return m >= HeatmapNone && m <= HeatmapAngle }

// String implements fmt.Stringer.
func (m HeatmapMode) String() string {
	switch m {
	case HeatmapNone:
		return "none"
	case HeatmapEnergy:
		return "energy"
	case HeatmapAngle:
		return "angle"
	default:
		return "unknown"
	}
}

// Heatmap returns the n×n grid for mode, or nil for HeatmapNone.
// Errors: ErrPlotMode for unknown modes.
func (l *Lattice) Heatmap(mode HeatmapMode) (*matrix.Dense, error) {
	var vals []float64
	switch mode {
	case HeatmapNone:
		return nil, nil
	case HeatmapEnergy:
		vals = l.CellEnergies()
	case HeatmapAngle:
		a := l.cells.Data()
		vals = make([]float64, len(a))
		for k, theta := range a {
			vals[k] = math.Mod(theta, math.Pi)
			if vals[k] < 0 {
				vals[k] += math.Pi
			}
		}
	default:
		return nil, ErrPlotMode
	}

	return matrix.NewDenseFrom(l.n, l.n, vals)
}
