// SPDX-License-Identifier: MIT

// Package lattice - storage, constructors and accessors.
//
// The angles live in a matrix.Dense (row-major, offset = x*n + y). Hot paths
// (EnergyAt, OrderParameter) index the flat buffer directly; the public
// accessors go through the bounds-checked Dense API.
package lattice

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/llmc/matrix"
	"gonum.org/v1/gonum/floats"
)

// TwoPi is the exclusive upper bound of initial angles.
const TwoPi = 2.0 * math.Pi

// MinSize is the smallest supported side length.
const MinSize = 2

// Lattice is an n×n toroidal grid of orientation angles.
// The zero value is not usable; build one with New, FromAngles, Random or Ramp.
type Lattice struct {
	n     int
	cells *matrix.Dense
}

// New returns an n×n lattice with every angle set to 0.
// Errors: ErrSize when n < 2.
func New(n int) (*Lattice, error) {
	if n < MinSize {
		return nil, ErrSize
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("lattice.New: %w", err)
	}

	return &Lattice{n: n, cells: d}, nil
}

// FromAngles builds an n×n lattice from row-major angles (copied).
// Errors: ErrSize, ErrShape, matrix.ErrNaNInf.
func FromAngles(n int, angles []float64) (*Lattice, error) {
	if n < MinSize {
		return nil, ErrSize
	}
	if len(angles) != n*n {
		return nil, ErrShape
	}
	d, err := matrix.NewDenseFrom(n, n, angles)
	if err != nil {
		return nil, fmt.Errorf("lattice.FromAngles: %w", err)
	}

	return &Lattice{n: n, cells: d}, nil
}

// Random fills an n×n lattice with angles drawn uniformly from [0, 2π).
// Cells are filled in row-major order, one rng.Float64 per cell.
//
// Complexity: O(n²).
func Random(n int, rng *rand.Rand) (*Lattice, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	l, err := New(n)
	if err != nil {
		return nil, err
	}
	data := l.cells.Data()
	for k := range data {
		data[k] = rng.Float64() * TwoPi
	}

	return l, nil
}

// Ramp fills an n×n lattice with n² evenly spaced angles over [0, 2π),
// row-major. It is the deterministic initialisation variant.
//
// Complexity: O(n²).
func Ramp(n int) (*Lattice, error) {
	l, err := New(n)
	if err != nil {
		return nil, err
	}
	k := float64(n * n)
	// Span includes its upper bound, so stop one spacing short of 2π.
	floats.Span(l.cells.Data(), 0, TwoPi*(k-1)/k)

	return l, nil
}

// N returns the side length.
func (l *Lattice) N() int { return l.n }

// Dense exposes the backing matrix. Mutations are visible to the lattice.
func (l *Lattice) Dense() *matrix.Dense { return l.cells }

// Angles returns the row-major angle buffer without copying.
func (l *Lattice) Angles() []float64 { return l.cells.Data() }

// At returns θ(x, y) with toroidal wrap-around of both indices.
func (l *Lattice) At(x, y int) float64 {
	return l.cells.Data()[wrap(x, l.n)*l.n+wrap(y, l.n)]
}

// Set assigns θ(x, y). Indices must be in range; NaN/Inf are rejected.
func (l *Lattice) Set(x, y int, theta float64) error {
	if err := l.cells.Set(x, y, theta); err != nil {
		return fmt.Errorf("lattice.Set: %w", err)
	}

	return nil
}

// Clone returns an independent copy.
func (l *Lattice) Clone() *Lattice {
	return &Lattice{n: l.n, cells: l.cells.Copy()}
}

// Equal reports whether both lattices hold bitwise identical angles.
func (l *Lattice) Equal(o *Lattice) bool {
	if o == nil || o.n != l.n {
		return false
	}
	a, b := l.cells.Data(), o.cells.Data()
	for k := range a {
		if math.Float64bits(a[k]) != math.Float64bits(b[k]) {
			return false
		}
	}

	return true
}

// Rotate adds a constant offset to every angle in place.
func (l *Lattice) Rotate(offset float64) {
	floats.AddConst(offset, l.cells.Data())
}

// wrap maps any integer index onto [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}

	return i
}
