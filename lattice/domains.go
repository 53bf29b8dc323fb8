// SPDX-License-Identifier: MIT
package lattice

import "math"

// DefaultDomainTolerance is the director gap (radians) below which two
// neighbouring cells count as aligned.
const DefaultDomainTolerance = math.Pi / 12

// DirectorGap returns the angle between two directors in [0, π/2].
// Directors are head-tail symmetric, so θ and θ+π are the same director.
func DirectorGap(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), math.Pi)
	if d > math.Pi/2 {
		d = math.Pi - d
	}

	return d
}

// Domains labels the aligned domains of the lattice.
// MAIN DESCRIPTION:
//   - Two 4-neighbours (toroidal wrap) join the same domain when their
//     DirectorGap is <= tol; a domain is a connected set of such joins.
//   - labels[x*n+y] is the domain of cell (x, y), numbered 0..k-1 in order of
//     first appearance in a row-major scan; sizes[k] is the cell count.
//
// Implementation:
//   - Stage 1: row-major scan for an unlabelled seed cell.
//   - Stage 2: breadth-first flood from the seed over aligned neighbours.
//
// Errors:
//   - ErrTolerance when tol is not in (0, π/2].
//
// Complexity:
//   - Time O(n²), Space O(n²).
func (l *Lattice) Domains(tol float64) (labels, sizes []int, err error) {
	if !(tol > 0 && tol <= math.Pi/2) {
		return nil, nil, ErrTolerance
	}
	n := l.n
	a := l.cells.Data()
	labels = make([]int, n*n)
	for k := range labels {
		labels[k] = -1
	}

	queue := make([]int, 0, n)
	for start := range labels {
		if labels[start] >= 0 {
			continue
		}
		id := len(sizes)
		labels[start] = id
		queue = append(queue[:0], start)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			x, y := u/n, u%n
			nbrs := [4]int{
				wrap(x+1, n)*n + y,
				wrap(x-1, n)*n + y,
				x*n + wrap(y+1, n),
				x*n + wrap(y-1, n),
			}
			for _, v := range nbrs {
				if labels[v] < 0 && DirectorGap(a[u], a[v]) <= tol {
					labels[v] = id
					queue = append(queue, v)
				}
			}
		}
		sizes = append(sizes, len(queue))
	}

	return labels, sizes, nil
}
