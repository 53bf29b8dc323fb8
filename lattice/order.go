// SPDX-License-Identifier: MIT
package lattice

import "math"

// OrderTensor returns the normalised 2×2 alignment tensor components
// (Qxx, Qxy, Qyy):
//
//	Qxx = Σ(3cos²θ − 1) / 2n²
//	Qxy = Σ 3sinθcosθ   / 2n²
//	Qyy = Σ(3sin²θ − 1) / 2n²
//
// Complexity: O(n²).
func (l *Lattice) OrderTensor() (qxx, qxy, qyy float64) {
	for _, theta := range l.cells.Data() {
		s, c := math.Sincos(theta)
		qxx += 3*c*c - 1
		qxy += 3 * c * s
		qyy += 3*s*s - 1
	}
	norm := 2.0 * float64(l.n) * float64(l.n)

	return qxx / norm, qxy / norm, qyy / norm
}

// OrderParameter returns the larger eigenvalue of the alignment tensor,
// solved analytically from λ² − tr·λ + det = 0.
//
// Since tr Q = 1/2 for any lattice, the result lies in [1/4, 1]: 1/4 for an
// isotropic configuration, 1 for perfect alignment.
//
// Complexity: O(n²).
func (l *Lattice) OrderParameter() float64 {
	qxx, qxy, qyy := l.OrderTensor()

	return largestEigenSym2(qxx, qxy, qyy)
}

// largestEigenSym2 returns the larger eigenvalue of [[a, b], [b, c]].
// The discriminant (a−c)² + 4b² equals tr² − 4·det but never goes negative.
func largestEigenSym2(a, b, c float64) float64 {
	d := a - c
	disc := d*d + 4*b*b

	return (a + c + math.Sqrt(disc)) / 2
}
