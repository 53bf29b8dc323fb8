// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major float64 storage used for the
// Lebwohl-Lasher lattice, the per-worker local deltas, and the heatmaps handed
// to plotting collaborators.
//
// The package provides:
//
//   - Dense: an r×c row-major buffer with bounds-checked At/Set and a no-copy
//     Data view for hot loops (offset = i*cols + j).
//   - Elementwise kernels: Sub (fresh result) and AddInPlace, CopyFrom
//     (no allocation) used by the merge phase of a Monte Carlo step.
//   - Validators: shape, nil and finite-value guards returning sentinel errors.
//
// Numeric policy:
//
//	Set and NewDenseFrom reject NaN and ±Inf. Kernels that write through Data
//	bypass the check; callers that do so validate with ValidateFinite at a
//	synchronization point instead.
//
// Complexity quicksheet:
//
//	NewDense O(r*c); At/Set O(1); Copy O(r*c); Sub/AddInPlace O(r*c).
package matrix
