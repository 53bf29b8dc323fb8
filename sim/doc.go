// SPDX-License-Identifier: MIT

// Package sim drives a Monte Carlo run from initial lattice to result record.
//
// Every worker of the group executes the same loop (initialise, then one
// collective MonteCarloStep per iteration); only the root observes energy and
// order and fills the Record. Step 0 records the initial state with the
// conventional acceptance ratio 0.5.
//
// The root opens an "llmc.run" span around the whole run and one "llmc.step"
// span per iteration, carrying ratio, energy and order as attributes. With no
// tracer provider installed these spans are no-ops.
package sim
