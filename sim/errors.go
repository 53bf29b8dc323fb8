// SPDX-License-Identifier: MIT
package sim

import "errors"

var (
	// ErrSteps indicates a non-positive step count.
	ErrSteps = errors.New("sim: steps must be > 0")

	// ErrSize indicates a lattice size below 2 or one that differs from the group's.
	ErrSize = errors.New("sim: invalid lattice size")

	// ErrTemperature indicates a non-positive or non-finite temperature.
	ErrTemperature = errors.New("sim: temperature must be finite and > 0")

	// ErrPlotFlag indicates a plot flag outside 0..2.
	ErrPlotFlag = errors.New("sim: plot flag must be 0, 1 or 2")

	// ErrNumerical indicates a non-finite energy or order parameter.
	ErrNumerical = errors.New("sim: non-finite observable")

	// ErrNilDependency indicates a nil group or backend.
	ErrNilDependency = errors.New("sim: nil group or backend")
)
