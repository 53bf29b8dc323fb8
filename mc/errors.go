// SPDX-License-Identifier: MIT
package mc

import "errors"

var (
	// ErrTemperature indicates a non-positive or non-finite temperature.
	ErrTemperature = errors.New("mc: temperature must be finite and > 0")

	// ErrNumerical indicates a NaN or Inf appeared in an energy, a Boltzmann
	// factor, or the merged lattice.
	ErrNumerical = errors.New("mc: non-finite value during step")

	// ErrGroupSize indicates a backend was run on a group size it cannot serve.
	ErrGroupSize = errors.New("mc: unsupported group size for backend")

	// ErrBackend indicates an unknown backend name.
	ErrBackend = errors.New("mc: unknown backend")

	// ErrInit indicates an unknown lattice initialisation mode.
	ErrInit = errors.New("mc: unknown init mode")

	// ErrNilLattice indicates a step was requested on a nil lattice.
	ErrNilLattice = errors.New("mc: nil lattice")

	// ErrPartition indicates a partition outside the lattice rows.
	ErrPartition = errors.New("mc: partition out of lattice bounds")
)
