// SPDX-License-Identifier: MIT
package config

import "errors"

var (
	ErrSteps       = errors.New("config: steps must be > 0")
	ErrSize        = errors.New("config: size must be >= 2")
	ErrTemperature = errors.New("config: temperature must be finite and > 0")
	ErrPlotFlag    = errors.New("config: plot flag must be 0, 1 or 2")
	ErrWorkers     = errors.New("config: invalid worker count")
	ErrBackend     = errors.New("config: unknown backend")
	ErrInit        = errors.New("config: unknown init mode")
	ErrLogLevel    = errors.New("config: unknown log level")
	ErrProgress    = errors.New("config: progress interval must be >= 0")
)
