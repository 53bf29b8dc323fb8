// SPDX-License-Identifier: MIT

// Package telemetry builds the logger and tracer provider a run reports through.
package telemetry

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// ErrLevel indicates an unparsable log level.
var ErrLevel = errors.New("telemetry: unknown log level")

// NewLogger returns a text logger writing to w at level; verbose forces debug.
// A nil w means stderr.
func NewLogger(level string, verbose bool, w io.Writer) (*logrus.Logger, error) {
	lvl := logrus.InfoLevel
	if level != "" {
		var err error
		if lvl, err = logrus.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("%q: %w", level, ErrLevel)
		}
	}
	if verbose && lvl < logrus.DebugLevel {
		lvl = logrus.DebugLevel
	}

	l := logrus.New()
	if w != nil {
		l.SetOutput(w)
	}
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return l, nil
}
