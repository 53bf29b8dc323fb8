// SPDX-License-Identifier: MIT

// Command llmc runs a Lebwohl-Lasher liquid-crystal Monte Carlo simulation on
// a group of cooperating workers.
//
// Usage:
//
//	llmc <ITERATIONS> <SIZE> <TEMPERATURE> <PLOTFLAG> [flags]
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
