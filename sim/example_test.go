// SPDX-License-Identifier: MIT
package sim_test

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/llmc/comm"
	"github.com/katalvlaran/llmc/mc"
	"github.com/katalvlaran/llmc/seed"
	"github.com/katalvlaran/llmc/sim"
)

// ExampleRun drives a short run on four workers and inspects the trace shape.
func ExampleRun() {
	g, _ := comm.NewGroup(4, 12)
	b, _ := mc.NewBackend(mc.NameDistributed, mc.WithSeeds(seed.Fixed(1)))
	rec, err := sim.Run(context.Background(), g, b, sim.Params{
		Program:     "llmc",
		Steps:       10,
		Size:        12,
		Temperature: 0.5,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(rec.Rows), rec.Rows[0].Ratio, rec.Workers)
	// Output:
	// 11 0.5 4
}

func ExampleRecord_Summary() {
	rec := &sim.Record{Program: "llmc", Size: 64, Steps: 50, Temperature: 0.65,
		FinalOrder: 0.3, Runtime: 250 * time.Millisecond, Workers: 2}
	fmt.Println(rec.Summary())
	// Output:
	// llmc: Size: 64, Steps: 50, T*: 0.650: Order: 0.300, Time: 0.250000 s, Processes: 2
}
