// SPDX-License-Identifier: MIT
package sim

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/llmc/lattice"
	"github.com/katalvlaran/llmc/matrix"
	"gopkg.in/yaml.v3"
)

// Row is one observation of the run. Step 0 is the initial state.
type Row struct {
	Step   int     `yaml:"step"`
	Ratio  float64 `yaml:"ratio"`
	Energy float64 `yaml:"energy"`
	Order  float64 `yaml:"order"`
}

// Record is the outcome of a run as seen by the root worker.
// Domains counts the aligned domains of the final lattice at
// lattice.DefaultDomainTolerance; LargestDomain is the biggest one's size.
type Record struct {
	Program       string        `yaml:"program"`
	Backend       string        `yaml:"backend"`
	Size          int           `yaml:"size"`
	Steps         int           `yaml:"steps"`
	Temperature   float64       `yaml:"temperature"`
	PlotFlag      int           `yaml:"plot_flag"`
	Workers       int           `yaml:"workers"`
	Runtime       time.Duration `yaml:"runtime"`
	FinalOrder    float64       `yaml:"final_order"`
	Domains       int           `yaml:"domains"`
	LargestDomain int           `yaml:"largest_domain"`
	Rows          []Row         `yaml:"rows"`

	// Final is the lattice after the last step.
	Final *lattice.Lattice `yaml:"-"`
	// Heatmap is the plot grid selected by PlotFlag; nil when plotting is off.
	Heatmap *matrix.Dense `yaml:"-"`
}

// Ratios returns the acceptance ratio trace, index = step.
func (r *Record) Ratios() []float64 { return r.column(func(x Row) float64 { return x.Ratio }) }

// Energies returns the total energy trace, index = step.
func (r *Record) Energies() []float64 { return r.column(func(x Row) float64 { return x.Energy }) }

// Orders returns the order parameter trace, index = step.
func (r *Record) Orders() []float64 { return r.column(func(x Row) float64 { return x.Order }) }

func (r *Record) column(f func(Row) float64) []float64 {
	out := make([]float64, len(r.Rows))
	for i, x := range r.Rows {
		out[i] = f(x)
	}

	return out
}

// Summary renders the one-line run report.
func (r *Record) Summary() string {
	return fmt.Sprintf("%s: Size: %d, Steps: %d, T*: %5.3f: Order: %5.3f, Time: %8.6f s, Processes: %d",
		r.Program, r.Size, r.Steps, r.Temperature, r.FinalOrder, r.Runtime.Seconds(), r.Workers)
}

// WriteYAML encodes the record's metadata and rows to w.
func (r *Record) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("Record.WriteYAML: %w", err)
	}

	return enc.Close()
}
