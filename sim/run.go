// SPDX-License-Identifier: MIT
package sim

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/llmc/comm"
	"github.com/katalvlaran/llmc/lattice"
	"github.com/katalvlaran/llmc/mc"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/katalvlaran/llmc/sim"

// InitialRatio is the acceptance ratio recorded for step 0.
const InitialRatio = 0.5

// DefaultProgressEvery is how often, in steps, the root logs progress.
const DefaultProgressEvery = 5

// Params are the run inputs.
type Params struct {
	Program       string
	Steps         int
	Size          int
	Temperature   float64
	PlotFlag      lattice.HeatmapMode
	ProgressEvery int // 0 disables progress lines
}

// Validate checks the parameters before any worker starts.
func (p Params) Validate() error {
	if p.Steps <= 0 {
		return ErrSteps
	}
	if p.Size < lattice.MinSize {
		return ErrSize
	}
	if !mc.ValidTemperature(p.Temperature) {
		return ErrTemperature
	}
	if !p.PlotFlag.Valid() {
		return ErrPlotFlag
	}

	return nil
}

// Option configures Run.
type Option func(*runner)

// WithTracer overrides the tracer; the default comes from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(r *runner) {
		if t != nil {
			r.tracer = t
		}
	}
}

// WithClock overrides the time source used for the runtime measurement.
func WithClock(now func() time.Time) Option {
	return func(r *runner) {
		if now != nil {
			r.now = now
		}
	}
}

type runner struct {
	p      Params
	g      *comm.Group
	b      mc.Backend
	tracer trace.Tracer
	now    func() time.Time
	rec    *Record
}

// Run executes p.Steps Monte Carlo steps on g with backend b.
// MAIN DESCRIPTION:
//   - Validates p and that g was built for p.Size.
//   - Every worker initialises through b and steps in lockstep; the root
//     records step 0 and every subsequent step.
//   - Runtime covers the step loop only, measured on the root.
//
// Errors:
//   - ErrSteps, ErrSize, ErrTemperature, ErrPlotFlag, ErrNilDependency.
//   - ErrNumerical when the root observes a non-finite energy or order.
//   - The first error of any worker; every other worker is released.
func Run(ctx context.Context, g *comm.Group, b mc.Backend, p Params, opts ...Option) (*Record, error) {
	if g == nil || b == nil {
		return nil, ErrNilDependency
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if g.N() != p.Size {
		return nil, fmt.Errorf("group built for n=%d, run wants n=%d: %w", g.N(), p.Size, ErrSize)
	}

	r := &runner{
		p:      p,
		g:      g,
		b:      b,
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
		rec: &Record{
			Program:     p.Program,
			Backend:     b.Name(),
			Size:        p.Size,
			Steps:       p.Steps,
			Temperature: p.Temperature,
			PlotFlag:    int(p.PlotFlag),
			Workers:     g.Size(),
			Rows:        make([]Row, 0, p.Steps+1),
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	ctx, span := r.tracer.Start(ctx, "llmc.run", trace.WithAttributes(
		attribute.String("llmc.backend", b.Name()),
		attribute.Int("llmc.size", p.Size),
		attribute.Int("llmc.steps", p.Steps),
		attribute.Float64("llmc.temperature", p.Temperature),
		attribute.Int("llmc.workers", g.Size()),
	))
	defer span.End()

	if err := g.Run(ctx, r.work); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Float64("llmc.final_order", r.rec.FinalOrder),
		attribute.Float64("llmc.runtime_s", r.rec.Runtime.Seconds()),
	)

	return r.rec, nil
}

// work is the loop every worker runs.
func (r *runner) work(ctx context.Context, w *comm.Worker) error {
	l, err := r.b.Init(ctx, w, r.p.Size)
	if err != nil {
		return err
	}
	root := w.IsRoot()
	if root {
		if err = r.observe(ctx, l, 0, InitialRatio); err != nil {
			return err
		}
	}

	var start time.Time
	if root {
		start = r.now()
	}
	for it := 1; it <= r.p.Steps; it++ {
		if err = r.step(ctx, w, l, it); err != nil {
			return err
		}
	}
	if !root {
		return nil
	}

	r.rec.Runtime = r.now().Sub(start)
	r.rec.Final = l
	r.rec.FinalOrder = r.rec.Rows[len(r.rec.Rows)-1].Order
	if r.rec.Heatmap, err = l.Heatmap(r.p.PlotFlag); err != nil {
		return err
	}
	_, sizes, err := l.Domains(lattice.DefaultDomainTolerance)
	if err != nil {
		return err
	}
	r.rec.Domains = len(sizes)
	for _, sz := range sizes {
		r.rec.LargestDomain = max(r.rec.LargestDomain, sz)
	}
	w.Log().WithFields(logrus.Fields{
		"runtime": r.rec.Runtime,
		"order":   r.rec.FinalOrder,
		"domains": r.rec.Domains,
	}).Debug("run complete")

	return nil
}

// step runs iteration it; the root also records and traces it.
func (r *runner) step(ctx context.Context, w *comm.Worker, l *lattice.Lattice, it int) error {
	if !w.IsRoot() {
		_, err := r.b.MonteCarloStep(ctx, w, l, r.p.Temperature)
		return err
	}

	sctx, span := r.tracer.Start(ctx, "llmc.step", trace.WithAttributes(attribute.Int("llmc.step", it)))
	defer span.End()

	ratio, err := r.b.MonteCarloStep(sctx, w, l, r.p.Temperature)
	if err == nil {
		err = r.observe(sctx, l, it, ratio)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if r.p.ProgressEvery > 0 && it%r.p.ProgressEvery == 0 {
		w.Log().Infof("completed %d/%d steps", it, r.p.Steps)
	}

	return nil
}

// observe records energy and order of l for step it.
func (r *runner) observe(ctx context.Context, l *lattice.Lattice, it int, ratio float64) error {
	row := Row{
		Step:   it,
		Ratio:  ratio,
		Energy: r.b.TotalEnergy(l),
		Order:  r.b.OrderParameter(l),
	}
	if !finite(row.Energy) || !finite(row.Order) {
		return fmt.Errorf("step %d: energy=%v order=%v: %w", it, row.Energy, row.Order, ErrNumerical)
	}
	r.rec.Rows = append(r.rec.Rows, row)

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Float64("llmc.ratio", row.Ratio),
		attribute.Float64("llmc.energy", row.Energy),
		attribute.Float64("llmc.order", row.Order),
	)

	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
