// SPDX-License-Identifier: MIT
package comm

import (
	"context"
	"io"
	"sync"

	"github.com/katalvlaran/llmc/lattice"
	"github.com/katalvlaran/llmc/matrix"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Option configures a Group.
type Option func(*Group)

// WithLogger attaches the logger every Worker derives its entry from.
func WithLogger(l *logrus.Logger) Option {
	return func(g *Group) {
		if l != nil {
			g.log = l
		}
	}
}

// Group is a fixed-size set of workers cooperating on one n×n lattice.
// Its size never changes after NewGroup.
type Group struct {
	size  int
	n     int
	parts []lattice.Partition
	log   *logrus.Logger

	bar *barrier

	mu      sync.Mutex
	running bool

	// exchange slots, written before and read after a barrier phase
	ints   []int
	mats   []*matrix.Dense
	bcast  *matrix.Dense
	scalar float64
}

// NewGroup builds a group of size workers over an n×n lattice and precomputes
// every worker's row partition.
//
// Errors: ErrGroupSize; lattice.ErrSize when n < 2.
func NewGroup(size, n int, opts ...Option) (*Group, error) {
	if size < 1 {
		return nil, ErrGroupSize
	}
	if n < lattice.MinSize {
		return nil, lattice.ErrSize
	}
	parts, err := lattice.Partitions(n, size)
	if err != nil {
		return nil, err
	}

	silent := logrus.New()
	silent.SetOutput(io.Discard)

	g := &Group{
		size:  size,
		n:     n,
		parts: parts,
		log:   silent,
		bar:   newBarrier(size),
		ints:  make([]int, size),
		mats:  make([]*matrix.Dense, size),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Size returns the number of workers.
func (g *Group) Size() int { return g.size }

// N returns the lattice side length the partitions were computed for.
func (g *Group) N() int { return g.n }

// Partitions returns a copy of every worker's row range, in rank order.
func (g *Group) Partitions() []lattice.Partition {
	return append([]lattice.Partition(nil), g.parts...)
}

// Run executes fn once per worker, concurrently, and waits for all of them.
//
// Behaviour:
//   - Each invocation receives its own *Worker; workers share nothing else.
//   - The first error returned by any worker cancels the context passed to the
//     others, which unblocks any collective they are waiting in. Run returns
//     that first error.
//   - Run is not re-entrant; a concurrent call returns ErrBusy. Sequential
//     calls reuse the group.
func (g *Group) Run(ctx context.Context, fn func(ctx context.Context, w *Worker) error) error {
	if fn == nil {
		return ErrNilFunc
	}
	g.mu.Lock()
	if g.running {
		g.mu.Unlock()
		return ErrBusy
	}
	g.running = true
	g.mu.Unlock()
	defer func() {
		g.mu.Lock()
		g.running = false
		g.mu.Unlock()
	}()

	g.bar.reset()
	g.clearSlots()

	eg, egctx := errgroup.WithContext(ctx)
	for rank := 0; rank < g.size; rank++ {
		w := g.worker(rank)
		eg.Go(func() error {
			return fn(egctx, w)
		})
	}
	err := eg.Wait()
	g.clearSlots()

	return err
}

// worker builds the context value handed to rank.
func (g *Group) worker(rank int) *Worker {
	p := g.parts[rank]

	return &Worker{
		rank: rank,
		size: g.size,
		n:    g.n,
		part: p,
		g:    g,
		log: g.log.WithFields(logrus.Fields{
			"rank": rank,
			"size": g.size,
			"rows": p.String(),
		}),
	}
}

// clearSlots drops references so matrices from a finished run can be collected.
func (g *Group) clearSlots() {
	for i := range g.mats {
		g.mats[i] = nil
		g.ints[i] = 0
	}
	g.bcast = nil
	g.scalar = 0
}
