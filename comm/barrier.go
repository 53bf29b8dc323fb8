// SPDX-License-Identifier: MIT
package comm

import (
	"context"
	"sync"
)

// barrier is a reusable generation barrier for a fixed number of parties.
//
// Each generation owns a release channel. The last party to arrive swaps in a
// fresh channel and closes the old one, releasing every waiter of that
// generation. Waiters also return early when their context is done.
type barrier struct {
	mu      sync.Mutex
	parties int
	arrived int
	release chan struct{}
}

func newBarrier(parties int) *barrier {
	return &barrier{parties: parties, release: make(chan struct{})}
}

// Wait blocks until all parties of the current generation have arrived or ctx
// is done. Writes made before Wait are visible to every party after it returns nil.
func (b *barrier) Wait(ctx context.Context) error {
	b.mu.Lock()
	ch := b.release
	b.arrived++
	if b.arrived == b.parties {
		b.arrived = 0
		b.release = make(chan struct{})
		b.mu.Unlock()
		close(ch)

		return nil
	}
	b.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// reset discards any partial generation left behind by an aborted run.
func (b *barrier) reset() {
	b.mu.Lock()
	b.arrived = 0
	b.release = make(chan struct{})
	b.mu.Unlock()
}
