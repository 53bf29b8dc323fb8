// SPDX-License-Identifier: MIT

// Package seed derives per-worker PRNG seeds for Monte Carlo steps.
//
// Two sources are provided:
//   - Clock: wall-clock milliseconds plus worker rank, the default for
//     production runs where every step wants a fresh independent stream. The
//     clock is read once per step and shared by every rank.
//   - Fixed: a SplitMix64 mix of a base seed, worker rank and step counter,
//     so a run (or a single step) can be replayed bit for bit.
//
// Concurrency:
//   - Fixed is a stateless value; *Clock guards its per-step reading with a
//     mutex. Any number of workers may share either.
//   - math/rand.Rand is NOT goroutine-safe. Each worker builds its own via NewRand.
package seed

import (
	"math/rand"
	"sync"
	"time"
)

// Modulus bounds every derived seed to [0, 2^32-1), the valid range of the
// 32-bit seeding interface the workers use.
const Modulus uint64 = 1<<32 - 1

// Source yields the seed a worker uses for a given step.
type Source interface {
	Seed(rank int, step uint64) uint32
}

// Derive combines wall-clock milliseconds with the worker id. The id is added
// before the modulo so workers seeded in the same millisecond still differ.
//
// Complexity: O(1).
func Derive(ms int64, workerID int) uint32 {
	// Two's complement keeps negative inputs well-defined; the modulo brings
	// the sum back into range.
	return uint32((uint64(ms) + uint64(workerID)) % Modulus)
}

// Clock is the time-based Source.
//
// The first rank to ask for a given step reads the clock; every other rank
// asking for that same step reuses the reading. Seeds within one step are
// therefore ms+rank for a single ms and never collide, even when the ranks
// reach the call on different milliseconds. Across steps the seeds are only
// as fresh as the clock: two steps started within one millisecond can repeat
// a seed. Use Fixed for replayable runs.
//
// Workers of one group run steps in lockstep, so one pinned reading suffices.
// A Clock must not be copied after first use.
type Clock struct {
	// Now overrides time.Now in tests; nil means time.Now.
	Now func() time.Time

	mu     sync.Mutex
	step   uint64
	ms     int64
	pinned bool
}

// Seed implements Source.
func (c *Clock) Seed(rank int, step uint64) uint32 {
	c.mu.Lock()
	if !c.pinned || c.step != step {
		now := time.Now
		if c.Now != nil {
			now = c.Now
		}
		c.step, c.ms, c.pinned = step, now().UnixMilli(), true
	}
	ms := c.ms
	c.mu.Unlock()

	return Derive(ms, rank)
}

// Fixed is the deterministic Source: the same (base, rank, step) always yields
// the same seed.
type Fixed uint64

// Seed implements Source.
func (f Fixed) Seed(rank int, step uint64) uint32 {
	x := mix(uint64(f), uint64(rank))
	x = mix(x, step)

	return uint32(x % Modulus)
}

// mix folds a stream identifier into a parent seed with a SplitMix64-style
// finalizer (Vigna 2014 constants).
func mix(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// NewRand returns a deterministic *rand.Rand for the seed.
func NewRand(s uint32) *rand.Rand {
	return rand.New(rand.NewSource(int64(s)))
}

// FromConfig maps a configured seed to a Source: 0 selects Clock, anything
// else a Fixed stream rooted at that value.
func FromConfig(base uint64) Source {
	if base == 0 {
		return &Clock{}
	}

	return Fixed(base)
}
