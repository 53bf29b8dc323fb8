// SPDX-License-Identifier: MIT
package lattice_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/llmc/lattice"
	"github.com/katalvlaran/llmc/seed"
)

// benchLattice builds an n×n random lattice outside the timed region.
func benchLattice(b *testing.B, n int) *lattice.Lattice {
	b.Helper()
	l, err := lattice.Random(n, seed.NewRand(1))
	if err != nil {
		b.Fatalf("Random failed: %v", err)
	}
	return l
}

func BenchmarkTotalEnergy_256(b *testing.B) {
	l := benchLattice(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.TotalEnergy()
	}
}

func BenchmarkTotalEnergyParallel_256(b *testing.B) {
	l := benchLattice(b, 256)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.TotalEnergyParallel(ctx); err != nil {
			b.Fatalf("TotalEnergyParallel failed: %v", err)
		}
	}
}

func BenchmarkOrderParameter_256(b *testing.B) {
	l := benchLattice(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.OrderParameter()
	}
}
