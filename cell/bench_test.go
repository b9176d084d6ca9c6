package cell_test

import (
	"testing"

	"github.com/arvikal/pbcell/cell"
)

// benchmarkImageAll maps n deterministic positions through c on every
// iteration.
func benchmarkImageAll(b *testing.B, c *cell.Cell, n int) {
	pos := make([][3]float64, n)
	for i := range pos {
		f := float64(i)
		pos[i] = [3]float64{f * 0.37, -f * 1.21, f * 2.93}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.ImageAll(pos)
	}
}

// BenchmarkImageAll_Orthorhombic1k exercises the per-axis fast path on
// 1000 positions.
func BenchmarkImageAll_Orthorhombic1k(b *testing.B) {
	c, err := cell.New(10, 12, 14, 90, 90, 90, cell.DefaultOptions())
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	benchmarkImageAll(b, c, 1000)
}

// BenchmarkImageAll_Triclinic1k exercises the fractional-coordinate
// path on 1000 positions.
func BenchmarkImageAll_Triclinic1k(b *testing.B) {
	c, err := cell.New(10, 12, 14, 80, 95, 105, cell.DefaultOptions())
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	benchmarkImageAll(b, c, 1000)
}

// BenchmarkNew measures full construction including matrix and inverse
// derivation.
func BenchmarkNew(b *testing.B) {
	opts := cell.DefaultOptions()
	for i := 0; i < b.N; i++ {
		if _, err := cell.New(5, 7, 9, 80, 95, 105, opts); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkBoundingEdges measures corner enumeration.
func BenchmarkBoundingEdges(b *testing.B) {
	c, err := cell.New(5, 7, 9, 80, 95, 105, cell.DefaultOptions())
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.BoundingEdges()
	}
}
