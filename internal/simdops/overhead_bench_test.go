package simdops

import (
	"testing"

	"github.com/tphakala/simd/f64"
)

// BenchmarkDirectF64DotProduct measures direct SIMD call overhead at a
// typical adaptive tap length.
func BenchmarkDirectF64DotProduct(b *testing.B) {
	a := make([]float64, 32)
	c := make([]float64, 32)
	for i := range a {
		a[i] = float64(i) * 0.01
		c[i] = float64(i) * 0.02
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = f64.DotProductUnsafe(a, c)
	}
}

// BenchmarkIndirectF64DotProduct measures indirect call through Ops struct.
func BenchmarkIndirectF64DotProduct(b *testing.B) {
	ops := For[float64]()
	a := make([]float64, 32)
	c := make([]float64, 32)
	for i := range a {
		a[i] = float64(i) * 0.01
		c[i] = float64(i) * 0.02
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = ops.DotProductUnsafe(a, c)
	}
}

// BenchmarkAddScaled measures the weight-update kernel.
func BenchmarkAddScaled(b *testing.B) {
	w := make([]float64, 32)
	x := make([]float64, 32)
	for i := range x {
		x[i] = float64(i) * 0.01
	}

	ops := For[float64]()

	b.ReportAllocs()
	for b.Loop() {
		ops.AddScaled(w, 1e-6, x)
	}
}
