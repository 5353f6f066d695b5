// SPDX-License-Identifier: MIT

package rule_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/integrate/rule"
	"github.com/katalvlaran/integrate/seq"
)

// benchmarkCallable integrates sin over [0,π] with n subintervals.
func benchmarkCallable(b *testing.B, r rule.Callable[float64], n int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Integrate(math.Sin, 0, math.Pi, n); err != nil {
			b.Fatalf("Integrate failed: %v", err)
		}
	}
}

// benchmarkDiscrete integrates n lazily generated samples.
func benchmarkDiscrete(b *testing.B, r rule.Sampled[float64], n int) {
	x := seq.Linspace(0.0, math.Pi, n-1)
	y := seq.NewLazy(func(i int) float64 { return math.Sin(x.At(i)) }, x.Len)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Discrete(x, y); err != nil {
			b.Fatalf("Discrete failed: %v", err)
		}
	}
}

func BenchmarkRiemann_Callable1k(b *testing.B) {
	benchmarkCallable(b, rule.NewRiemann[float64](), 1000)
}

func BenchmarkTrapezoid_Callable1k(b *testing.B) {
	benchmarkCallable(b, rule.NewTrapezoid[float64](), 1000)
}

func BenchmarkSimpson_Callable1k(b *testing.B) {
	benchmarkCallable(b, rule.NewSimpson[float64](), 1000)
}

func BenchmarkTrapezoid_Discrete10k(b *testing.B) {
	benchmarkDiscrete(b, rule.NewTrapezoid[float64](), 10000)
}

// BenchmarkSimpson_Discrete10k includes the quadratic fit of every triple.
func BenchmarkSimpson_Discrete10k(b *testing.B) {
	benchmarkDiscrete(b, rule.NewSimpson[float64](), 10000)
}
