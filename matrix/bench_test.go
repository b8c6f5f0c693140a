// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/parmopt/matrix"
)

// benchSizes are the matrix sizes to benchmark; the optimizer works far below them.
var benchSizes = []int{4, 16, 64}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
)

func benchDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	_ = m.Apply(func(i, j int, _ float64) float64 {
		v := rng.Float64()*2 - 1
		if i == j {
			v += float64(n)
		}
		return v
	})

	return m
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 1337)
			B := benchDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatVecTo(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 7)
			x := make([]float64, n)
			y := make([]float64, n)
			for i := range x {
				x[i] = float64(i)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := matrix.MatVecTo(y, A, x); err != nil {
					b.Fatal(err)
				}
			}
			sinkV = y
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkFactorizeReuse shows the allocation-free refactorization path.
func BenchmarkFactorizeReuse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchDense(b, n, 5)
			inv, _ := matrix.NewDense(n, n)
			var f matrix.LUFactors
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := f.Factorize(A); err != nil {
					b.Fatal(err)
				}
				if err := f.InverseTo(inv); err != nil {
					b.Fatal(err)
				}
			}
			sinkM = inv
		})
	}
}
