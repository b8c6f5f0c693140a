// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/parmopt/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Useful to assert fast-path == fallback bitwise.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFrom BUILDS a *Dense from a 2D literal or fails the test.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// RandomFill WRITES uniform values in [-1,1) using a seeded RNG.
// Determinism:
//   - Same seed ⇒ same matrix.
func RandomFill(t *testing.T, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Rows(), m.Cols()
	var (
		i, j int
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rng.Float64()*2-1); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// MustSet WRITES m[i,j]=v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact ASSERTS strict equality between matrix and 2D literal.
func CompareExact(t *testing.T, got matrix.Matrix, want [][]float64) {
	t.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("shape: got %dx%d, want %dx%d", got.Rows(), got.Cols(), len(want), len(want[0]))
	}
	var i, j int
	for i = range want {
		for j = range want[i] {
			if v := MustAt(t, got, i, j); v != want[i][j] {
				t.Fatalf("[%d,%d]: got %v, want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS |a[i,j]-b[i,j]| ≤ atol + rtol*|b[i,j]| element-wise.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		t.Fatalf("shape: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv = MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				t.Fatalf("[%d,%d]: %v vs %v (rtol=%g, atol=%g)", i, j, av, bv, rtol, atol)
			}
		}
	}
}

// sliceClose ASSERTS |a[i]-b[i]| ≤ atol + rtol*|b[i]| element-wise.
func sliceClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("len: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			t.Fatalf("[%d]: %v vs %v (rtol=%g, atol=%g)", i, a[i], b[i], rtol, atol)
		}
	}
}

// ExpectPanicMessage RUNS f and asserts it panics with exactly msg.
func ExpectPanicMessage(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q, got none", msg)
		}
		if s, ok := r.(string); !ok || s != msg {
			t.Fatalf("panic mismatch: got %v, want %q", r, msg)
		}
	}()
	f()
}
