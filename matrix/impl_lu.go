// SPDX-License-Identifier: MIT
// Package matrix - LU decomposition with partial pivoting, solve and inverse.
//
// Purpose:
//   - Factorize a square A as P·A = L·U (L unit lower, U upper) selecting, in
//     every elimination column, the row with the largest-magnitude entry.
//   - Reject numerically singular inputs with ErrSingular instead of dividing
//     by a vanishing pivot.
//   - Derive Solve, Inverse and Det from the packed factors.
//
// Numeric policy:
//   - A pivot p is accepted only when |p| > tol·max|aᵢⱼ| (relative threshold,
//     see WithSingularTolerance). An all-zero matrix is singular. Non-finite
//     input cannot satisfy the comparison and is reported as singular too.
//
// Storage:
//   - LUFactors keeps the packed factors in one n×n Dense and a pivot vector.
//     Factorize reuses that storage when the size does not change, so the zero
//     value can be embedded in long-lived workspaces without per-call allocation.

package matrix

import (
	"fmt"
	"math"
)

// LUFactors holds a partial-pivoting LU factorization of a square matrix.
// The zero value is ready for Factorize.
type LUFactors struct {
	n     int       // dimension of the factorized matrix
	lu    *Dense    // packed factors: strict lower = L (unit diag implied), upper = U
	pivot []int     // pivot[i] = original row placed at position i
	work  []float64 // scratch of length n for Solve/InverseTo
	sign  float64   // permutation parity: +1 even, -1 odd
	ok    bool      // true after a successful Factorize
}

// LU factorizes m with partial pivoting and returns the factors.
//
// Implementation:
//   - Stage 1: allocate a zero LUFactors.
//   - Stage 2: delegate to (*LUFactors).Factorize.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (*LUFactors, error) {
	f := new(LUFactors)
	if err := f.Factorize(m, opts...); err != nil {
		return nil, err
	}

	return f, nil
}

// Factorize computes P·m = L·U into f, reusing f's storage when possible.
// m itself is never mutated.
//
// Implementation:
//   - Stage 1: validate non-nil square input; (re)allocate packed storage for n.
//   - Stage 2: copy m, compute scale = max|aᵢⱼ| and threshold = tol·scale.
//   - Stage 3: for k = 0..n-1 pick p = argmax_{i≥k} |a[i,k]| (first max wins),
//     reject when |a[p,k]| ≤ threshold, swap rows p↔k, eliminate below k.
//
// Behavior highlights:
//   - Deterministic pivot choice (ties resolved towards the smaller row index).
//   - On error f is left unusable until the next successful Factorize.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (wrapped with opLU).
//
// Complexity:
//   - Time O(n³), Space O(n²) on first use, O(1) afterwards.
func (f *LUFactors) Factorize(m Matrix, opts ...Option) error {
	f.ok = false
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)
	n := m.Rows()
	if f.lu == nil || f.n != n {
		lu, err := NewDense(n, n)
		if err != nil {
			return matrixErrorf(opLU, err)
		}
		f.lu = lu
		f.pivot = make([]int, n)
		f.work = make([]float64, n)
		f.n = n
	}
	if err := f.lu.CopyFrom(m); err != nil {
		return matrixErrorf(opLU, err)
	}

	data := f.lu.data
	scale := ZeroSum
	for _, v := range data {
		if a := math.Abs(v); a > scale {
			scale = a
		}
	}
	threshold := o.singularTol * scale

	var (
		i, j, k, p    int
		best, a, l, pk float64
		rowK, rowI     int
	)
	for i = range f.pivot {
		f.pivot[i] = i
	}
	f.sign = 1
	for k = 0; k < n; k++ {
		// Partial pivoting: largest magnitude in column k at or below the diagonal.
		p = k
		best = math.Abs(data[k*n+k])
		for i = k + 1; i < n; i++ {
			if a = math.Abs(data[i*n+k]); a > best {
				best, p = a, i
			}
		}
		if !(best > threshold) {
			return matrixErrorf(opLU, fmt.Errorf("pivot %d: |%g| ≤ %g: %w", k, best, threshold, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				data[k*n+j], data[p*n+j] = data[p*n+j], data[k*n+j]
			}
			f.pivot[k], f.pivot[p] = f.pivot[p], f.pivot[k]
			f.sign = -f.sign
		}

		// Eliminate below the pivot; store multipliers in the strict lower part.
		rowK = k * n
		pk = data[rowK+k]
		for i = k + 1; i < n; i++ {
			rowI = i * n
			l = data[rowI+k] / pk
			data[rowI+k] = l
			if l == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				data[rowI+j] -= l * data[rowK+j]
			}
		}
	}
	f.ok = true

	return nil
}

// Size returns the dimension of the factorized matrix (0 before Factorize).
func (f *LUFactors) Size() int { return f.n }

// L returns the unit lower-triangular factor as a new Dense,
// or nil when f holds no valid factorization.
// Complexity: O(n²).
func (f *LUFactors) L() *Dense {
	if !f.ok {
		return nil
	}
	n := f.n
	out, _ := NewDense(n, n) // n > 0 after a successful Factorize
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			out.data[i*n+j] = f.lu.data[i*n+j]
		}
		out.data[i*n+i] = 1
	}

	return out
}

// U returns the upper-triangular factor as a new Dense,
// or nil when f holds no valid factorization.
// Complexity: O(n²).
func (f *LUFactors) U() *Dense {
	if !f.ok {
		return nil
	}
	n := f.n
	out, _ := NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			out.data[i*n+j] = f.lu.data[i*n+j]
		}
	}

	return out
}

// Pivot returns a copy of the row permutation: row i of L·U equals row
// Pivot()[i] of the original matrix. Nil when f holds no valid factorization.
func (f *LUFactors) Pivot() []int {
	if !f.ok {
		return nil
	}
	out := make([]int, f.n)
	copy(out, f.pivot)

	return out
}

// Det returns the determinant sign(P)·Π Uᵢᵢ, or NaN without a valid factorization.
// Complexity: O(n).
func (f *LUFactors) Det() float64 {
	if !f.ok {
		return math.NaN()
	}
	det := f.sign
	for i := 0; i < f.n; i++ {
		det *= f.lu.data[i*f.n+i]
	}

	return det
}

// Solve computes x with A·x = b into dst. dst may alias b.
//
// Implementation:
//   - Stage 1: permute b into dst (through scratch when aliased).
//   - Stage 2: forward substitution with unit L (top-down).
//   - Stage 3: backward substitution with U (bottom-up).
//
// Errors:
//   - ErrNilMatrix when f holds no valid factorization or a vector is nil.
//   - ErrDimensionMismatch when len(b) or len(dst) != n.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (f *LUFactors) Solve(dst, b []float64) error {
	if !f.ok {
		return matrixErrorf(opSolve, ErrNilMatrix)
	}
	if err := ValidateVecLen(b, f.n); err != nil {
		return matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(dst, f.n); err != nil {
		return matrixErrorf(opSolve, err)
	}
	src := b
	if &dst[0] == &b[0] {
		copy(f.work, b)
		src = f.work
	}
	for i, p := range f.pivot {
		dst[i] = src[p]
	}
	f.substitute(dst)

	return nil
}

// substitute overwrites y (already permuted) with U⁻¹·L⁻¹·y.
func (f *LUFactors) substitute(y []float64) {
	n, data := f.n, f.lu.data
	var i, k, base int
	var sum float64
	for i = 0; i < n; i++ {
		sum = y[i]
		base = i * n
		for k = 0; k < i; k++ {
			sum -= data[base+k] * y[k]
		}
		y[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		base = i * n
		for k = i + 1; k < n; k++ {
			sum -= data[base+k] * y[k]
		}
		y[i] = sum / data[base+i]
	}
}

// InverseTo writes A⁻¹ into dst (n×n) by solving A·x = e_col for every column.
//
// Errors:
//   - ErrNilMatrix (no factorization / nil dst), ErrDimensionMismatch (dst shape).
//
// Determinism:
//   - Fixed column order; identical factors produce bit-identical inverses.
//
// Complexity:
//   - Time O(n³), Space O(1).
func (f *LUFactors) InverseTo(dst *Dense) error {
	if !f.ok {
		return matrixErrorf(opInverse, ErrNilMatrix)
	}
	n := f.n
	if err := ValidateShape(dst, n, n); err != nil {
		return matrixErrorf(opInverse, err)
	}
	y := f.work
	var col, i int
	for col = 0; col < n; col++ {
		// P·e_col: position i holds 1 exactly when original row col moved there.
		for i = 0; i < n; i++ {
			if f.pivot[i] == col {
				y[i] = 1
			} else {
				y[i] = 0
			}
		}
		f.substitute(y)
		for i = 0; i < n; i++ {
			dst.data[i*n+col] = y[i]
		}
	}

	return nil
}

// Inverse computes A⁻¹ via LU decomposition with partial pivoting.
// The input is never mutated; a new Dense is returned.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := NewDense(f.n, f.n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = f.InverseTo(inv); err != nil {
		return nil, err
	}

	return inv, nil
}
