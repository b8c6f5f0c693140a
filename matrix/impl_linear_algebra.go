// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling and matrix-vector products. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the package.
//   - Provide, for every kernel used in iterative solvers, a *To variant that
//     writes into caller-owned storage so hot loops allocate nothing.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel has a *Dense fast path (flat slices) and an At/Set fallback.
//   - Kernels never validate numeric values: NaN/Inf propagate to the result.

package matrix

import "fmt"

// ZeroSum is the initial sum value for accumulations and substitutions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opVecMat    = "VecMat"
	opInverse   = "Inverse"
	opLU        = "LU"
	opSolve     = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opAdd/opSub).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast-path: both *Dense - one flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := range res.data {
				res.data[i] = da.data[i] + sign*db.data[i]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop (i→j).
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add returns a + b (element-wise). Shapes must match.
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b (element-wise). Shapes must match.
// Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B into a new Dense.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = MulTo(res, a, b); err != nil {
		return nil, err
	}

	return res, nil
}

// MulTo computes dst = A × B into caller-owned storage.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil), inner dimensions, dst shape (A.Rows × B.Cols).
//   - Stage 2: If dst aliases an operand, compute into a temporary and copy back.
//   - Stage 3: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k through At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (operands or dst shape).
//
// Determinism:
//   - Fixed loop orders (i→k→j fast path, i→j→k fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(1) (O(r*c) only when dst aliases an operand).
func MulTo(dst *Dense, a, b Matrix) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMul, err)
	}
	if err := ValidateShape(dst, a.Rows(), b.Cols()); err != nil {
		return matrixErrorf(opMul, err)
	}
	if aliases(dst, a) || aliases(dst, b) {
		tmp, err := Mul(a.Clone(), b.Clone())
		if err != nil {
			return err
		}
		copy(dst.data, tmp.(*Dense).data)

		return nil
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	var (
		i, j, k         int
		av, bv, current float64
		err             error
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = range dst.data {
				dst.data[i] = ZeroSum
			}
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					// no zero skip: 0·Inf and 0·NaN must reach dst
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						dst.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			dst.data[i*bCols+j] = current
		}
	}

	return nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(m.Cols(), m.Rows())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err = TransposeTo(res, m); err != nil {
		return nil, err
	}

	return res, nil
}

// TransposeTo writes mᵀ into dst (shape Cols×Rows of m).
//
// Implementation:
//   - Stage 1: validate m non-nil and dst shape.
//   - Stage 2: in-place transpose when dst == m (square only, swap upper/lower).
//   - Stage 3: flat mapping data[i*cols+j] → dst[j*rows+i] for *Dense, At fallback otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func TransposeTo(dst *Dense, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateShape(dst, cols, rows); err != nil {
		return matrixErrorf(opTranspose, err)
	}

	var i, j int
	if aliases(dst, m) {
		// Square by the shape check above; swap across the diagonal.
		for i = 0; i < rows; i++ {
			for j = i + 1; j < cols; j++ {
				dst.data[i*cols+j], dst.data[j*rows+i] = dst.data[j*rows+i], dst.data[i*cols+j]
			}
		}

		return nil
	}

	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				dst.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opTranspose, err)
			}
			dst.data[j*rows+i] = v
		}
	}

	return nil
}

// Scale returns alpha*m as a new Dense; m is not mutated.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if dm, ok := m.(*Dense); ok {
		for i, v := range dm.data {
			res.data[i] = alpha * v
		}

		return res, nil
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = alpha * v
		}
	}

	return res, nil
}

// MatVec computes y = m · x for a column vector x into a new slice.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows())
	if err := MatVecTo(y, m, x); err != nil {
		return nil, err
	}

	return y, nil
}

// MatVecTo computes dst = m · x.
//
// Contract: len(x) == m.Cols(), len(dst) == m.Rows(); dst must not share
// storage with x.
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(1).
func MatVecTo(dst []float64, m Matrix, x []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(dst, m.Rows()); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()

	var i, j, base int
	var acc float64
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			dst[i] = acc
		}

		return nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return matrixErrorf(opMatVec, err)
			}
			acc += mv * x[j]
		}
		dst[i] = acc
	}

	return nil
}

// VecMat computes the row-vector product w = xᵀ · m into a new slice.
//
// Contract: len(x) == m.Rows(); len(w) == m.Cols().
// Complexity: Time O(r*c), Space O(c).
func VecMat(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMat, err)
	}
	w := make([]float64, m.Cols())
	if err := VecMatTo(w, x, m); err != nil {
		return nil, err
	}

	return w, nil
}

// VecMatTo computes dst = xᵀ · m, i.e. dst[j] = Σᵢ x[i]·m[i,j].
//
// Implementation:
//   - Stage 1: validate m, len(x) == Rows, len(dst) == Cols.
//   - Stage 2: zero dst, then accumulate row i scaled by x[i] (row-major friendly).
//
// Contract: dst must not share storage with x.
// Complexity: Time O(r*c), Space O(1).
func VecMatTo(dst, x []float64, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return matrixErrorf(opVecMat, err)
	}
	if err := ValidateVecLen(dst, m.Cols()); err != nil {
		return matrixErrorf(opVecMat, err)
	}
	rows, cols := m.Rows(), m.Cols()
	for j := range dst {
		dst[j] = ZeroSum
	}

	var i, j, base int
	var xv float64
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			xv = x[i]
			base = i * cols
			for j = 0; j < cols; j++ {
				dst[j] += xv * d.data[base+j]
			}
		}

		return nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		xv = x[i]
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return matrixErrorf(opVecMat, err)
			}
			dst[j] += xv * mv
		}
	}

	return nil
}

// aliases reports whether m is the very same *Dense as dst.
func aliases(dst *Dense, m Matrix) bool {
	d, ok := m.(*Dense)

	return ok && d == dst
}
