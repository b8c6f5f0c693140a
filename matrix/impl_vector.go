// SPDX-License-Identifier: MIT
// Package matrix - dense vector kernels over []float64.
//
// Purpose:
//   - Element-wise add/subtract, scaling, inner product, copy and Euclidean norm.
//   - Allocating forms return a fresh slice; *To forms write into dst.
//
// Behavior highlights:
//   - Element-wise kernels allow dst to alias either operand (each index is
//     read before it is written).
//   - Lengths are validated centrally (ValidateSameLen / ValidateVecLen);
//     NaN/Inf propagate untouched.

package matrix

import "math"

// Operation tags for vector kernels.
const (
	opAddVec  = "AddVec"
	opSubVec  = "SubVec"
	opScaleV  = "ScaleVec"
	opDot     = "Dot"
	opCopyVec = "CopyVec"
)

// AddVec returns u + v.
// Errors: ErrNilMatrix (nil operand), ErrDimensionMismatch (length mismatch).
// Complexity: O(n).
func AddVec(u, v []float64) ([]float64, error) {
	if err := ValidateSameLen(u, v); err != nil {
		return nil, matrixErrorf(opAddVec, err)
	}
	w := make([]float64, len(u))
	_ = AddVecTo(w, u, v) // shapes validated above

	return w, nil
}

// AddVecTo computes dst = u + v.
// Complexity: O(n).
func AddVecTo(dst, u, v []float64) error {
	if err := ValidateSameLen(u, v); err != nil {
		return matrixErrorf(opAddVec, err)
	}
	if err := ValidateVecLen(dst, len(u)); err != nil {
		return matrixErrorf(opAddVec, err)
	}
	for i := range dst {
		dst[i] = u[i] + v[i]
	}

	return nil
}

// SubVec returns u − v.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n).
func SubVec(u, v []float64) ([]float64, error) {
	if err := ValidateSameLen(u, v); err != nil {
		return nil, matrixErrorf(opSubVec, err)
	}
	w := make([]float64, len(u))
	_ = SubVecTo(w, u, v)

	return w, nil
}

// SubVecTo computes dst = u − v.
// Complexity: O(n).
func SubVecTo(dst, u, v []float64) error {
	if err := ValidateSameLen(u, v); err != nil {
		return matrixErrorf(opSubVec, err)
	}
	if err := ValidateVecLen(dst, len(u)); err != nil {
		return matrixErrorf(opSubVec, err)
	}
	for i := range dst {
		dst[i] = u[i] - v[i]
	}

	return nil
}

// ScaleVec returns s·v.
// Errors: ErrNilMatrix for a nil v.
// Complexity: O(n).
func ScaleVec(v []float64, s float64) ([]float64, error) {
	if v == nil {
		return nil, matrixErrorf(opScaleV, ErrNilMatrix)
	}
	w := make([]float64, len(v))
	_ = ScaleVecTo(w, v, s)

	return w, nil
}

// ScaleVecTo computes dst = s·v.
// Complexity: O(n).
func ScaleVecTo(dst, v []float64, s float64) error {
	if v == nil {
		return matrixErrorf(opScaleV, ErrNilMatrix)
	}
	if err := ValidateVecLen(dst, len(v)); err != nil {
		return matrixErrorf(opScaleV, err)
	}
	for i := range dst {
		dst[i] = s * v[i]
	}

	return nil
}

// Dot returns the inner product Σ uᵢvᵢ accumulated in index order.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n).
func Dot(u, v []float64) (float64, error) {
	if err := ValidateSameLen(u, v); err != nil {
		return 0, matrixErrorf(opDot, err)
	}
	acc := ZeroSum
	for i := range u {
		acc += u[i] * v[i]
	}

	return acc, nil
}

// CopyVec copies src into dst; lengths must match exactly.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(n).
func CopyVec(dst, src []float64) error {
	if err := ValidateSameLen(dst, src); err != nil {
		return matrixErrorf(opCopyVec, err)
	}
	copy(dst, src)

	return nil
}

// Norm returns the Euclidean norm sqrt(Σ vᵢ²). A nil or empty v yields 0.
// Complexity: O(n).
func Norm(v []float64) float64 {
	acc := ZeroSum
	for _, x := range v {
		acc += x * x
	}

	return math.Sqrt(acc)
}
