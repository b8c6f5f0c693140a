// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructions (identity, zeros, shape-alikes).
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// Residual returns ‖A·B − I‖_max, the largest deviation of A·B from identity.
// It is the check an inverse is expected to pass: Residual(A, Inverse(A)) ≈ 0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (incompatible or non-square product).
//
// Complexity:
//   - Time O(n³) for the product, Space O(n²).
func Residual(a, b Matrix) (float64, error) {
	p, err := Mul(a, b)
	if err != nil {
		return 0, err
	}
	if err = ValidateSquare(p); err != nil {
		return 0, err
	}
	var (
		n        = p.Rows()
		worst, v float64
		i, j     int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = p.At(i, j)
			if i == j {
				v -= 1
			}
			if v < 0 {
				v = -v
			}
			if v > worst {
				worst = v
			}
		}
	}

	return worst, nil
}
