// SPDX-License-Identifier: MIT
// Package lagrange - sentinel errors.
//
// Policy:
//   - All failures are reported via sentinels wrapped with an operation tag.
//   - Callers match with errors.Is; the shape errors are shared with package matrix.

package lagrange

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/parmopt/matrix"
)

var (
	// ErrDimensionMismatch indicates n_con outside [1, n_parm] or an empty parameter vector.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrSingularMatrix indicates J·Jᵀ could not be inverted: the constraints are
	// redundant or the current point is a singular configuration.
	ErrSingularMatrix = matrix.ErrSingular

	// ErrStepAdjustmentExhausted indicates both the halved and the enlarged step
	// sizes failed to decrease the augmented cost.
	ErrStepAdjustmentExhausted = errors.New("lagrange: step size adjustment exhausted")

	// ErrMaxIterations indicates the configured iteration cap was reached.
	ErrMaxIterations = errors.New("lagrange: maximum iterations reached")

	// ErrNilProblem indicates a nil Problem or a Problem with missing callbacks.
	ErrNilProblem = errors.New("lagrange: nil problem")

	// ErrBadTolerance indicates a negative or non-finite convergence tolerance.
	ErrBadTolerance = errors.New("lagrange: tolerance must be finite and non-negative")

	// ErrBadStepSize indicates a non-positive or non-finite initial step size.
	ErrBadStepSize = errors.New("lagrange: step size must be finite and positive")
)

const (
	opOptimize = "Optimize"
	opValidate = "Validate"
	opMultiply = "Multipliers"
)

// lagrangeErrorf wraps err with an operation tag, preserving the sentinel.
func lagrangeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
