// SPDX-License-Identifier: MIT

package lagrange

import (
	"fmt"

	"github.com/katalvlaran/parmopt/matrix"
	"go.uber.org/multierr"
)

// Problem supplies the four evaluations Optimize needs at a parameter vector a.
//
// Gradient, Residual and Jacobian write into caller-provided storage sized
// exactly n_parm, n_con and n_con×n_parm respectively; they must not retain it.
// Implementations are called synchronously from a single goroutine.
type Problem interface {
	Cost(a []float64) float64
	Gradient(a, g []float64)
	Residual(a, k []float64)
	Jacobian(a []float64, jac *matrix.Dense)
}

// Funcs adapts four plain functions to Problem.
type Funcs struct {
	CostFunc     func(a []float64) float64
	GradientFunc func(a, g []float64)
	ResidualFunc func(a, k []float64)
	JacobianFunc func(a []float64, jac *matrix.Dense)
}

var _ Problem = Funcs{}

func (f Funcs) Cost(a []float64) float64                { return f.CostFunc(a) }
func (f Funcs) Gradient(a, g []float64)                 { f.GradientFunc(a, g) }
func (f Funcs) Residual(a, k []float64)                 { f.ResidualFunc(a, k) }
func (f Funcs) Jacobian(a []float64, jac *matrix.Dense) { f.JacobianFunc(a, jac) }

// Validate reports every missing callback at once.
func (f Funcs) Validate() error {
	var err error
	if f.CostFunc == nil {
		err = multierr.Append(err, missing("CostFunc"))
	}
	if f.GradientFunc == nil {
		err = multierr.Append(err, missing("GradientFunc"))
	}
	if f.ResidualFunc == nil {
		err = multierr.Append(err, missing("ResidualFunc"))
	}
	if f.JacobianFunc == nil {
		err = multierr.Append(err, missing("JacobianFunc"))
	}

	return err
}

func missing(field string) error {
	return fmt.Errorf("%s: %s is nil: %w", opValidate, field, ErrNilProblem)
}

// validator is implemented by problems that can check themselves before a run.
type validator interface {
	Validate() error
}
