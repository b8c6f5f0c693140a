// SPDX-License-Identifier: MIT

package lagrange

import (
	"math"

	"github.com/katalvlaran/parmopt/matrix"
	"go.uber.org/multierr"
)

// DefaultDiffStep is the relative central-difference step, ∛ε for float64.
var DefaultDiffStep = math.Cbrt(math.Nextafter(1, 2) - 1)

// Numeric is a Problem whose derivatives are estimated by central differences
// of CostFunc and ResidualFunc. The absolute step for coordinate i is
// h = Step·max(1, |aᵢ|); a zero Step selects DefaultDiffStep.
//
// Every Gradient/Jacobian call costs 2·n_parm evaluations and allocates its
// scratch vectors, so Numeric values stay safe to share between goroutines.
type Numeric struct {
	CostFunc     func(a []float64) float64
	ResidualFunc func(a, k []float64)
	Step         float64
}

var _ Problem = Numeric{}

func (n Numeric) Cost(a []float64) float64 { return n.CostFunc(a) }
func (n Numeric) Residual(a, k []float64)  { n.ResidualFunc(a, k) }

// Gradient writes ∂Cost/∂aᵢ into g.
func (n Numeric) Gradient(a, g []float64) {
	x := append([]float64(nil), a...)
	var fp, fm float64
	for i, ai := range a {
		h := n.step(ai)
		x[i] = ai + h
		fp = n.CostFunc(x)
		x[i] = ai - h
		fm = n.CostFunc(x)
		g[i] = (fp - fm) / ((ai + h) - (ai - h))
		x[i] = ai
	}
}

// Jacobian writes ∂Residualᵢ/∂aⱼ into jac (n_con × n_parm).
func (n Numeric) Jacobian(a []float64, jac *matrix.Dense) {
	rows := jac.Rows()
	x := append([]float64(nil), a...)
	kp := make([]float64, rows)
	km := make([]float64, rows)
	var i int
	for j, aj := range a {
		h := n.step(aj)
		x[j] = aj + h
		n.ResidualFunc(x, kp)
		x[j] = aj - h
		n.ResidualFunc(x, km)
		x[j] = aj
		span := (aj + h) - (aj - h)
		for i = 0; i < rows; i++ {
			_ = jac.Set(i, j, (kp[i]-km[i])/span) // indices bounded by jac's shape
		}
	}
}

// Validate reports every missing callback at once.
func (n Numeric) Validate() error {
	var err error
	if n.CostFunc == nil {
		err = multierr.Append(err, missing("CostFunc"))
	}
	if n.ResidualFunc == nil {
		err = multierr.Append(err, missing("ResidualFunc"))
	}

	return err
}

func (n Numeric) step(ai float64) float64 {
	s := n.Step
	if s <= 0 {
		s = DefaultDiffStep
	}

	return s * math.Max(1, math.Abs(ai))
}
