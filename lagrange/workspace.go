// SPDX-License-Identifier: MIT

package lagrange

import "github.com/katalvlaran/parmopt/matrix"

// workspace holds every buffer one Optimize call needs, sized once from
// n_parm and n_con. It is never retained after Optimize returns.
type workspace struct {
	nParm, nCon int

	k    []float64 // residual, n_con
	g    []float64 // gradient, n_parm
	jg   []float64 // J·g, n_con
	rhs  []float64 // K/eps − J·g, n_con
	mult []float64 // multipliers, n_con
	step []float64 // g + multᵀ·J, n_parm
	cand []float64 // candidate parameters, n_parm

	jac  *matrix.Dense // n_con × n_parm
	jt   *matrix.Dense // n_parm × n_con
	m    *matrix.Dense // J·Jᵀ, n_con × n_con
	minv *matrix.Dense // (J·Jᵀ)⁻¹
	lu   matrix.LUFactors
}

func newWorkspace(nParm, nCon int) (*workspace, error) {
	ws := &workspace{
		nParm: nParm,
		nCon:  nCon,
		k:     make([]float64, nCon),
		g:     make([]float64, nParm),
		jg:    make([]float64, nCon),
		rhs:   make([]float64, nCon),
		mult:  make([]float64, nCon),
		step:  make([]float64, nParm),
		cand:  make([]float64, nParm),
	}
	var err error
	if ws.jac, err = matrix.NewDense(nCon, nParm); err != nil {
		return nil, err
	}
	if ws.jt, err = matrix.NewDense(nParm, nCon); err != nil {
		return nil, err
	}
	if ws.m, err = matrix.NewDense(nCon, nCon); err != nil {
		return nil, err
	}
	if ws.minv, err = matrix.NewDense(nCon, nCon); err != nil {
		return nil, err
	}

	return ws, nil
}

// multipliers computes mult = (J·Jᵀ)⁻¹·(K/eps − J·g) from ws.k, ws.g and ws.jac.
//
// Errors:
//   - ErrSingularMatrix (wrapped) when J·Jᵀ fails the pivot test.
func (ws *workspace) multipliers(eps float64, opts []matrix.Option) error {
	if err := matrix.TransposeTo(ws.jt, ws.jac); err != nil {
		return lagrangeErrorf(opMultiply, err)
	}
	if err := matrix.MulTo(ws.m, ws.jac, ws.jt); err != nil {
		return lagrangeErrorf(opMultiply, err)
	}
	if err := ws.lu.Factorize(ws.m, opts...); err != nil {
		return lagrangeErrorf(opMultiply, err)
	}
	if err := ws.lu.InverseTo(ws.minv); err != nil {
		return lagrangeErrorf(opMultiply, err)
	}
	if err := matrix.MatVecTo(ws.jg, ws.jac, ws.g); err != nil {
		return lagrangeErrorf(opMultiply, err)
	}
	if err := matrix.ScaleVecTo(ws.rhs, ws.k, 1/eps); err != nil {
		return lagrangeErrorf(opMultiply, err)
	}
	if err := matrix.SubVecTo(ws.rhs, ws.rhs, ws.jg); err != nil {
		return lagrangeErrorf(opMultiply, err)
	}
	if err := matrix.MatVecTo(ws.mult, ws.minv, ws.rhs); err != nil {
		return lagrangeErrorf(opMultiply, err)
	}

	return nil
}

// candidate writes cand = a − eps·(g + multᵀ·J).
func (ws *workspace) candidate(a []float64, eps float64) error {
	if err := matrix.VecMatTo(ws.step, ws.mult, ws.jac); err != nil {
		return lagrangeErrorf(opMultiply, err)
	}
	if err := matrix.AddVecTo(ws.step, ws.step, ws.g); err != nil {
		return lagrangeErrorf(opMultiply, err)
	}
	for i, s := range ws.step {
		ws.cand[i] = a[i] - eps*s
	}

	return nil
}

// augmented returns Cost(x) + Residual(x)·mult, leaving Residual(x) in ws.k.
func (ws *workspace) augmented(p Problem, x []float64) float64 {
	p.Residual(x, ws.k)
	dot, _ := matrix.Dot(ws.k, ws.mult)

	return p.Cost(x) + dot
}
