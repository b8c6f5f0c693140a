// SPDX-License-Identifier: MIT

package lagrange

import (
	"errors"
	"math"

	"github.com/katalvlaran/parmopt/matrix"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Optimize minimizes p.Cost over a subject to p.Residual(a) = 0 (nCon equality
// constraints), updating a in place.
//
// Implementation (one outer iteration):
//   - Stage 1: evaluate K = Residual(a), J = Jacobian(a), g = Gradient(a).
//   - Stage 2: mult = (J·Jᵀ)⁻¹·(K/eps − J·g); a singular J·Jᵀ ends the run.
//   - Stage 3: on the very first pass, reference = Cost(a) + Residual(a)·mult.
//   - Stage 4: candidate = a − eps·(g + multᵀ·J) and its augmented cost
//     Cost(candidate) + Residual(candidate)·mult.
//   - Stage 5: accept when cost ≤ reference, otherwise retry with eps/2, then
//     with 2·eps_entry, then give up. Every comparison makes the candidate's
//     cost the next reference, accepted or not.
//   - Stage 6: after an accepted step, succeed when |cost − reference| ≤ tol.
//
// Behavior highlights:
//   - eps carries over between outer iterations.
//   - a changes only at accepted steps; on failure it holds the last accepted point.
//   - A NaN cost never compares ≤, so it ends in ErrStepAdjustmentExhausted.
//   - All working storage is allocated once per call.
//
// Inputs:
//   - a: initial parameters (len n_parm ≥ 1), overwritten in place.
//   - nCon: number of constraints, 1 ≤ nCon ≤ n_parm.
//   - tol: convergence threshold on the augmented-cost delta (finite, ≥ 0).
//   - p: the problem callbacks.
//
// Returns:
//   - *Result, never nil; Result.X aliases a.
//   - error, nil exactly when Result.OK.
//
// Errors:
//   - ErrNilProblem, ErrDimensionMismatch, ErrBadTolerance, ErrBadStepSize (input).
//   - ErrSingularMatrix, ErrStepAdjustmentExhausted, ErrMaxIterations (run).
//
// Complexity:
//   - Per pass O(n_con·n_parm·n_con + n_con³) plus four callback evaluations.
func Optimize(a []float64, nCon int, tol float64, p Problem, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	res := &Result{
		Status:   StatusInvalidInput,
		X:        a,
		Cost:     math.Inf(1),
		StepSize: o.stepSize,
	}
	if err := validateInput(a, nCon, tol, p, o); err != nil {
		o.logger.Debug("optimize rejected input", zap.Error(err))

		return res, lagrangeErrorf(opOptimize, err)
	}
	ws, err := newWorkspace(len(a), nCon)
	if err != nil {
		return res, lagrangeErrorf(opOptimize, err)
	}

	run := &optimizer{p: p, o: o, ws: ws, res: res, a: a, tol: tol}
	err = run.loop()
	run.finish(err)
	if err != nil {
		return res, lagrangeErrorf(opOptimize, err)
	}

	return res, nil
}

// validateInput checks every argument and reports all violations together.
func validateInput(a []float64, nCon int, tol float64, p Problem, o Options) error {
	var err error
	if p == nil {
		err = multierr.Append(err, ErrNilProblem)
	} else if v, ok := p.(validator); ok {
		err = multierr.Append(err, v.Validate())
	}
	if len(a) == 0 || nCon < 1 || nCon > len(a) {
		err = multierr.Append(err, ErrDimensionMismatch)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		err = multierr.Append(err, ErrBadTolerance)
	}
	if math.IsNaN(o.stepSize) || math.IsInf(o.stepSize, 0) || o.stepSize <= 0 {
		err = multierr.Append(err, ErrBadStepSize)
	}

	return err
}

// optimizer is the state of one Optimize call.
type optimizer struct {
	p   Problem
	o   Options
	ws  *workspace
	res *Result
	a   []float64
	tol float64
}

// loop runs outer iterations until a terminal condition and returns its
// sentinel (nil on convergence), recording diagnostics in r.res as it goes.
func (r *optimizer) loop() error {
	var (
		ws        = r.ws
		res       = r.res
		eps       = r.o.stepSize
		reference float64
		baseline  = true
	)
	for {
		if r.o.maxIterations > 0 && res.Iterations >= r.o.maxIterations {
			res.Status = StatusMaxIterations

			return ErrMaxIterations
		}
		entry, phase := eps, PhaseInitial
		for {
			res.Evaluations++
			r.p.Residual(r.a, ws.k)
			r.p.Jacobian(r.a, ws.jac)
			r.p.Gradient(r.a, ws.g)
			if err := ws.multipliers(eps, r.o.matrixOpts); err != nil {
				res.ConstraintNorm = matrix.Norm(ws.k)
				res.Status = StatusSingular
				if !errors.Is(err, ErrSingularMatrix) {
					res.Status = StatusInvalidInput
				}

				return err
			}
			if baseline {
				reference = ws.augmented(r.p, r.a)
				baseline = false
			}

			if err := ws.candidate(r.a, eps); err != nil {
				res.ConstraintNorm = matrix.Norm(ws.k)
				res.Status = StatusInvalidInput

				return err
			}
			cost := ws.augmented(r.p, ws.cand)
			pass := Pass{
				Evaluation: res.Evaluations,
				Iteration:  res.Iterations + 1,
				StepSize:   eps,
				Phase:      phase,
				Cost:       cost,
				Reference:  reference,
				Accepted:   cost <= reference,
			}
			r.observe(pass)
			reference = cost

			res.Cost = cost
			res.ConstraintNorm = matrix.Norm(ws.k)
			res.StepSize = eps
			res.Multipliers = append(res.Multipliers[:0], ws.mult...)

			if pass.Accepted {
				copy(r.a, ws.cand)
				res.Iterations++
				if math.Abs(cost-pass.Reference) <= r.tol {
					res.OK = true
					res.Status = StatusConverged

					return nil
				}

				break
			}

			switch phase {
			case PhaseInitial:
				eps /= 2
				phase = PhaseDecreasing
			case PhaseDecreasing:
				eps = 2 * entry
				phase = PhaseIncreasing
			default:
				res.Status = StatusExhausted

				return ErrStepAdjustmentExhausted
			}
		}
	}
}

func (r *optimizer) observe(p Pass) {
	if ce := r.o.logger.Check(zap.DebugLevel, "pass"); ce != nil {
		ce.Write(
			zap.Int("evaluation", p.Evaluation),
			zap.Int("iteration", p.Iteration),
			zap.Float64("step", p.StepSize),
			zap.Stringer("phase", p.Phase),
			zap.Float64("cost", p.Cost),
			zap.Float64("reference", p.Reference),
			zap.Bool("accepted", p.Accepted),
		)
	}
	if r.o.observer != nil {
		r.o.observer(p)
	}
}

func (r *optimizer) finish(err error) {
	res := r.res
	r.o.logger.Debug("optimize finished",
		zap.Stringer("status", res.Status),
		zap.Int("iterations", res.Iterations),
		zap.Int("evaluations", res.Evaluations),
		zap.Float64("cost", res.Cost),
		zap.Float64("constraint_norm", res.ConstraintNorm),
		zap.Float64("step", res.StepSize),
		zap.Error(err),
	)
}
