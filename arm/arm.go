// SPDX-License-Identifier: MIT

package arm

import (
	"math"

	"github.com/katalvlaran/parmopt/lagrange"
	"github.com/katalvlaran/parmopt/matrix"
)

// NumConstraints is the number of residuals: the x and y position errors.
const NumConstraints = 2

const (
	opNew    = "New"
	opAngles = "NewFromAngles"
	opSolve  = "Solve"
)

// Point is a position in the arm's plane.
type Point struct{ X, Y float64 }

// Arm is a planar serial arm together with its target and preferred posture.
type Arm struct {
	lengths   []float64
	preferred []float64
	target    Point
}

var _ lagrange.Problem = (*Arm)(nil)

// New builds an Arm from link lengths, the preferred joint angles and the
// end-effector target. The slices are copied.
//
// Errors:
//   - ErrTooFewLinks, ErrBadLength, ErrAngleCount.
func New(lengths, preferred []float64, target Point) (*Arm, error) {
	if len(lengths) < NumConstraints {
		return nil, armErrorf(opNew, ErrTooFewLinks)
	}
	for _, l := range lengths {
		if !(l > 0) || math.IsInf(l, 0) {
			return nil, armErrorf(opNew, ErrBadLength)
		}
	}
	if len(preferred) != len(lengths) {
		return nil, armErrorf(opNew, ErrAngleCount)
	}

	return &Arm{
		lengths:   append([]float64(nil), lengths...),
		preferred: append([]float64(nil), preferred...),
		target:    target,
	}, nil
}

// NewFromAngles builds an Arm whose target is the end effector reached at
// targetAngles.
func NewFromAngles(lengths, preferred, targetAngles []float64) (*Arm, error) {
	a, err := New(lengths, preferred, Point{})
	if err != nil {
		return nil, err
	}
	if len(targetAngles) != len(lengths) {
		return nil, armErrorf(opAngles, ErrAngleCount)
	}
	a.target = a.ForwardKinematics(targetAngles)

	return a, nil
}

// Links returns the number of links (= number of joint angles).
func (a *Arm) Links() int { return len(a.lengths) }

// Target returns the end-effector target.
func (a *Arm) Target() Point { return a.target }

// Lengths returns a copy of the link lengths.
func (a *Arm) Lengths() []float64 { return append([]float64(nil), a.lengths...) }

// Preferred returns a copy of the preferred joint angles.
func (a *Arm) Preferred() []float64 { return append([]float64(nil), a.preferred...) }

// Reach returns the largest distance the end effector can be from the base.
func (a *Arm) Reach() float64 {
	var s float64
	for _, l := range a.lengths {
		s += l
	}

	return s
}

// ForwardKinematics returns the end-effector position at joint angles theta.
// theta must have Links() entries.
func (a *Arm) ForwardKinematics(theta []float64) Point {
	var p Point
	var phi float64
	for i, l := range a.lengths {
		phi += theta[i]
		p.X += l * math.Cos(phi)
		p.Y += l * math.Sin(phi)
	}

	return p
}

// Joints returns the base followed by the end point of every link.
func (a *Arm) Joints(theta []float64) []Point {
	out := make([]Point, 1, len(a.lengths)+1)
	var p Point
	var phi float64
	for i, l := range a.lengths {
		phi += theta[i]
		p.X += l * math.Cos(phi)
		p.Y += l * math.Sin(phi)
		out = append(out, p)
	}

	return out
}

// Cost is 0.5·‖θ − θ_pref‖².
func (a *Arm) Cost(theta []float64) float64 {
	var s float64
	for i, p := range a.preferred {
		d := theta[i] - p
		s += d * d
	}

	return 0.5 * s
}

// Gradient writes θ − θ_pref into g.
func (a *Arm) Gradient(theta, g []float64) {
	for i, p := range a.preferred {
		g[i] = theta[i] - p
	}
}

// Residual writes the end-effector error (x − target.X, y − target.Y) into k.
func (a *Arm) Residual(theta, k []float64) {
	p := a.ForwardKinematics(theta)
	k[0] = p.X - a.target.X
	k[1] = p.Y - a.target.Y
}

// Jacobian writes ∂(x, y)/∂θ into jac (2 × Links()).
// Joint j moves every link from j outwards, so column j sums over i ≥ j:
//
//	∂x/∂θⱼ = −Σ lᵢ·sin φᵢ,  ∂y/∂θⱼ = Σ lᵢ·cos φᵢ.
func (a *Arm) Jacobian(theta []float64, jac *matrix.Dense) {
	n := len(a.lengths)
	sin := make([]float64, n)
	cos := make([]float64, n)
	var phi float64
	for i, l := range a.lengths {
		phi += theta[i]
		sin[i] = l * math.Sin(phi)
		cos[i] = l * math.Cos(phi)
	}
	var sx, sy float64
	for j := n - 1; j >= 0; j-- {
		sx += sin[j]
		sy += cos[j]
		_ = jac.Set(0, j, -sx) // shape fixed by the optimizer's workspace
		_ = jac.Set(1, j, sy)
	}
}

// Solve runs lagrange.Optimize from theta, updating theta in place.
//
// Errors:
//   - ErrAngleCount when len(theta) != Links(); otherwise those of lagrange.Optimize.
func (a *Arm) Solve(theta []float64, tol float64, opts ...lagrange.Option) (*lagrange.Result, error) {
	if len(theta) != len(a.lengths) {
		return &lagrange.Result{Status: lagrange.StatusInvalidInput, X: theta, Cost: math.Inf(1)},
			armErrorf(opSolve, ErrAngleCount)
	}
	res, err := lagrange.Optimize(theta, NumConstraints, tol, a, opts...)
	if err != nil {
		return res, armErrorf(opSolve, err)
	}

	return res, nil
}
