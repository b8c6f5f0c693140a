// SPDX-License-Identifier: MIT
package lagrange_test

import (
	"math"

	"github.com/katalvlaran/parmopt/lagrange"
	"github.com/katalvlaran/parmopt/matrix"
)

// Quadratic fixture: minimize 0.5·‖x − c‖² subject to A·x = b.
var (
	quadC = []float64{1, -2, 0.5}
	quadA = [][]float64{{1, 1, 1}, {1, -1, 2}}
	quadB = []float64{1, 0}
	// KKT point of the fixture, solved by hand.
	quadOpt = []float64{8.0 / 7.0, 2.0 / 7.0, -3.0 / 7.0}
)

func quadCost(x []float64) float64 {
	var s float64
	for i := range x {
		d := x[i] - quadC[i]
		s += d * d
	}

	return 0.5 * s
}

func quadResidual(x, k []float64) {
	for i, row := range quadA {
		k[i] = -quadB[i]
		for j, v := range row {
			k[i] += v * x[j]
		}
	}
}

func quadratic() lagrange.Funcs {
	return lagrange.Funcs{
		CostFunc: quadCost,
		GradientFunc: func(x, g []float64) {
			for i := range x {
				g[i] = x[i] - quadC[i]
			}
		},
		ResidualFunc: quadResidual,
		JacobianFunc: func(_ []float64, jac *matrix.Dense) {
			for i, row := range quadA {
				for j, v := range row {
					_ = jac.Set(i, j, v)
				}
			}
		},
	}
}

// yZero is the constraint a[1] = 0 on a two-parameter problem.
func yZero() (func(a, k []float64), func(a []float64, jac *matrix.Dense)) {
	return func(a, k []float64) { k[0] = a[1] },
		func(_ []float64, jac *matrix.Dense) {
			_ = jac.Set(0, 0, 0)
			_ = jac.Set(0, 1, 1)
		}
}

func dist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}

	return math.Sqrt(s)
}

func residualNorm(res func(a, k []float64), a []float64, nCon int) float64 {
	k := make([]float64, nCon)
	res(a, k)

	return matrix.Norm(k)
}
