// SPDX-License-Identifier: MIT
package lagrange_test

import (
	"fmt"

	"github.com/katalvlaran/parmopt/lagrange"
	"github.com/katalvlaran/parmopt/matrix"
)

// ExampleOptimize finds the point of the plane x+y+z = 1 closest to (1, 2, 3).
func ExampleOptimize() {
	target := []float64{1, 2, 3}
	p := lagrange.Funcs{
		CostFunc: func(a []float64) float64 {
			var s float64
			for i := range a {
				s += (a[i] - target[i]) * (a[i] - target[i])
			}
			return s / 2
		},
		GradientFunc: func(a, g []float64) {
			for i := range a {
				g[i] = a[i] - target[i]
			}
		},
		ResidualFunc: func(a, k []float64) { k[0] = a[0] + a[1] + a[2] - 1 },
		JacobianFunc: func(_ []float64, jac *matrix.Dense) {
			_ = jac.Fill(1)
		},
	}

	a := []float64{0, 0, 0}
	res, err := lagrange.Optimize(a, 1, 1e-12, p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%v [%.4f %.4f %.4f]\n", res.Status, a[0], a[1], a[2])

	// Output:
	// Converged [-0.6667 0.3333 1.3333]
}

// ExampleOptimize_observer prints the step-size history of a run.
func ExampleOptimize_observer() {
	p := lagrange.Funcs{
		CostFunc:     func(a []float64) float64 { return 2.5 * a[0] * a[0] },
		GradientFunc: func(a, g []float64) { g[0], g[1] = 5*a[0], 0 },
		ResidualFunc: func(a, k []float64) { k[0] = a[1] },
		JacobianFunc: func(_ []float64, jac *matrix.Dense) { _ = jac.Set(0, 1, 1) },
	}
	_, _ = lagrange.Optimize([]float64{1, 0}, 1, 1e-3, p, lagrange.WithObserver(func(ps lagrange.Pass) {
		fmt.Printf("#%d eps=%g %s accepted=%t\n", ps.Evaluation, ps.StepSize, ps.Phase, ps.Accepted)
	}))

	// Output:
	// #1 eps=0.5 initial accepted=false
	// #2 eps=0.25 decreasing accepted=true
	// #3 eps=0.25 initial accepted=true
	// #4 eps=0.25 initial accepted=true
	// #5 eps=0.25 initial accepted=true
}
