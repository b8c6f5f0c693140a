// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/parmopt/matrix"
)

// ExampleInverse inverts a matrix whose first pivot is zero.
func ExampleInverse() {
	a, _ := matrix.NewDenseFrom([][]float64{{0, 2}, {4, 0}})
	inv, err := matrix.Inverse(a)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(inv)

	// Output:
	// [0, 0.25]
	// [0.5, 0]
}

// ExampleInverse_singular shows sentinel matching on a rank-deficient input.
func ExampleInverse_singular() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Inverse(a)
	fmt.Println(errors.Is(err, matrix.ErrSingular))

	// Output:
	// true
}

// ExampleLUFactors_Solve solves A·x = b without forming the inverse.
func ExampleLUFactors_Solve() {
	a, _ := matrix.NewDenseFrom([][]float64{{2, 1}, {1, 3}})
	var f matrix.LUFactors
	if err := f.Factorize(a); err != nil {
		fmt.Println(err)
		return
	}
	x := make([]float64, 2)
	_ = f.Solve(x, []float64{3, 5})
	fmt.Printf("x = [%.1f %.1f], det = %.0f\n", x[0], x[1], f.Det())

	// Output:
	// x = [0.8 1.4], det = 5
}

// ExampleMatVec multiplies a matrix by a vector.
func ExampleMatVec() {
	a, _ := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	y, _ := matrix.MatVec(a, []float64{1, 1, 1})
	fmt.Println(y)

	// Output:
	// [6 15]
}
