// SPDX-License-Identifier: MIT

// Command armik solves planar arm inverse kinematics with the
// Lagrange-multiplier optimizer and prints the outcome.
//
// Usage:
//
//	armik [--lengths 1,1,0.4] [--initial ...] [--preferred ...]
//	      [--target-angles ... | --target x,y] [--tol 1e-6] [--step 0.5]
//	      [--max-iter 0] [--verbose]
//
// Without flags it solves the bundled three-link demo. The exit status is
// non-zero when the optimizer does not converge.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/parmopt/arm"
	"github.com/katalvlaran/parmopt/lagrange"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errFlags marks command-line values rejected before the solver runs.
var errFlags = errors.New("armik: invalid flags")

type options struct {
	lengths      []float64
	initial      []float64
	preferred    []float64
	targetAngles []float64
	target       []float64
	tol          float64
	step         float64
	maxIter      int
	verbose      bool

	newLogger func(verbose bool) (*zap.Logger, error)
}

func defaultLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

func newRootCmd(newLogger func(verbose bool) (*zap.Logger, error)) *cobra.Command {
	o := &options{newLogger: newLogger}
	cmd := &cobra.Command{
		Use:           "armik",
		Short:         "Solve planar arm inverse kinematics by constrained optimization",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), o)
		},
	}

	f := cmd.Flags()
	f.Float64SliceVar(&o.lengths, "lengths", arm.DemoLengths(), "link lengths, base to tip")
	f.Float64SliceVar(&o.initial, "initial", arm.DemoInitial(), "starting joint angles (radians)")
	f.Float64SliceVar(&o.preferred, "preferred", arm.DemoTargetAngles(), "preferred joint angles (radians)")
	f.Float64SliceVar(&o.targetAngles, "target-angles", arm.DemoTargetAngles(), "joint angles whose end point is the target")
	f.Float64SliceVar(&o.target, "target", nil, "explicit target x,y (overrides --target-angles)")
	f.Float64Var(&o.tol, "tol", 1e-6, "convergence threshold on the augmented-cost change")
	f.Float64Var(&o.step, "step", lagrange.DefaultStepSize, "initial step size")
	f.IntVar(&o.maxIter, "max-iter", lagrange.DefaultMaxIterations, "cap on accepted steps (0 = none)")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log every optimizer pass")
	cmd.MarkFlagsMutuallyExclusive("target", "target-angles")

	return cmd
}

func (o *options) build() (*arm.Arm, error) {
	if o.maxIter < 0 {
		return nil, fmt.Errorf("%w: --max-iter must be >= 0", errFlags)
	}
	if len(o.initial) != len(o.lengths) {
		return nil, fmt.Errorf("%w: --initial has %d angles for %d links", errFlags, len(o.initial), len(o.lengths))
	}
	if o.target != nil {
		if len(o.target) != 2 {
			return nil, fmt.Errorf("%w: --target needs exactly x,y", errFlags)
		}

		return arm.New(o.lengths, o.preferred, arm.Point{X: o.target[0], Y: o.target[1]})
	}

	return arm.NewFromAngles(o.lengths, o.preferred, o.targetAngles)
}

func run(w io.Writer, o *options) error {
	a, err := o.build()
	if err != nil {
		return err
	}
	logger, err := o.newLogger(o.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	theta := append([]float64(nil), o.initial...)
	res, solveErr := a.Solve(theta, o.tol,
		lagrange.WithStepSize(o.step),
		lagrange.WithMaxIterations(o.maxIter),
		lagrange.WithLogger(logger.Named("lagrange")),
	)
	report(w, a, res)

	return solveErr
}

func report(w io.Writer, a *arm.Arm, res *lagrange.Result) {
	end := a.ForwardKinematics(res.X)
	target := a.Target()
	fmt.Fprintf(w, "status: %v\n", res.Status)
	fmt.Fprintf(w, "iterations: %d\n", res.Iterations)
	fmt.Fprintf(w, "evaluations: %d\n", res.Evaluations)
	fmt.Fprintf(w, "cost: %.6g\n", res.Cost)
	fmt.Fprintf(w, "constraint_norm: %.6g\n", res.ConstraintNorm)
	fmt.Fprintf(w, "angles: %.6f\n", res.X)
	fmt.Fprintf(w, "end_effector: (%.6f, %.6f)\n", end.X, end.Y)
	fmt.Fprintf(w, "target: (%.6f, %.6f)\n", target.X, target.Y)
}

func main() {
	cmd := newRootCmd(defaultLogger)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "armik:", err)
		os.Exit(1)
	}
}
