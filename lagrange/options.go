// SPDX-License-Identifier: MIT
// Package lagrange - unified functional options for Optimize.
//
// Purpose:
//   - Configure the step size, the optional iteration cap, logging, the
//     per-pass observer and the inverter's singularity threshold.
//   - Defaults are documented as constants; the zero Options is never used.
//
// Contracts:
//   - WithMaxIterations panics on negative input (programmer error).
//   - WithStepSize stores the value as given; Optimize rejects non-positive or
//     non-finite step sizes with ErrBadStepSize, since they usually come from
//     user input.

package lagrange

import (
	"github.com/katalvlaran/parmopt/matrix"
	"go.uber.org/zap"
)

const (
	// DefaultStepSize is the initial eps of the adaptive step.
	DefaultStepSize = 0.5

	// DefaultMaxIterations of 0 means no cap: Optimize runs until it converges
	// or fails. A cost sequence that never settles within tol and never
	// degrades will then loop forever; set WithMaxIterations to bound it.
	DefaultMaxIterations = 0
)

const panicMaxIterationsNegative = "lagrange: WithMaxIterations: n must be >= 0"

// Option mutates Options.
type Option func(*Options)

// Options is the resolved configuration of one Optimize call.
type Options struct {
	stepSize      float64         // DefaultStepSize
	maxIterations int             // DefaultMaxIterations (0 = unbounded)
	logger        *zap.Logger     // zap.NewNop() unless WithLogger
	observer      func(Pass)      // nil unless WithObserver
	matrixOpts    []matrix.Option // forwarded to the LU factorization
}

// WithStepSize sets the initial step size eps (> 0).
func WithStepSize(eps float64) Option {
	return func(o *Options) { o.stepSize = eps }
}

// WithMaxIterations caps the number of accepted steps; 0 removes the cap.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterationsNegative)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithLogger routes per-pass and outcome records to l at Debug level.
// A nil logger restores the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithObserver registers fn to receive one Pass per evaluated candidate.
func WithObserver(fn func(Pass)) Option {
	return func(o *Options) { o.observer = fn }
}

// WithSingularTolerance sets the relative pivot threshold used when inverting
// J·Jᵀ. It panics like matrix.WithSingularTolerance on invalid input.
func WithSingularTolerance(tol float64) Option {
	mo := matrix.WithSingularTolerance(tol)

	return func(o *Options) { o.matrixOpts = append(o.matrixOpts, mo) }
}

func defaultOptions() Options {
	return Options{
		stepSize:      DefaultStepSize,
		maxIterations: DefaultMaxIterations,
		logger:        zap.NewNop(),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
