// SPDX-License-Identifier: MIT

// Package parmopt is a small constrained nonlinear parameter optimizer:
// minimize a differentiable cost subject to equality constraints using
// Lagrange multipliers and an adaptive step size.
//
// What is inside:
//
//	matrix/    - row-major Dense matrices, vector and matrix kernels,
//	             LU decomposition with partial pivoting, inverse, solve
//	lagrange/  - the optimizer: Problem callbacks, Funcs and Numeric
//	             adapters, functional options, Result diagnostics
//	arm/       - planar N-link arm inverse kinematics as a lagrange.Problem
//	cmd/armik  - command-line front end for the arm problem
//
// Quick start:
//
//	res, err := lagrange.Optimize(a, nCon, 1e-8, lagrange.Funcs{
//		CostFunc:     cost,
//		GradientFunc: grad,
//		ResidualFunc: residual,
//		JacobianFunc: jacobian,
//	})
//
// Everything is synchronous, deterministic and pure Go; the only runtime
// dependencies are zap (optional debug logging) and multierr.
package parmopt
