// SPDX-License-Identifier: MIT

// Package lagrange minimizes a differentiable scalar cost subject to equality
// constraints with a Lagrange-multiplier step and an adaptive step size.
//
// What:
//
//   - Problem: Cost, Gradient, Residual and Jacobian callbacks. Funcs adapts
//     plain functions; Numeric derives both derivatives by central differences.
//   - Optimize: the iteration. Each pass solves for the multipliers
//     mult = (J·Jᵀ)⁻¹·(K/eps − J·g), proposes a − eps·(g + multᵀ·J) and accepts
//     it when the augmented cost Cost + K·mult does not increase.
//   - Step adaptation: a rejected candidate is retried at eps/2, then at twice
//     the entry eps; a third rejection ends the run with
//     ErrStepAdjustmentExhausted.
//   - Result: status, augmented cost, constraint norm, multipliers, counters.
//
// Convergence:
//
// The run succeeds when an accepted step changes the augmented cost by at most
// tol. The criterion is on the cost, so the distance to the optimum is
// typically of order √tol. By default there is no iteration cap
// (DefaultMaxIterations); use WithMaxIterations to bound a run whose cost
// keeps improving by more than tol.
//
// Observability:
//
// WithLogger emits one zap Debug record per evaluated candidate and one at the
// end; WithObserver delivers the same data as Pass values.
//
// Concurrency:
//
// Optimize is synchronous and keeps all state in a per-call workspace, so
// concurrent calls are safe as long as the Problem values are.
package lagrange
