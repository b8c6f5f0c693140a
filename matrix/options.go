// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - validateNaNInf applies to Dense.Set/Apply/Fill on matrices created with
//     the option. Kernels never validate their outputs: NaN/Inf propagate
//     silently to the caller, which decides how to react.
//   - singularTol is RELATIVE: a pivot p is rejected when |p| ≤ tol·max|aᵢⱼ|.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = false

	// DefaultSingularTolerance is the relative pivot threshold used by LU and
	// Inverse (about 4500·ε for float64).
	DefaultSingularTolerance = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSingularTolInvalid = "matrix: WithSingularTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque; public entry points accept `...Option` and
// internally resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	singularTol    float64 // DefaultSingularTolerance
}

// ---------- Constructors (WithX) ----------

// WithValidateNaNInf enables strict finite-value validation for newly
// created matrices: Set/Apply/Fill reject NaN and ±Inf with ErrNaNInf.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithSingularTolerance sets the relative pivot threshold used by LU/Inverse.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Behavior highlights:
//   - tol = 0 rejects only exactly-zero pivots.
//   - Larger tol rejects more ill-conditioned inputs.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithSingularTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSingularTolInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// defaultOptions returns Options initialized from the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		singularTol:    DefaultSingularTolerance,
	}
}

// gatherOptions applies setters in order over the defaults (last write wins).
// Nil setters are skipped so callers can build option lists conditionally.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
