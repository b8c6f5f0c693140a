// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernel used by the
// constrained optimizer: a row-major Dense matrix, matrix and vector
// arithmetic, and an LU-based inverse with partial pivoting.
//
// What:
//
//   - Dense: contiguous row-major storage with bounds-checked At/Set and
//     optional NaN/Inf rejection (WithValidateNaNInf).
//   - Kernels: Add, Sub, Mul, Transpose, Scale, MatVec, VecMat and their
//     allocation-free "To" variants writing into caller-owned buffers.
//   - Vectors: AddVec, SubVec, ScaleVec, Dot, Norm, CopyVec on []float64.
//   - Inversion: LU / LUFactors (P·A = L·U), Solve, InverseTo, Det, Inverse.
//
// Why:
//
//   - Small, deterministic problems (a handful of parameters, fewer
//     constraints) where predictable loop order matters more than BLAS speed.
//   - Reusable workspaces: LUFactors.Factorize and the "To" kernels let an
//     iterative solver run without per-iteration allocation.
//
// Errors:
//
// All failures are sentinel errors wrapped with an operation tag and can be
// matched with errors.Is: ErrInvalidDimensions, ErrOutOfRange,
// ErrDimensionMismatch, ErrNaNInf, ErrNilMatrix, ErrSingular.
//
// Singularity:
//
// A pivot is accepted only when |p| > tol·max|aᵢⱼ|, tol defaulting to
// DefaultSingularTolerance and adjustable with WithSingularTolerance.
//
// Complexity:
//
//   - Add/Sub/Scale: O(r·c); Mul: O(r·k·c); MatVec/VecMat: O(r·c).
//   - LU, Inverse: O(n³) time, O(n²) space.
//
// See example_test.go for runnable usage.
package matrix
