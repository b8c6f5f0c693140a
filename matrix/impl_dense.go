// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Offer a no-copy row window (RowView) for callers that fill matrices row by row,
//     e.g. Jacobian callbacks.
//   - Enforce an optional numeric policy (rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); RowView: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxFill     = "Fill"     // method tag used in error wrappers
	ctxRowView  = "RowView"  // method tag used in error wrappers
	ctxCopyFrom = "CopyFrom" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy from options.go).
type Dense struct {
	r, c           int       // row and column counts (>0 for public constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: set numeric policy from options (defaults from options.go).
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom builds a Dense from a rectangular slice of rows (copied).
//
// Implementation:
//   - Stage 1: validate at least one non-empty row; all rows share one length.
//   - Stage 2: allocate via NewDense and copy row by row (policy applied per value).
//
// Errors:
//   - ErrInvalidDimensions (no rows / empty first row).
//   - ErrDimensionMismatch (ragged rows).
//   - ErrNaNInf (non-finite value under WithValidateNaNInf).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols, opts...)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("NewDenseFrom: row %d: %w", i, ErrDimensionMismatch)
		}
		for j = 0; j < cols; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// checkValue applies the numeric policy to v.
func (m *Dense) checkValue(v float64) error {
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return ErrNaNInf
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if err = m.checkValue(v); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// RowView returns row i as a slice sharing the matrix storage (no copy).
// Writes through the slice bypass the numeric policy.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) RowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// Fill sets every element to v.
// Errors: ErrNaNInf when v is non-finite and the policy is enabled.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) error {
	if err := m.checkValue(v); err != nil {
		return denseErrorf(ctxFill, 0, 0, err)
	}
	for i := range m.data {
		m.data[i] = v
	}

	return nil
}

// CopyFrom overwrites m with the contents of src (same shape required).
//
// Implementation:
//   - Stage 1: validate src non-nil and same shape.
//   - Stage 2: flat copy for *Dense, At-loop fallback otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; At errors from foreign implementations.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) CopyFrom(src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return denseErrorf(ctxCopyFrom, 0, 0, err)
	}
	if err := ValidateSameShape(m, src); err != nil {
		return denseErrorf(ctxCopyFrom, src.Rows(), src.Cols(), err)
	}
	if d, ok := src.(*Dense); ok {
		copy(m.data, d.data)

		return nil
	}
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return denseErrorf(ctxCopyFrom, i, j, err)
			}
			m.data[i*m.c+j] = v
		}
	}

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// String is a human-readable dump of rows for diagnostics.
// Not for hot paths; intended for logs and debugging.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Respects validateNaNInf (rejects NaN/±Inf when enabled).
//   - Early error aborts; elements written before the error remain updated.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if err := m.checkValue(nv); err != nil {
				return denseErrorf(ctxApply, i, j, err)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
