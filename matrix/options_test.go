// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/parmopt/matrix"
	"github.com/stretchr/testify/require"
)

// 1) TestDefaultOptions_Documented verifies that an empty option list equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf)
	require.Equal(t, matrix.DefaultSingularTolerance, o.SingularTol)
}

// 2) TestOptions_LastWriterWins ensures each Option toggles exactly its intended field.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidateNaNInf)
	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf)
	require.Equal(t, matrix.DefaultSingularTolerance, o.SingularTol) // untouched

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithSingularTolerance(1e-3), matrix.WithSingularTolerance(0))
	require.Equal(t, 0.0, o.SingularTol)
}

// 3) TestOptions_NilSetterIgnored ensures nil options are skipped.
func TestOptions_NilSetterIgnored(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(nil, matrix.WithValidateNaNInf(), nil)
	require.True(t, o.ValidateNaNInf)
}

// 4) TestPanics_WithSingularTolerance_Message checks invalid tolerances panic eagerly.
func TestPanics_WithSingularTolerance_Message(t *testing.T) {
	ExpectPanicMessage(t, matrix.PanicSingularTolInvalid_TestOnly, func() { _ = matrix.WithSingularTolerance(math.NaN()) })
	ExpectPanicMessage(t, matrix.PanicSingularTolInvalid_TestOnly, func() { _ = matrix.WithSingularTolerance(-1) })
	ExpectPanicMessage(t, matrix.PanicSingularTolInvalid_TestOnly, func() { _ = matrix.WithSingularTolerance(math.Inf(1)) })
}
