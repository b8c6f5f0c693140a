// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose the internal Options view and panic messages to matrix_test ONLY.
//   - Compiled solely by `go test` (file suffix), invisible in production builds.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

// Panic message exports to avoid "magic strings" in tests.
const PanicSingularTolInvalid_TestOnly = panicSingularTolInvalid

// OptionsSnapshot is a read-only copy of the resolved Options.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	SingularTol    float64
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{ValidateNaNInf: o.validateNaNInf, SingularTol: o.singularTol}
}
