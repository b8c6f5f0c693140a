// SPDX-License-Identifier: MIT

package arm

import "math"

// The demo configuration: a three-link arm folded at the elbow, asked to reach
// the point it would touch at (−π/2, π/2, π) while preferring that same posture.

// DemoLengths returns the demo link lengths.
func DemoLengths() []float64 { return []float64{1, 1, 0.4} }

// DemoInitial returns the demo starting angles.
func DemoInitial() []float64 { return []float64{-math.Pi / 4, math.Pi / 4, math.Pi / 4} }

// DemoTargetAngles returns the angles defining the demo target; they double as
// the preferred posture.
func DemoTargetAngles() []float64 { return []float64{-math.Pi / 2, math.Pi / 2, math.Pi} }

// Demo returns the demo arm and a fresh copy of its starting angles.
func Demo() (*Arm, []float64) {
	a, err := NewFromAngles(DemoLengths(), DemoTargetAngles(), DemoTargetAngles())
	if err != nil {
		panic(err) // constants above are valid
	}

	return a, DemoInitial()
}
