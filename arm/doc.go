// SPDX-License-Identifier: MIT

// Package arm poses inverse kinematics of a planar serial arm as a
// constrained optimization for package lagrange.
//
// An Arm has N rigid links joined by revolute joints, the first joint at the
// origin. Joint angle θᵢ is measured relative to the previous link, so link i
// points along the cumulative angle φᵢ = θ₀ + … + θᵢ and the end effector sits at
//
//	x = Σ lᵢ·cos φᵢ,  y = Σ lᵢ·sin φᵢ.
//
// The problem minimizes 0.5·‖θ − θ_pref‖² (stay close to a preferred posture)
// subject to the two constraints x = target.X and y = target.Y.
//
// An Arm is immutable after construction and may be shared between goroutines.
package arm
