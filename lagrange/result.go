// SPDX-License-Identifier: MIT

package lagrange

import "fmt"

// Status reports how Optimize terminated.
type Status int

const (
	// StatusRunning is the zero value; no finished Result carries it.
	StatusRunning Status = iota
	// StatusConverged: the augmented-cost delta fell within tol after an accepted step.
	StatusConverged
	// StatusSingular: J·Jᵀ was singular at the current point.
	StatusSingular
	// StatusExhausted: neither the halved nor the enlarged step decreased the cost.
	StatusExhausted
	// StatusMaxIterations: the WithMaxIterations cap was reached.
	StatusMaxIterations
	// StatusInvalidInput: Optimize rejected its arguments before evaluating anything.
	StatusInvalidInput
)

var statusStrings = map[Status]string{
	StatusRunning:       "Running",
	StatusConverged:     "Converged",
	StatusSingular:      "SingularMatrix",
	StatusExhausted:     "StepAdjustmentExhausted",
	StatusMaxIterations: "MaximumIterations",
	StatusInvalidInput:  "InvalidInput",
}

func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Phase is the step-size retry state within one outer iteration.
type Phase int

const (
	// PhaseInitial: first attempt at the entry step size.
	PhaseInitial Phase = iota
	// PhaseDecreasing: retrying at half the entry step size.
	PhaseDecreasing
	// PhaseIncreasing: retrying at twice the entry step size; a rejection here is final.
	PhaseIncreasing
)

func (p Phase) String() string {
	switch p {
	case PhaseInitial:
		return "initial"
	case PhaseDecreasing:
		return "decreasing"
	case PhaseIncreasing:
		return "increasing"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Pass describes one evaluated candidate.
type Pass struct {
	Evaluation int     // 1-based evaluation counter
	Iteration  int     // 1-based outer iteration the candidate belongs to
	StepSize   float64 // eps used to build the candidate
	Phase      Phase   // retry state the candidate was built in
	Cost       float64 // augmented cost of the candidate
	Reference  float64 // augmented cost it was compared against
	Accepted   bool    // Cost ≤ Reference
}

// Result is the outcome of Optimize. It is always non-nil.
type Result struct {
	OK     bool   // true exactly when Status == StatusConverged
	Status Status // termination reason

	// X is the caller's parameter slice, updated in place at accepted steps only.
	X []float64

	// Cost is the augmented cost of the last evaluated candidate (+Inf if none).
	Cost float64

	// ConstraintNorm is ‖K‖₂ of the last evaluated residual.
	ConstraintNorm float64

	Multipliers []float64 // last multiplier vector (nil if none was computed)
	StepSize    float64   // eps of the last candidate (or the initial eps)
	Iterations  int       // accepted steps
	Evaluations int       // passes through the evaluation step
}
