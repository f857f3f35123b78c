// Package engine implements the adaptive filtering core: LMS, Leaky-LMS and
// Sign-LMS stages, the alternating multi-stage cascade, and the single-stage
// runner that drives one stage over a whole signal.
//
// All types are generic over simdops.Float. Float64 is the canonical
// precision; float32 trades accuracy for SIMD throughput.
//
// A stage owns its weight vector exclusively. Stages, runners and cascades
// are not safe for concurrent use; independent runs must each use their own
// instance.
package engine

import (
	"fmt"
	"math"

	"github.com/tphakala/go-adaptive-filter/internal/simdops"
)

// Stage is one adaptive sub-filter with its own weight vector.
type Stage[F simdops.Float] interface {
	// Update predicts the desired sample from the tap vector, returns the
	// prediction and the residual error, and adapts the weights in place.
	// The tap vector must have the stage's tap length.
	Update(tap []F, desired F) (prediction, residual F, err error)

	// Weights returns a copy of the current weight vector.
	Weights() []F

	// TapLength returns the weight vector length M.
	TapLength() int

	// Reset zeroes the weight vector.
	Reset()
}

// Gradient selects the scale of the LMS correction term.
//
// The single-stage filter and the cascade disagree on this, so both are kept:
// GradientDoubled applies w += 2*mu*e*x and GradientUnit applies w += mu*e*x.
type Gradient int

const (
	// GradientDoubled uses the steepest-descent form w += 2*mu*e*x.
	GradientDoubled Gradient = iota

	// GradientUnit absorbs the factor of two into mu: w += mu*e*x.
	GradientUnit
)

// String returns the gradient convention name.
func (g Gradient) String() string {
	switch g {
	case GradientDoubled:
		return "2mu"
	case GradientUnit:
		return "mu"
	default:
		return fmt.Sprintf("Gradient(%d)", int(g))
	}
}

func (g Gradient) factor() (float64, error) {
	switch g {
	case GradientDoubled:
		return doubledGradientFactor, nil
	case GradientUnit:
		return unitGradientFactor, nil
	default:
		return 0, &ConfigError{Param: "gradient", Value: int(g), Reason: "unknown gradient convention"}
	}
}

func validateTapLength(m int) error {
	if m < minTapLength {
		return &ConfigError{Param: "tap_length", Value: m, Reason: "must be >= 1"}
	}
	return nil
}

func validateStepSize(mu float64) error {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return &ConfigError{Param: "step_size", Value: mu, Reason: "must be finite"}
	}
	if mu <= 0 {
		return &ConfigError{Param: "step_size", Value: mu, Reason: "must be > 0"}
	}
	return nil
}

// validateSignals checks the run-time preconditions shared by the runner and
// the cascade: equal lengths and a tap length that fits the signal.
func validateSignals(referenceLen, desiredLen, tapLength int) error {
	if referenceLen != desiredLen {
		return &DimensionError{What: "desired signal", Expected: referenceLen, Actual: desiredLen}
	}
	if tapLength > referenceLen {
		return &ConfigError{
			Param:  "tap_length",
			Value:  tapLength,
			Reason: fmt.Sprintf("exceeds signal length %d", referenceLen),
		}
	}
	return nil
}

func checkTap(tapLen, weightLen int) error {
	if tapLen != weightLen {
		return &DimensionError{What: "tap vector", Expected: weightLen, Actual: tapLen}
	}
	return nil
}
