package engine

import (
	"math"

	"github.com/tphakala/go-adaptive-filter/internal/simdops"
)

// LeakyLMS is an LMS stage whose weights decay toward zero on every update:
//
//	w = (1 - mu*lambda)*w + 2*mu*e*x
//
// The decay keeps the weights bounded when the input autocorrelation is
// ill-conditioned, at the cost of a small bias. With lambda = 0 it produces
// exactly the same results as LMS with GradientDoubled.
type LeakyLMS[F simdops.Float] struct {
	LMS[F]
	leakage F
	decay   F
}

// NewLeakyLMS creates a Leaky-LMS stage. The leakage must be non-negative and
// mu*lambda must be below 1 so the decay factor stays in (0, 1].
func NewLeakyLMS[F simdops.Float](tapLength int, stepSize, leakage float64) (*LeakyLMS[F], error) {
	lms, err := NewLMS[F](tapLength, stepSize, GradientDoubled)
	if err != nil {
		return nil, err
	}

	if math.IsNaN(leakage) || math.IsInf(leakage, 0) {
		return nil, &ConfigError{Param: "leakage", Value: leakage, Reason: "must be finite"}
	}
	if leakage < 0 {
		return nil, &ConfigError{Param: "leakage", Value: leakage, Reason: "must be >= 0"}
	}
	if product := stepSize * leakage; product >= maxLeakProduct {
		return nil, &ConfigError{
			Param:  "step_size*leakage",
			Value:  product,
			Reason: "must be < 1 for a decay factor in (0, 1]",
		}
	}

	return &LeakyLMS[F]{
		LMS:     *lms,
		leakage: F(leakage),
		decay:   F(1 - stepSize*leakage),
	}, nil
}

// Update implements Stage.
func (s *LeakyLMS[F]) Update(tap []F, desired F) (prediction, residual F, err error) {
	if err := checkTap(len(tap), len(s.weights)); err != nil {
		return 0, 0, err
	}

	prediction = s.ops.DotProductUnsafe(s.weights, tap)
	residual = desired - prediction
	if s.decay != 1 {
		s.ops.Scale(s.weights, s.weights, s.decay)
	}
	s.ops.AddScaled(s.weights, s.gain*residual, tap)
	return prediction, residual, nil
}

// Leakage returns lambda.
func (s *LeakyLMS[F]) Leakage() float64 {
	return float64(s.leakage)
}

// Decay returns the per-update weight decay factor 1 - mu*lambda.
func (s *LeakyLMS[F]) Decay() float64 {
	return float64(s.decay)
}
