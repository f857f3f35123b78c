package engine

import (
	"github.com/tphakala/go-adaptive-filter/internal/simdops"
)

// LMS is a least-mean-squares adaptive stage.
//
// Each update computes y = w·x, e = d - y and then w += g*mu*e*x, where g is
// 2 or 1 depending on the Gradient convention. Weights are not clamped; a step
// size that is too large for the input power makes them diverge.
type LMS[F simdops.Float] struct {
	weights  []F
	stepSize F
	gain     F // gradient factor times step size
	gradient Gradient
	ops      *simdops.Ops[F]
}

// NewLMS creates an LMS stage with tapLength zero weights.
func NewLMS[F simdops.Float](tapLength int, stepSize float64, gradient Gradient) (*LMS[F], error) {
	if err := validateTapLength(tapLength); err != nil {
		return nil, err
	}
	if err := validateStepSize(stepSize); err != nil {
		return nil, err
	}
	factor, err := gradient.factor()
	if err != nil {
		return nil, err
	}

	return &LMS[F]{
		weights:  make([]F, tapLength),
		stepSize: F(stepSize),
		gain:     F(factor * stepSize),
		gradient: gradient,
		ops:      simdops.For[F](),
	}, nil
}

// Update implements Stage.
func (s *LMS[F]) Update(tap []F, desired F) (prediction, residual F, err error) {
	if err := checkTap(len(tap), len(s.weights)); err != nil {
		return 0, 0, err
	}

	prediction = s.ops.DotProductUnsafe(s.weights, tap)
	residual = desired - prediction
	s.ops.AddScaled(s.weights, s.gain*residual, tap)
	return prediction, residual, nil
}

// Weights implements Stage.
func (s *LMS[F]) Weights() []F {
	out := make([]F, len(s.weights))
	copy(out, s.weights)
	return out
}

// TapLength implements Stage.
func (s *LMS[F]) TapLength() int {
	return len(s.weights)
}

// Reset implements Stage.
func (s *LMS[F]) Reset() {
	clear(s.weights)
}

// StepSize returns mu.
func (s *LMS[F]) StepSize() float64 {
	return float64(s.stepSize)
}

// Gradient returns the update convention in use.
func (s *LMS[F]) Gradient() Gradient {
	return s.gradient
}
