package engine

import (
	"github.com/tphakala/go-adaptive-filter/internal/simdops"
)

// SignLMS adapts with the sign of the error only: w += mu*sign(e)*x.
//
// sign(0) is 0, so an exact prediction leaves the weights untouched. A NaN
// error also counts as zero.
type SignLMS[F simdops.Float] struct {
	LMS[F]
}

// NewSignLMS creates a Sign-LMS stage.
func NewSignLMS[F simdops.Float](tapLength int, stepSize float64) (*SignLMS[F], error) {
	lms, err := NewLMS[F](tapLength, stepSize, GradientUnit)
	if err != nil {
		return nil, err
	}
	return &SignLMS[F]{LMS: *lms}, nil
}

// Update implements Stage.
func (s *SignLMS[F]) Update(tap []F, desired F) (prediction, residual F, err error) {
	if err := checkTap(len(tap), len(s.weights)); err != nil {
		return 0, 0, err
	}

	prediction = s.ops.DotProductUnsafe(s.weights, tap)
	residual = desired - prediction
	if sgn := sign(residual); sgn != 0 {
		s.ops.AddScaled(s.weights, s.stepSize*sgn, tap)
	}
	return prediction, residual, nil
}

func sign[F simdops.Float](v F) F {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
