package engine

import (
	"fmt"

	"github.com/tphakala/go-adaptive-filter/internal/simdops"
	"github.com/tphakala/go-adaptive-filter/internal/tapline"
)

// Result holds the outcome of a single-stage run.
type Result[F simdops.Float] struct {
	// Output is the prediction y[n]; zero for n < M.
	Output []F

	// Error is the residual e[n] = d[n] - y[n]; zero for n < M.
	Error []F

	// Weights is the final weight vector.
	Weights []F

	// History holds the weights after the update at each index when
	// recording is enabled, otherwise nil. Rows for n < M are zero vectors.
	History [][]F
}

// Runner drives one stage over a whole signal using the index-aligned tap
// window, so the tap vector at n includes the reference sample x[n].
type Runner[F simdops.Float] struct {
	stage  Stage[F]
	line   *tapline.Line[F]
	record bool
}

// NewRunner wraps a stage. When recordWeights is set, every run keeps the
// weight trajectory in Result.History.
func NewRunner[F simdops.Float](stage Stage[F], recordWeights bool) (*Runner[F], error) {
	if stage == nil {
		return nil, &ConfigError{Param: "stage", Value: nil, Reason: "must not be nil"}
	}
	line, err := tapline.New[F](stage.TapLength())
	if err != nil {
		return nil, err
	}
	return &Runner[F]{stage: stage, line: line, record: recordWeights}, nil
}

// Run zeroes the stage and filters reference/desired sample by sample for
// n = M .. N-1.
func (r *Runner[F]) Run(reference, desired []F) (*Result[F], error) {
	m := r.stage.TapLength()
	if err := validateSignals(len(reference), len(desired), m); err != nil {
		return nil, err
	}

	r.stage.Reset()
	r.line.Reset()

	n := len(reference)
	res := &Result[F]{
		Output: make([]F, n),
		Error:  make([]F, n),
	}
	if r.record {
		res.History = make([][]F, n)
		for i := range min(m, n) {
			res.History[i] = make([]F, m)
		}
	}

	for i := range n {
		r.line.Push(reference[i])
		if i < m {
			continue
		}

		y, e, err := r.stage.Update(r.line.Taps(), desired[i])
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		res.Output[i] = y
		res.Error[i] = e
		if r.record {
			res.History[i] = r.stage.Weights()
		}
	}

	res.Weights = r.stage.Weights()
	return res, nil
}

// Stage returns the wrapped stage.
func (r *Runner[F]) Stage() Stage[F] {
	return r.stage
}
