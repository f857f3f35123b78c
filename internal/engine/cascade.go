package engine

import (
	"fmt"

	"github.com/tphakala/go-adaptive-filter/internal/simdops"
	"github.com/tphakala/go-adaptive-filter/internal/tapline"
)

// Cascade chains adaptive stages in series. Even-indexed stages are LMS with
// GradientUnit, odd-indexed stages are Sign-LMS; every stage has its own
// weight vector of the same tap length and shares one step size.
//
// At each sample the stages run in order on the same look-back tap vector:
// stage 0 targets the desired sample and every later stage targets the
// residual of the stage before it. Only the last stage's prediction and
// residual are recorded.
type Cascade[F simdops.Float] struct {
	stages    []Stage[F]
	tapLength int
	stepSize  float64
	line      *tapline.Line[F]
}

// NewCascade creates a cascade of numStages stages.
func NewCascade[F simdops.Float](numStages, tapLength int, stepSize float64) (*Cascade[F], error) {
	if numStages < minStages {
		return nil, &ConfigError{Param: "stages", Value: numStages, Reason: "must be >= 1"}
	}
	if err := validateTapLength(tapLength); err != nil {
		return nil, err
	}
	if err := validateStepSize(stepSize); err != nil {
		return nil, err
	}

	stages := make([]Stage[F], numStages)
	for i := range stages {
		var (
			stage Stage[F]
			err   error
		)
		if i%2 == 0 {
			stage, err = NewLMS[F](tapLength, stepSize, GradientUnit)
		} else {
			stage, err = NewSignLMS[F](tapLength, stepSize)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create cascade stage %d: %w", i, err)
		}
		stages[i] = stage
	}

	line, err := tapline.New[F](tapLength)
	if err != nil {
		return nil, err
	}

	return &Cascade[F]{
		stages:    stages,
		tapLength: tapLength,
		stepSize:  stepSize,
		line:      line,
	}, nil
}

// Process filters the full signal and returns the output estimate and error
// sequences of the last stage, both of length N. Samples before index M are
// left at zero. All weights are zeroed before the run starts.
func (c *Cascade[F]) Process(reference, desired []F) (output, residual []F, err error) {
	if err := validateSignals(len(reference), len(desired), c.tapLength); err != nil {
		return nil, nil, err
	}

	c.Reset()
	n := len(reference)
	output = make([]F, n)
	residual = make([]F, n)

	for i := range n {
		if i >= c.tapLength {
			taps := c.line.Taps()
			target := desired[i]
			var y, e F
			for s, stage := range c.stages {
				y, e, err = stage.Update(taps, target)
				if err != nil {
					return nil, nil, fmt.Errorf("stage %d at sample %d: %w", s, i, err)
				}
				target = e
			}
			output[i] = y
			residual[i] = e
		}
		c.line.Push(reference[i])
	}

	return output, residual, nil
}

// Reset zeroes every stage's weights and the tap history.
func (c *Cascade[F]) Reset() {
	for _, stage := range c.stages {
		stage.Reset()
	}
	c.line.Reset()
}

// Weights returns a copy of every stage's weight vector, indexed by stage.
func (c *Cascade[F]) Weights() [][]F {
	out := make([][]F, len(c.stages))
	for i, stage := range c.stages {
		out[i] = stage.Weights()
	}
	return out
}

// Stages returns the number of stages.
func (c *Cascade[F]) Stages() int {
	return len(c.stages)
}

// TapLength returns M.
func (c *Cascade[F]) TapLength() int {
	return c.tapLength
}

// StepSize returns mu.
func (c *Cascade[F]) StepSize() float64 {
	return c.stepSize
}
