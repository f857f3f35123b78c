package adaptive

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-adaptive-filter/internal/engine"
	"github.com/tphakala/go-adaptive-filter/internal/simdops"
	"github.com/tphakala/go-adaptive-filter/internal/tapline"
)

// Filter is a configured adaptive filter.
type Filter interface {
	// Process filters the full signal. The reference drives the taps and the
	// desired signal is the target the filter predicts. Both must have the
	// same length N >= M. Weights are zeroed before every run.
	Process(reference, desired []float64) (*Result, error)

	// Weights returns a copy of the current weights, one vector per stage.
	Weights() [][]float64

	// Reset zeroes all weights.
	Reset()

	// Info describes the filter.
	Info() Info
}

// Result holds the sequences produced by one run.
type Result struct {
	// Output is the filter's estimate y[n]. Zero for n < M.
	Output []float64

	// Error is the residual e[n]. For noise cancellation this is the cleaned
	// signal. Zero for n < M.
	Error []float64

	// Weights holds the final weight vector of each stage.
	Weights [][]float64

	// WeightHistory holds the weights after every update when
	// Config.RecordWeights is set on a single-stage filter; otherwise nil.
	WeightHistory [][]float64
}

// Algorithm selects the filter family.
type Algorithm int

const (
	// AlgorithmLMS is a single LMS stage with the 2*mu update.
	AlgorithmLMS Algorithm = iota

	// AlgorithmLeakyLMS is a single Leaky-LMS stage.
	AlgorithmLeakyLMS

	// AlgorithmCascade alternates LMS and Sign-LMS stages.
	AlgorithmCascade
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmLMS:
		return "LMS"
	case AlgorithmLeakyLMS:
		return "Leaky LMS"
	case AlgorithmCascade:
		return "Cascade"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name such as "lms", "leaky" or "cascade" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lms":
		return AlgorithmLMS, nil
	case "leaky", "leaky-lms", "leaky lms", "llms":
		return AlgorithmLeakyLMS, nil
	case "cascade", "multistage", "multi-stage":
		return AlgorithmCascade, nil
	default:
		return 0, &ConfigError{Param: "algorithm", Value: name, Reason: "unknown algorithm"}
	}
}

// Info describes a configured filter.
type Info struct {
	Algorithm Algorithm
	TapLength int
	StepSize  float64
	Leakage   float64
	Stages    int

	// Gradient is the LMS correction scale, "2mu" or "mu".
	Gradient string

	// Window is the tap window convention, "index-aligned" or "look-back".
	Window string
}

// filterCore is the precision-specific part of a filter.
type filterCore[F simdops.Float] interface {
	run(reference, desired []F) (output, residual []F, weights, history [][]F, err error)
	weights() [][]F
	reset()
}

type singleCore[F simdops.Float] struct {
	runner *engine.Runner[F]
}

func (c *singleCore[F]) run(reference, desired []F) (output, residual []F, weights, history [][]F, err error) {
	res, err := c.runner.Run(reference, desired)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return res.Output, res.Error, [][]F{res.Weights}, res.History, nil
}

func (c *singleCore[F]) weights() [][]F {
	return [][]F{c.runner.Stage().Weights()}
}

func (c *singleCore[F]) reset() {
	c.runner.Stage().Reset()
}

type cascadeCore[F simdops.Float] struct {
	cascade *engine.Cascade[F]
}

func (c *cascadeCore[F]) run(reference, desired []F) (output, residual []F, weights, history [][]F, err error) {
	output, residual, err = c.cascade.Process(reference, desired)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return output, residual, c.cascade.Weights(), nil, nil
}

func (c *cascadeCore[F]) weights() [][]F {
	return c.cascade.Weights()
}

func (c *cascadeCore[F]) reset() {
	c.cascade.Reset()
}

// newCore builds the engine objects for a validated config.
func newCore[F simdops.Float](c *Config) (filterCore[F], error) {
	var stage engine.Stage[F]
	switch c.Algorithm {
	case AlgorithmLMS:
		lms, err := engine.NewLMS[F](c.TapLength, c.StepSize, engine.GradientDoubled)
		if err != nil {
			return nil, err
		}
		stage = lms
	case AlgorithmLeakyLMS:
		leaky, err := engine.NewLeakyLMS[F](c.TapLength, c.StepSize, c.Leakage)
		if err != nil {
			return nil, err
		}
		stage = leaky
	case AlgorithmCascade:
		cascade, err := engine.NewCascade[F](c.Stages, c.TapLength, c.StepSize)
		if err != nil {
			return nil, err
		}
		return &cascadeCore[F]{cascade: cascade}, nil
	default:
		return nil, &ConfigError{Param: "algorithm", Value: int(c.Algorithm), Reason: "unknown algorithm"}
	}

	runner, err := engine.NewRunner(stage, c.RecordWeights)
	if err != nil {
		return nil, err
	}
	return &singleCore[F]{runner: runner}, nil
}

func (c *Config) info() Info {
	info := Info{
		Algorithm: c.Algorithm,
		TapLength: c.TapLength,
		StepSize:  c.StepSize,
		Stages:    1,
		Gradient:  engine.GradientDoubled.String(),
		Window:    tapline.IndexAligned.String(),
	}
	switch c.Algorithm {
	case AlgorithmLeakyLMS:
		info.Leakage = c.Leakage
	case AlgorithmCascade:
		info.Stages = c.Stages
		info.Gradient = engine.GradientUnit.String()
		info.Window = tapline.LookBack.String()
	}
	return info
}

// filter is the float64 Filter implementation.
type filter struct {
	config Config
	core   filterCore[float64]
}

// New creates a filter from the configuration. Parameters are validated
// eagerly, so an unstable Leaky-LMS setting (mu*lambda >= 1) fails here.
func New(config *Config) (Filter, error) {
	if config == nil {
		return nil, &ConfigError{Param: "config", Value: nil, Reason: "must not be nil"}
	}
	core, err := newCore[float64](config)
	if err != nil {
		return nil, err
	}
	return &filter{config: *config, core: core}, nil
}

// Process implements Filter.
func (f *filter) Process(reference, desired []float64) (*Result, error) {
	output, residual, weights, history, err := f.core.run(reference, desired)
	if err != nil {
		return nil, fmt.Errorf("%s filtering failed: %w", f.config.Algorithm, err)
	}
	return &Result{
		Output:        output,
		Error:         residual,
		Weights:       weights,
		WeightHistory: history,
	}, nil
}

// Weights implements Filter.
func (f *filter) Weights() [][]float64 {
	return f.core.weights()
}

// Reset implements Filter.
func (f *filter) Reset() {
	f.core.reset()
}

// Info implements Filter.
func (f *filter) Info() Info {
	return f.config.info()
}
