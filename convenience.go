package adaptive

import (
	"fmt"
)

// LMS runs a single LMS filter over the signals with the 2*mu update and the
// index-aligned tap window, returning the final weights, output and error.
func LMS(reference, desired []float64, stepSize float64, tapLength int) (*Result, error) {
	return runOnce(&Config{
		Algorithm: AlgorithmLMS,
		TapLength: tapLength,
		StepSize:  stepSize,
	}, reference, desired)
}

// LeakyLMS runs a single Leaky-LMS filter over the signals.
func LeakyLMS(reference, desired []float64, stepSize float64, tapLength int, leakage float64) (*Result, error) {
	return runOnce(&Config{
		Algorithm: AlgorithmLeakyLMS,
		TapLength: tapLength,
		StepSize:  stepSize,
		Leakage:   leakage,
	}, reference, desired)
}

// Cascade runs a multi-stage LMS/Sign-LMS cascade over the signals.
func Cascade(reference, desired []float64, stepSize float64, tapLength, stages int) (*Result, error) {
	return runOnce(&Config{
		Algorithm: AlgorithmCascade,
		TapLength: tapLength,
		StepSize:  stepSize,
		Stages:    stages,
	}, reference, desired)
}

func runOnce(config *Config, reference, desired []float64) (*Result, error) {
	f, err := New(config)
	if err != nil {
		return nil, err
	}
	return f.Process(reference, desired)
}

// =============================================================================
// Float32 Native API
// =============================================================================
//
// The float32 path runs the same algorithms with float32 weights and SIMD
// kernels. Use it when the samples are already float32 and single precision
// is enough; float64 remains the reference precision.

// ResultFloat32 is the float32 equivalent of Result.
type ResultFloat32 struct {
	Output        []float32
	Error         []float32
	Weights       [][]float32
	WeightHistory [][]float32
}

// FilterFloat32 is a float32-native adaptive filter.
//
// Example:
//
//	f, err := adaptive.NewFloat32(adaptive.DefaultCascadeConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, _ := f.Process(reference, desired) // []float32 in, []float32 out
type FilterFloat32 struct {
	config Config
	core   filterCore[float32]
}

// NewFloat32 creates a float32 filter. Validation is identical to New.
func NewFloat32(config *Config) (*FilterFloat32, error) {
	if config == nil {
		return nil, &ConfigError{Param: "config", Value: nil, Reason: "must not be nil"}
	}
	core, err := newCore[float32](config)
	if err != nil {
		return nil, err
	}
	return &FilterFloat32{config: *config, core: core}, nil
}

// Process filters the full signal. See Filter.Process.
func (f *FilterFloat32) Process(reference, desired []float32) (*ResultFloat32, error) {
	output, residual, weights, history, err := f.core.run(reference, desired)
	if err != nil {
		return nil, fmt.Errorf("%s filtering failed: %w", f.config.Algorithm, err)
	}
	return &ResultFloat32{
		Output:        output,
		Error:         residual,
		Weights:       weights,
		WeightHistory: history,
	}, nil
}

// Weights returns a copy of the current weights, one vector per stage.
func (f *FilterFloat32) Weights() [][]float32 {
	return f.core.weights()
}

// Reset zeroes all weights.
func (f *FilterFloat32) Reset() {
	f.core.reset()
}

// Info describes the filter.
func (f *FilterFloat32) Info() Info {
	return f.config.info()
}
