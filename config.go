package adaptive

import (
	"github.com/tphakala/go-adaptive-filter/internal/engine"
)

// Common errors returned by filters.
var (
	// ErrInvalidConfig indicates invalid filter parameters.
	ErrInvalidConfig = engine.ErrInvalidConfig

	// ErrDimensionMismatch indicates signals or vectors of inconsistent length.
	ErrDimensionMismatch = engine.ErrDimensionMismatch
)

// ConfigError names the rejected parameter and its value.
type ConfigError = engine.ConfigError

// DimensionError reports the expected and actual length.
type DimensionError = engine.DimensionError

// Config holds filter configuration.
type Config struct {
	// Algorithm selects LMS, Leaky-LMS or the cascade.
	Algorithm Algorithm

	// TapLength is the number of weights M per stage. Must be >= 1 and no
	// longer than the signals passed to Process.
	TapLength int

	// StepSize is mu. Must be > 0. Large values make the weights diverge;
	// this is not detected.
	StepSize float64

	// Leakage is lambda for AlgorithmLeakyLMS. Must be >= 0 with
	// StepSize*Leakage < 1. Ignored by the other algorithms.
	Leakage float64

	// Stages is the cascade length for AlgorithmCascade. Must be >= 1.
	// Ignored by the single-stage algorithms.
	Stages int

	// RecordWeights keeps the weight trajectory in Result.WeightHistory.
	// Only single-stage algorithms record history.
	RecordWeights bool
}

// DefaultConfig returns the single-stage noise cancellation defaults
// (LMS, M=2, mu=0.1, lambda=0.0001 if switched to Leaky-LMS).
func DefaultConfig() *Config {
	return &Config{
		Algorithm: AlgorithmLMS,
		TapLength: DefaultTapLength,
		StepSize:  DefaultStepSize,
		Leakage:   DefaultLeakage,
		Stages:    1,
	}
}

// DefaultCascadeConfig returns the two-stage cascade denoising defaults.
func DefaultCascadeConfig() *Config {
	return &Config{
		Algorithm: AlgorithmCascade,
		TapLength: DefaultCascadeTapLength,
		StepSize:  DefaultCascadeStepSize,
		Stages:    DefaultCascadeStages,
	}
}

// Validate checks the configuration without keeping the filter it builds.
// The tap length is checked against the signal length later, when Process is
// called.
func (c *Config) Validate() error {
	_, err := newCore[float64](c)
	return err
}
