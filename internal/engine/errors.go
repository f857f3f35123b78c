package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two fatal error classes. Numeric divergence is not
// an error: weights are never clamped or checked.
var (
	// ErrInvalidConfig indicates an invalid filter parameter.
	ErrInvalidConfig = errors.New("invalid filter configuration")

	// ErrDimensionMismatch indicates inconsistent signal or vector lengths.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)

// ConfigError reports which parameter was rejected and why.
// It matches ErrInvalidConfig with errors.Is.
type ConfigError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %s", ErrInvalidConfig, e.Param, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// DimensionError reports an expected versus actual length.
// It matches ErrDimensionMismatch with errors.Is.
type DimensionError struct {
	What     string
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s length %d, expected %d", ErrDimensionMismatch, e.What, e.Actual, e.Expected)
}

// Unwrap returns ErrDimensionMismatch.
func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}
