// Package testutil provides reusable test helper functions for adaptive filter tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-12
	Float32Tolerance = 1e-4
)

// TestingT is the subset of *testing.T the assertions need.
type TestingT interface {
	assert.TestingT
	Helper()
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t TestingT, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d]", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d]", i), msgAndArgs...)
		}
	}
	return true
}

// AssertAllZero verifies that s[from:to] contains only zeros.
func AssertAllZero(t TestingT, s []float64, from, to int, msgAndArgs ...any) bool {
	t.Helper()
	for i := from; i < to && i < len(s); i++ {
		if s[i] != 0 {
			return assert.Fail(t, fmt.Sprintf("expected zero: s[%d]=%g", i, s[i]), msgAndArgs...)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice is monotonically increasing.
func AssertMonotonic(t TestingT, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return assert.Fail(t,
				fmt.Sprintf("not monotonic: s[%d]=%f < s[%d]=%f", i, s[i], i-1, s[i-1]), msgAndArgs...)
		}
	}
	return true
}

// AssertStrictlyDecreasing verifies that |s[i]| < |s[i-1]| for every i.
func AssertStrictlyDecreasing(t TestingT, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if math.Abs(s[i]) >= math.Abs(s[i-1]) {
			return assert.Fail(t,
				fmt.Sprintf("magnitude not strictly decreasing: |s[%d]|=%g >= |s[%d]|=%g", i, math.Abs(s[i]), i-1, math.Abs(s[i-1])),
				msgAndArgs...)
		}
	}
	return true
}

// AssertSlicesInDelta verifies element-wise closeness of two equal-length slices.
func AssertSlicesInDelta(t TestingT, expected, actual []float64, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], delta, "index %d", i) {
			return false
		}
	}
	return true
}

// Widen converts float32 samples to float64 for comparisons.
func Widen(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

// Alternating returns n samples of the pattern 1, 0, 1, 0, ...
func Alternating(n int) []float64 {
	x := make([]float64, n)
	for i := 0; i < n; i += 2 {
		x[i] = 1
	}
	return x
}

// Constant returns n copies of v.
func Constant(n int, v float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = v
	}
	return x
}

// Chirp returns a deterministic non-periodic test signal.
func Chirp(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		f := float64(i)
		x[i] = math.Sin(0.05*f+0.001*f*f) + 0.3*math.Cos(0.7*f)
	}
	return x
}
