// Package adaptive provides sample-by-sample adaptive noise cancellation for
// one-dimensional signals such as phonocardiogram (PCG) recordings.
//
// Three filter families are available:
//
//   - [AlgorithmLMS]: a single least-mean-squares stage, w += 2*mu*e*x.
//   - [AlgorithmLeakyLMS]: LMS with weight leakage, w = (1-mu*lambda)*w + 2*mu*e*x.
//   - [AlgorithmCascade]: a chain of stages alternating LMS (w += mu*e*x) and
//     Sign-LMS (w += mu*sign(e)*x), each stage targeting the residual of the
//     one before it.
//
// # Quick Start
//
// For a one-shot run:
//
//	res, err := adaptive.LMS(reference, noisy, 0.1, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cleaned := res.Error
//
// For a reusable filter:
//
//	f, err := adaptive.New(&adaptive.Config{
//	    Algorithm: adaptive.AlgorithmCascade,
//	    TapLength: 32,
//	    StepSize:  0.01,
//	    Stages:    2,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := f.Process(reference, desired)
//
// # Conventions
//
// The single-stage filters and the cascade differ in two ways that change
// their numerical results, and both differences are kept:
//
//   - Gradient scale: single-stage LMS and Leaky-LMS use 2*mu, the cascade's
//     LMS stages use mu.
//   - Tap window: single-stage filters use x[n] .. x[n-M+1] (index-aligned),
//     the cascade uses x[n-1] .. x[n-M] (look-back).
//
// In every case samples 0 .. M-1 are not filtered and their output and error
// stay zero.
//
// # Errors
//
// Invalid parameters fail with [ErrInvalidConfig] before any sample is
// processed; mismatched signal lengths fail with [ErrDimensionMismatch].
// Use errors.As with [*ConfigError] or [*DimensionError] for details.
// Weight divergence from an overly large step size is not detected.
//
// # Thread Safety
//
// A [Filter] owns its weights and is not safe for concurrent use. Independent
// runs may execute in parallel as long as each uses its own Filter; see
// [ProcessBatch].
package adaptive
