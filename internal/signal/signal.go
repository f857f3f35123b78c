// Package signal provides the test-signal side of the noise cancellation
// workflow: synthetic PCG generation, Gaussian noise injection, SNR
// measurement and int16 quantization.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Errors returned by signal helpers.
var (
	ErrEmptySignal      = errors.New("empty signal")
	ErrLengthMismatch   = errors.New("signal length mismatch")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Synthetic PCG parameters: a 1 Hz fundamental plus a half-amplitude 2 Hz
// harmonic over a 10 second span.
const (
	pcgDuration       = 10.0
	pcgFundamentalHz  = 1.0
	pcgHarmonicHz     = 2.0
	pcgHarmonicWeight = 0.5
)

// int16 sample range.
const (
	minInt16 = -32768
	maxInt16 = 32767
)

// SyntheticPCG returns n samples of sin(2*pi*t) + 0.5*sin(4*pi*t) with t
// evenly spaced over [0, 10], both ends included.
func SyntheticPCG(n int) []float64 {
	if n < 1 {
		return []float64{}
	}
	t := make([]float64, n)
	if n > 1 {
		floats.Span(t, 0, pcgDuration)
	}

	out := make([]float64, n)
	for i, ti := range t {
		out[i] = math.Sin(2*math.Pi*pcgFundamentalHz*ti) +
			pcgHarmonicWeight*math.Sin(2*math.Pi*pcgHarmonicHz*ti)
	}
	return out
}

// GaussianNoise returns n samples drawn from N(0, stddev^2).
func GaussianNoise(n int, stddev float64, src rand.Source) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: noise length %d", ErrInvalidParameter, n)
	}
	if stddev < 0 || math.IsNaN(stddev) || math.IsInf(stddev, 0) {
		return nil, fmt.Errorf("%w: noise standard deviation %v", ErrInvalidParameter, stddev)
	}

	dist := distuv.Normal{Mu: 0, Sigma: stddev, Src: src}
	noise := make([]float64, n)
	for i := range noise {
		noise[i] = dist.Rand()
	}
	return noise, nil
}

// AddNoise returns clean + noise as a new slice.
func AddNoise(clean, noise []float64) ([]float64, error) {
	if len(clean) != len(noise) {
		return nil, fmt.Errorf("%w: signal %d, noise %d", ErrLengthMismatch, len(clean), len(noise))
	}
	out := make([]float64, len(clean))
	floats.AddTo(out, clean, noise)
	return out, nil
}

// AddNoiseSNR adds Gaussian noise scaled so the result has the requested
// signal-to-noise ratio in dB relative to the clean signal's mean power.
// It returns the noisy signal and the noise that was added.
func AddNoiseSNR(clean []float64, snrDB float64, src rand.Source) (noisy, noise []float64, err error) {
	if len(clean) == 0 {
		return nil, nil, ErrEmptySignal
	}
	if math.IsNaN(snrDB) || math.IsInf(snrDB, 0) {
		return nil, nil, fmt.Errorf("%w: SNR %v dB", ErrInvalidParameter, snrDB)
	}

	noisePower := Power(clean) / math.Pow(10, snrDB/10)
	noise, err = GaussianNoise(len(clean), math.Sqrt(noisePower), src)
	if err != nil {
		return nil, nil, err
	}
	noisy, err = AddNoise(clean, noise)
	if err != nil {
		return nil, nil, err
	}
	return noisy, noise, nil
}

// Energy returns the sum of squares.
func Energy(x []float64) float64 {
	return floats.Dot(x, x)
}

// Power returns the mean of squares, or 0 for an empty signal.
func Power(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	sq := make([]float64, len(x))
	floats.MulTo(sq, x, x)
	return stat.Mean(sq, nil)
}

// SNR returns 10*log10(P(clean) / P(estimate - clean)) in dB. An exact
// estimate yields +Inf.
func SNR(clean, estimate []float64) (float64, error) {
	if len(clean) == 0 {
		return 0, ErrEmptySignal
	}
	if len(clean) != len(estimate) {
		return 0, fmt.Errorf("%w: clean %d, estimate %d", ErrLengthMismatch, len(clean), len(estimate))
	}

	residual := make([]float64, len(clean))
	floats.SubTo(residual, estimate, clean)
	return 10 * math.Log10(Power(clean)/Power(residual)), nil
}

// Scale returns gain*x as a new slice.
func Scale(x []float64, gain float64) []float64 {
	out := make([]float64, len(x))
	floats.ScaleTo(out, gain, x)
	return out
}

// ToInt16 multiplies by gain, clips to the int16 range and truncates toward
// zero, returning int samples ready for a 16-bit PCM encoder.
func ToInt16(x []float64, gain float64) []int {
	out := make([]int, len(x))
	for i, v := range x {
		v *= gain
		switch {
		case math.IsNaN(v):
			v = 0
		case v > maxInt16:
			v = maxInt16
		case v < minInt16:
			v = minInt16
		}
		out[i] = int(v)
	}
	return out
}
