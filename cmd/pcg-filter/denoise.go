package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	adaptive "github.com/tphakala/go-adaptive-filter"
	"github.com/tphakala/go-adaptive-filter/internal/signal"
)

// Synthetic output is in [-1, 1] and is scaled to full-scale int16.
const syntheticOutputGain = 32767

// noiseOptions controls the noise injected in file mode.
type noiseOptions struct {
	stdDev  float64
	refGain float64
	seed    uint64
}

// report summarizes one denoising run.
type report struct {
	outputPath string
	samples    int
	sampleRate int
	snrIn      float64
	snrOut     float64
}

// denoiseFile runs the noise cancellation workflow on a recording: the
// desired signal is s+v, the reference is refGain*v, and the residual is
// written to outputPath.
func denoiseFile(config *adaptive.Config, opts noiseOptions, inputPath, outputPath string) (*report, error) {
	in, err := loadInput(inputPath)
	if err != nil {
		return nil, err
	}

	noise, err := signal.GaussianNoise(len(in.samples), opts.stdDev, rand.NewPCG(opts.seed, opts.seed))
	if err != nil {
		return nil, fmt.Errorf("noise generation failed: %w", err)
	}
	desired, err := signal.AddNoise(in.samples, noise)
	if err != nil {
		return nil, err
	}
	reference := signal.Scale(noise, opts.refGain)

	res, err := runFilter(config, reference, desired)
	if err != nil {
		return nil, err
	}

	rep := &report{
		outputPath: outputPath,
		samples:    len(in.samples),
		sampleRate: in.sampleRate,
	}
	if rep.snrIn, err = signal.SNR(in.samples, desired); err != nil {
		return nil, err
	}
	if rep.snrOut, err = signal.SNR(in.samples, res.Error); err != nil {
		return nil, err
	}

	if err := writeWAV16(outputPath, signal.ToInt16(res.Error, 1), in.sampleRate); err != nil {
		return nil, err
	}
	return rep, nil
}

// denoiseSynthetic generates a PCG of n samples, corrupts it to snrDB and
// filters with the noisy signal as reference and the clean signal as
// desired. The filter output is written to outputPath.
func denoiseSynthetic(config *adaptive.Config, n int, snrDB float64, seed uint64, outputPath string) (*report, error) {
	clean := signal.SyntheticPCG(n)
	noisy, _, err := signal.AddNoiseSNR(clean, snrDB, rand.NewPCG(seed, seed))
	if err != nil {
		return nil, fmt.Errorf("noise generation failed: %w", err)
	}

	res, err := runFilter(config, noisy, clean)
	if err != nil {
		return nil, err
	}

	rep := &report{
		outputPath: outputPath,
		samples:    n,
		sampleRate: syntheticSampleRate,
	}
	if rep.snrIn, err = signal.SNR(clean, noisy); err != nil {
		return nil, err
	}
	if rep.snrOut, err = signal.SNR(clean, res.Output); err != nil {
		return nil, err
	}

	if err := writeWAV16(outputPath, signal.ToInt16(res.Output, syntheticOutputGain), syntheticSampleRate); err != nil {
		return nil, err
	}
	return rep, nil
}

func runFilter(config *adaptive.Config, reference, desired []float64) (*adaptive.Result, error) {
	f, err := adaptive.New(config)
	if err != nil {
		return nil, err
	}
	info := f.Info()
	slog.Debug("filtering",
		"algorithm", info.Algorithm,
		"gradient", info.Gradient,
		"window", info.Window,
		"samples", len(reference))

	res, err := f.Process(reference, desired)
	if err != nil {
		return nil, err
	}
	return res, nil
}
