// Command pcg-filter removes additive noise from phonocardiogram recordings
// with an adaptive filter.
//
// Usage:
//
//	pcg-filter input.wav output.wav                          # LMS, M=2, mu=0.1
//	pcg-filter -algorithm leaky -lambda 0.0001 in.mp3 out.wav
//	pcg-filter -algorithm cascade -taps 32 -mu 0.01 -stages 2 in.wav out.wav
//	pcg-filter -synthetic 4000 -snr 10 output.wav            # generated PCG
//
// In file mode the input is downmixed to mono, Gaussian noise is added to it
// and a scaled copy of that noise drives the filter taps. The residual, which
// is the cleaned signal, is written as 16-bit mono WAV at the input rate.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"
	"time"

	adaptive "github.com/tphakala/go-adaptive-filter"
)

const (
	// CLI defaults
	defaultNoiseStdDev = 0.033
	defaultRefGain     = 0.95
	defaultSNRdB       = 10.0
	defaultSeed        = 1
	defaultLogLevel    = "info"

	// Synthetic mode writes normalized samples at this rate.
	syntheticSampleRate = 44100

	fileModeArgs      = 2
	syntheticModeArgs = 1
)

var errUsage = errors.New("insufficient arguments")

func main() {
	if err := run(); err != nil {
		slog.Error("pcg-filter failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	algorithm := flag.String("algorithm", "lms", "Filter: lms, leaky, cascade")
	taps := flag.Int("taps", 0, "Tap length M per stage (0 = algorithm default)")
	mu := flag.Float64("mu", 0, "Step size mu (0 = algorithm default)")
	lambda := flag.Float64("lambda", adaptive.DefaultLeakage, "Leakage lambda for the leaky filter")
	stages := flag.Int("stages", adaptive.DefaultCascadeStages, "Number of cascade stages")
	noise := flag.Float64("noise", defaultNoiseStdDev, "Standard deviation of the injected noise (file mode)")
	refGain := flag.Float64("ref-gain", defaultRefGain, "Gain applied to the noise to form the reference (file mode)")
	synthetic := flag.Int("synthetic", 0, "Generate a synthetic PCG of this many samples instead of reading a file")
	snr := flag.Float64("snr", defaultSNRdB, "Input SNR in dB for synthetic mode")
	seed := flag.Uint64("seed", defaultSeed, "Noise generator seed")
	logLevel := flag.String("log-level", defaultLogLevel, "Log level: debug, info, warn, error")
	verbose := flag.Bool("v", false, "Verbose output (same as -log-level debug)")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	level := *logLevel
	if *verbose {
		level = "debug"
	}
	if err := initLogger(level); err != nil {
		return err
	}

	args := flag.Args()
	wantArgs := fileModeArgs
	if *synthetic > 0 {
		wantArgs = syntheticModeArgs
	}
	if len(args) < wantArgs {
		printUsage()
		return errUsage
	}

	config, err := buildConfig(*algorithm, *taps, *mu, *lambda, *stages)
	if err != nil {
		return err
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	slog.Debug("filter configured",
		"algorithm", config.Algorithm,
		"taps", config.TapLength,
		"mu", config.StepSize,
		"lambda", config.Leakage,
		"stages", config.Stages,
		"seed", *seed)

	start := time.Now()
	var rep *report
	if *synthetic > 0 {
		rep, err = denoiseSynthetic(config, *synthetic, *snr, *seed, args[0])
	} else {
		rep, err = denoiseFile(config, noiseOptions{stdDev: *noise, refGain: *refGain, seed: *seed}, args[0], args[1])
	}
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d samples at %d Hz to %s\n", rep.samples, rep.sampleRate, rep.outputPath)
	fmt.Printf("SNR: %.2f dB in, %.2f dB out\n", rep.snrIn, rep.snrOut)
	slog.Debug("done", "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] input.{wav,mp3} output.wav\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s [options] -synthetic N output.wav\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  %s heart.wav clean.wav                          # LMS, M=2, mu=0.1\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s -algorithm leaky heart.mp3 clean.wav         # Leaky LMS\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s -algorithm cascade -synthetic 4000 demo.wav  # cascade on generated PCG\n", os.Args[0])
}

// buildConfig starts from the algorithm's defaults and applies any non-zero
// overrides.
func buildConfig(algorithm string, taps int, mu, lambda float64, stages int) (*adaptive.Config, error) {
	alg, err := adaptive.ParseAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}

	config := adaptive.DefaultConfig()
	if alg == adaptive.AlgorithmCascade {
		config = adaptive.DefaultCascadeConfig()
	}
	config.Algorithm = alg
	if taps != 0 {
		config.TapLength = taps
	}
	if mu != 0 {
		config.StepSize = mu
	}
	config.Leakage = lambda
	config.Stages = stages

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
