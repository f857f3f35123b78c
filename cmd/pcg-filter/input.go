package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

const (
	bitsPerSample8  = 8
	bitsPerSample16 = 16

	// 8-bit PCM is unsigned with silence at this value.
	unsigned8Midpoint = 128

	// go-mp3 always decodes to interleaved 16-bit little-endian stereo.
	mp3Channels       = 2
	mp3BytesPerSample = 2
	mp3FrameBytes     = mp3Channels * mp3BytesPerSample
)

var errUnsupportedFormat = errors.New("unsupported input format")

// pcmInput is a decoded mono recording in int16 sample units.
type pcmInput struct {
	samples    []float64
	sampleRate int
	channels   int
	bitDepth   int
}

// loadInput decodes a .wav or .mp3 file by extension.
func loadInput(path string) (*pcmInput, error) {
	var (
		in  *pcmInput
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		in, err = openWAVInput(path)
	case ".mp3":
		in, err = openMP3Input(path)
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("input decoded",
		"path", path,
		"rate", in.sampleRate,
		"channels", in.channels,
		"bit_depth", in.bitDepth,
		"samples", len(in.samples))
	return in, nil
}

// openWAVInput reads a whole PCM WAV file and downmixes it to mono. Samples
// of other bit depths are rescaled to the 16-bit range; unsigned 8-bit
// samples are re-centered on zero first.
func openWAVInput(path string) (*pcmInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode WAV file: %w", err)
	}

	channels := buf.Format.NumChannels
	bitDepth := int(decoder.BitDepth)
	if channels < 1 {
		return nil, fmt.Errorf("invalid WAV file: %s: %d channels", path, channels)
	}

	if bitDepth == bitsPerSample8 {
		for i := range buf.Data {
			buf.Data[i] -= unsigned8Midpoint
		}
	}

	gain := math.Ldexp(1, bitsPerSample16-bitDepth)
	return &pcmInput{
		samples:    downmix(buf.Data, channels, gain),
		sampleRate: buf.Format.SampleRate,
		channels:   channels,
		bitDepth:   bitDepth,
	}, nil
}

// openMP3Input decodes an MP3 file and downmixes it to mono.
func openMP3Input(path string) (*pcmInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("invalid MP3 file: %s: %w", path, err)
	}

	raw, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("failed to decode MP3 file: %w", err)
	}

	frames := len(raw) / mp3FrameBytes
	interleaved := make([]int, frames*mp3Channels)
	for i := range interleaved {
		interleaved[i] = int(int16(binary.LittleEndian.Uint16(raw[i*mp3BytesPerSample:])))
	}

	return &pcmInput{
		samples:    downmix(interleaved, mp3Channels, 1),
		sampleRate: decoder.SampleRate(),
		channels:   mp3Channels,
		bitDepth:   bitsPerSample16,
	}, nil
}

// downmix averages interleaved channels into one and applies gain. A trailing
// partial frame is dropped.
func downmix(data []int, channels int, gain float64) []float64 {
	frames := len(data) / channels
	mono := make([]float64, frames)
	scale := gain / float64(channels)
	for i := range frames {
		sum := 0
		for _, v := range data[i*channels : (i+1)*channels] {
			sum += v
		}
		mono[i] = float64(sum) * scale
	}
	return mono
}
