// Package tapline implements the tap-delay line that feeds the adaptive
// filters: a fixed-length history of a reference signal exposed as the last
// M samples, most recent first.
//
// Two window conventions exist and are kept distinct because they produce
// different numerical results:
//
//   - [IndexAligned]: the window at index n is x[n], x[n-1], ..., x[n-M+1].
//     Used by the single-stage LMS and Leaky-LMS runners.
//   - [LookBack]: the window at index n is x[n-1], x[n-2], ..., x[n-M].
//     Used by the cascade filter.
//
// Drivers realize a convention with a [Line] by choosing whether the current
// sample is pushed before (IndexAligned) or after (LookBack) the taps are read.
package tapline

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-adaptive-filter/internal/simdops"
)

// Errors returned by tap extraction.
var (
	// ErrInvalidTapLength indicates a tap length outside [1, N].
	ErrInvalidTapLength = errors.New("invalid tap length")

	// ErrIndexOutOfRange indicates a time index outside [0, N).
	ErrIndexOutOfRange = errors.New("time index out of range")
)

// Convention selects how the tap window is aligned with the current index.
type Convention int

const (
	// IndexAligned includes the current sample: x[n] ... x[n-M+1].
	IndexAligned Convention = iota

	// LookBack excludes the current sample: x[n-1] ... x[n-M].
	LookBack
)

// String returns the convention name.
func (c Convention) String() string {
	switch c {
	case IndexAligned:
		return "index-aligned"
	case LookBack:
		return "look-back"
	default:
		return fmt.Sprintf("Convention(%d)", int(c))
	}
}

// Line is a delay line of fixed length M.
//
// Samples are stored twice in a buffer of length 2M so that the most recent M
// samples are always a contiguous, most-recent-first slice; Push is O(1) and
// reading the taps never copies.
type Line[F simdops.Float] struct {
	data   []F
	size   int
	pos    int
	filled int
}

// New creates a delay line holding size samples, initially all zero.
func New[F simdops.Float](size int) (*Line[F], error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d (must be >= 1)", ErrInvalidTapLength, size)
	}
	return &Line[F]{
		data: make([]F, 2*size),
		size: size,
	}, nil
}

// Push inserts a new most-recent sample, discarding the oldest when full.
func (l *Line[F]) Push(sample F) {
	l.pos--
	if l.pos < 0 {
		l.pos = l.size - 1
	}
	l.data[l.pos] = sample
	l.data[l.pos+l.size] = sample
	if l.filled < l.size {
		l.filled++
	}
}

// Taps returns the last M samples, most recent first. Slots not yet filled
// read as zero. The slice aliases internal storage: it must not be modified
// and is only valid until the next Push or Reset.
func (l *Line[F]) Taps() []F {
	return l.data[l.pos : l.pos+l.size : l.pos+l.size]
}

// Recent returns only the samples pushed so far, most recent first, capped
// at M. During warm-up this is the short, growing window. Same aliasing rules
// as Taps.
func (l *Line[F]) Recent() []F {
	return l.data[l.pos : l.pos+l.filled : l.pos+l.filled]
}

// Full reports whether M samples have been pushed.
func (l *Line[F]) Full() bool {
	return l.filled == l.size
}

// Len returns the tap length M.
func (l *Line[F]) Len() int {
	return l.size
}

// Reset clears the history back to all zeros.
func (l *Line[F]) Reset() {
	clear(l.data)
	l.pos = 0
	l.filled = 0
}

// Extract returns a freshly allocated tap vector of x at index n for tap
// length m under the given convention.
//
// For n >= m the vector has length m. For n < m (warm-up) the result is the
// short window x[n], x[n-1], ..., x[0] of length n+1 regardless of
// convention; callers with a fixed-length weight vector skip that region.
func Extract[F simdops.Float](x []F, m, n int, conv Convention) ([]F, error) {
	if m < 1 || m > len(x) {
		return nil, fmt.Errorf("%w: %d (signal length %d)", ErrInvalidTapLength, m, len(x))
	}
	if n < 0 || n >= len(x) {
		return nil, fmt.Errorf("%w: %d (signal length %d)", ErrIndexOutOfRange, n, len(x))
	}

	if n < m {
		return reversed(x[:n+1]), nil
	}

	switch conv {
	case IndexAligned:
		return reversed(x[n-m+1 : n+1]), nil
	case LookBack:
		return reversed(x[n-m : n]), nil
	default:
		return nil, fmt.Errorf("unknown tap convention %v", conv)
	}
}

func reversed[F simdops.Float](s []F) []F {
	out := make([]F, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
