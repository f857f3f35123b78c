package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_Float64(t *testing.T) {
	ops := For[float64]()
	require.NotNil(t, ops)

	a := []float64{1, 2, 3, 4, 5}
	b := []float64{5, 4, 3, 2, 1}
	assert.InDelta(t, 35.0, ops.DotProductUnsafe(a, b), 1e-12)

	dst := make([]float64, len(a))
	ops.Scale(dst, a, 0.5)
	assert.InDeltaSlice(t, []float64{0.5, 1, 1.5, 2, 2.5}, dst, 1e-12)
}

func TestFor_Float32(t *testing.T) {
	ops := For[float32]()
	require.NotNil(t, ops)

	a := []float32{1, 2, 3, 4}
	b := []float32{1, 1, 1, 1}
	assert.InDelta(t, 10.0, float64(ops.DotProductUnsafe(a, b)), 1e-6)
}

func TestFor_ReturnsSharedInstance(t *testing.T) {
	assert.Same(t, For[float64](), For[float64]())
	assert.Same(t, For[float32](), For[float32]())
}

func TestAddScaled(t *testing.T) {
	dst := []float64{1, 1, 1, 0.25}
	For[float64]().AddScaled(dst, 2.0, []float64{0.5, -1, 0, 3})
	assert.InDeltaSlice(t, []float64{2, -1, 1, 6.25}, dst, 1e-12)

	dst32 := []float32{1, 1, 1, 0.25}
	For[float32]().AddScaled(dst32, 2.0, []float32{0.5, -1, 0, 3})
	assert.InDeltaSlice(t, []float32{2, -1, 1, 6.25}, dst32, 1e-6)
}

func TestAddScaled_UsesCommonLength(t *testing.T) {
	dst := []float64{0, 0, 0}
	For[float64]().AddScaled(dst, 1.0, []float64{1, 2})
	assert.Equal(t, []float64{1, 2, 0}, dst)
}
