package adaptive

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-adaptive-filter/internal/testutil"
)

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		param  string
	}{
		{"unknown_algorithm", Config{Algorithm: Algorithm(42), TapLength: 2, StepSize: 0.1}, "algorithm"},
		{"zero_taps", Config{Algorithm: AlgorithmLMS, StepSize: 0.1}, "tap_length"},
		{"zero_mu", Config{Algorithm: AlgorithmLMS, TapLength: 2}, "step_size"},
		{"negative_mu", Config{Algorithm: AlgorithmLeakyLMS, TapLength: 2, StepSize: -0.1}, "step_size"},
		{"negative_leakage", Config{Algorithm: AlgorithmLeakyLMS, TapLength: 2, StepSize: 0.1, Leakage: -1}, "leakage"},
		{"unstable_leakage", Config{Algorithm: AlgorithmLeakyLMS, TapLength: 2, StepSize: 0.1, Leakage: 10}, "step_size*leakage"},
		{"zero_stages", Config{Algorithm: AlgorithmCascade, TapLength: 2, StepSize: 0.1}, "stages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(&tt.config)
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, f)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.param, cfgErr.Param)

			assert.ErrorIs(t, tt.config.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfig_IgnoresUnusedFields(t *testing.T) {
	// Leakage is only checked for Leaky-LMS and Stages only for the cascade.
	cfg := &Config{Algorithm: AlgorithmLMS, TapLength: 2, StepSize: 0.1, Leakage: -5, Stages: -1}
	require.NoError(t, cfg.Validate())
}

func TestDefaultConfigs(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, AlgorithmLMS, cfg.Algorithm)
	assert.Equal(t, 2, cfg.TapLength)
	assert.Equal(t, 0.1, cfg.StepSize)
	assert.Equal(t, 0.0001, cfg.Leakage)

	cfg.Algorithm = AlgorithmLeakyLMS
	require.NoError(t, cfg.Validate())

	cascade := DefaultCascadeConfig()
	require.NoError(t, cascade.Validate())
	assert.Equal(t, 2, cascade.Stages)
	assert.Equal(t, 32, cascade.TapLength)
}

func TestProcess_DimensionMismatch(t *testing.T) {
	for _, cfg := range []*Config{DefaultConfig(), DefaultCascadeConfig()} {
		f, err := New(cfg)
		require.NoError(t, err)

		_, err = f.Process(make([]float64, 100), make([]float64, 99))
		require.ErrorIs(t, err, ErrDimensionMismatch)

		var dimErr *DimensionError
		require.True(t, errors.As(err, &dimErr))
		assert.Equal(t, 100, dimErr.Expected)
		assert.Equal(t, 99, dimErr.Actual)
	}
}

func TestProcess_TapLengthExceedsSignal(t *testing.T) {
	f, err := New(DefaultCascadeConfig())
	require.NoError(t, err)

	_, err = f.Process(make([]float64, 31), make([]float64, 31))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Cascade filtering failed")
}

func TestProcess_WarmupIsZero(t *testing.T) {
	configs := []*Config{
		{Algorithm: AlgorithmLMS, TapLength: 4, StepSize: 0.01},
		{Algorithm: AlgorithmLeakyLMS, TapLength: 4, StepSize: 0.01, Leakage: 0.1},
		{Algorithm: AlgorithmCascade, TapLength: 4, StepSize: 0.01, Stages: 3},
	}
	x := testutil.Chirp(64)
	d := testutil.Constant(64, 2)

	for _, cfg := range configs {
		t.Run(cfg.Algorithm.String(), func(t *testing.T) {
			res, err := runOnce(cfg, x, d)
			require.NoError(t, err)
			require.Len(t, res.Output, 64)
			require.Len(t, res.Error, 64)
			testutil.AssertAllZero(t, res.Output, 0, 4)
			testutil.AssertAllZero(t, res.Error, 0, 4)
		})
	}
}

func TestProcess_ZeroReference(t *testing.T) {
	d := testutil.Chirp(50)
	zero := make([]float64, 50)

	for _, cfg := range []*Config{
		{Algorithm: AlgorithmLMS, TapLength: 3, StepSize: 0.5},
		{Algorithm: AlgorithmLeakyLMS, TapLength: 3, StepSize: 0.5, Leakage: 0.5},
		{Algorithm: AlgorithmCascade, TapLength: 3, StepSize: 0.5, Stages: 2},
	} {
		res, err := runOnce(cfg, zero, d)
		require.NoError(t, err)
		testutil.AssertAllZero(t, res.Output, 0, 50)
		for _, w := range res.Weights {
			assert.Equal(t, []float64{0, 0, 0}, w, cfg.Algorithm.String())
		}
	}
}

func TestLeakyLMS_ZeroLeakageMatchesLMS(t *testing.T) {
	x := testutil.Chirp(300)
	d := make([]float64, len(x))
	for i := range d {
		d[i] = 0.95*x[i] + 0.02*math.Sin(2.1*float64(i))
	}

	lms, err := LMS(x, d, 0.05, 4)
	require.NoError(t, err)
	leaky, err := LeakyLMS(x, d, 0.05, 4, 0)
	require.NoError(t, err)

	assert.Equal(t, lms.Output, leaky.Output)
	assert.Equal(t, lms.Error, leaky.Error)
	assert.Equal(t, lms.Weights, leaky.Weights)
}

// TestCascade_SingleStageKeepsItsOwnConvention checks that a one-stage
// cascade and single-stage LMS are different filters: mu versus 2*mu and a
// look-back versus index-aligned window.
func TestCascade_SingleStageKeepsItsOwnConvention(t *testing.T) {
	x := testutil.Chirp(100)

	lms, err := LMS(x, x, 0.01, 2)
	require.NoError(t, err)
	cascade, err := Cascade(x, x, 0.01, 2, 1)
	require.NoError(t, err)

	assert.NotEqual(t, lms.Error, cascade.Error)

	// Hand-replay the cascade: w += mu*e*x over x[n-1], x[n-2].
	w := []float64{0, 0}
	for n := 2; n < len(x); n++ {
		tap := []float64{x[n-1], x[n-2]}
		y := w[0]*tap[0] + w[1]*tap[1]
		e := x[n] - y
		w[0] += 0.01 * e * tap[0]
		w[1] += 0.01 * e * tap[1]
		require.InDelta(t, e, cascade.Error[n], 1e-12, "n=%d", n)
	}
}

// TestLMS_ConstantSignal feeds reference = desired = 5.0. The tap vector is
// [5, 5] from n = 2 on, so the residual contracts by 1 - 2*mu*50 each step.
func TestLMS_ConstantSignal(t *testing.T) {
	x := testutil.Constant(10, 5)

	t.Run("converges", func(t *testing.T) {
		res, err := LMS(x, x, 0.001, 2)
		require.NoError(t, err)
		testutil.AssertMonotonic(t, res.Output[2:])
		testutil.AssertStrictlyDecreasing(t, res.Error[2:])
		assert.Less(t, res.Output[9], 5.0)
	})

	t.Run("diverges_at_mu_0.1", func(t *testing.T) {
		res, err := LMS(x, x, 0.1, 2)
		require.NoError(t, err, "divergence is not an error")
		assert.Greater(t, math.Abs(res.Error[9]), math.Abs(res.Error[2]))
	})
}

func TestLeakyLMS_AlternatingSignalConverges(t *testing.T) {
	x := testutil.Alternating(100)
	d := make([]float64, len(x))
	for i := range d {
		d[i] = 0.95*x[i] + 0.001*math.Cos(1.3*float64(i))
	}

	res, err := LeakyLMS(x, d, 0.1, 2, 0.0001)
	require.NoError(t, err)

	var first, second float64
	for n, e := range res.Error {
		if n < 50 {
			first += e * e
		} else {
			second += e * e
		}
	}
	assert.Less(t, second, first)
}

func TestLeakyLMS_UnstableParametersFailBeforeProcessing(t *testing.T) {
	_, err := LeakyLMS(testutil.Chirp(10), testutil.Chirp(10), 0.5, 2, 2)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "step_size*leakage")
}

func TestFilter_RecordWeights(t *testing.T) {
	f, err := New(&Config{Algorithm: AlgorithmLMS, TapLength: 2, StepSize: 0.01, RecordWeights: true})
	require.NoError(t, err)

	x := testutil.Chirp(30)
	res, err := f.Process(x, x)
	require.NoError(t, err)
	require.Len(t, res.WeightHistory, 30)
	assert.Equal(t, []float64{0, 0}, res.WeightHistory[0])
	assert.Equal(t, res.Weights[0], res.WeightHistory[29])
	assert.Equal(t, res.Weights, f.Weights())

	cascade, err := New(&Config{Algorithm: AlgorithmCascade, TapLength: 2, StepSize: 0.01, Stages: 2, RecordWeights: true})
	require.NoError(t, err)
	res, err = cascade.Process(x, x)
	require.NoError(t, err)
	assert.Nil(t, res.WeightHistory)
	assert.Len(t, res.Weights, 2)
}

func TestFilter_ResetAndReuse(t *testing.T) {
	f, err := New(&Config{Algorithm: AlgorithmLeakyLMS, TapLength: 3, StepSize: 0.02, Leakage: 0.01})
	require.NoError(t, err)

	x := testutil.Chirp(80)
	first, err := f.Process(x, x)
	require.NoError(t, err)
	assert.NotEqual(t, []float64{0, 0, 0}, f.Weights()[0])

	f.Reset()
	assert.Equal(t, [][]float64{{0, 0, 0}}, f.Weights())

	second, err := f.Process(x, x)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFilter_Info(t *testing.T) {
	f, err := New(&Config{Algorithm: AlgorithmLeakyLMS, TapLength: 4, StepSize: 0.1, Leakage: 0.01})
	require.NoError(t, err)
	info := f.Info()
	assert.Equal(t, AlgorithmLeakyLMS, info.Algorithm)
	assert.Equal(t, 0.01, info.Leakage)
	assert.Equal(t, 1, info.Stages)
	assert.Equal(t, "2mu", info.Gradient)
	assert.Equal(t, "index-aligned", info.Window)

	c, err := New(DefaultCascadeConfig())
	require.NoError(t, err)
	info = c.Info()
	assert.Equal(t, 2, info.Stages)
	assert.Equal(t, "mu", info.Gradient)
	assert.Equal(t, "look-back", info.Window)
	assert.Zero(t, info.Leakage)
}

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]Algorithm{
		"lms":       AlgorithmLMS,
		"LMS":       AlgorithmLMS,
		"Leaky LMS": AlgorithmLeakyLMS,
		"leaky":     AlgorithmLeakyLMS,
		" cascade ": AlgorithmCascade,
	}
	for name, want := range tests {
		got, err := ParseAlgorithm(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseAlgorithm("rls")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestAlgorithm_String(t *testing.T) {
	assert.Equal(t, "LMS", AlgorithmLMS.String())
	assert.Equal(t, "Leaky LMS", AlgorithmLeakyLMS.String())
	assert.Equal(t, "Cascade", AlgorithmCascade.String())
	assert.Equal(t, "Algorithm(7)", Algorithm(7).String())
}
