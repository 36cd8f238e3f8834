package perceptron_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/perceptron/dataset"
	"github.com/katalvlaran/perceptron/perceptron"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict(t *testing.T) {
	cases := []struct {
		name    string
		w, x    []float64
		useBias bool
		want    float64
	}{
		{"positive", []float64{1, 1}, []float64{1, 0.5}, false, 1},
		{"negative", []float64{1, 1}, []float64{-1, 0.5}, false, -1},
		{"zero score is negative", []float64{1, -1}, []float64{2, 2}, false, -1},
		{"bias shifts decision", []float64{1, 0, -0.5}, []float64{0.4, 9}, true, -1},
		{"bias positive", []float64{1, 0, -0.5}, []float64{0.6, 9}, true, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := perceptron.Predict(tc.w, tc.x, tc.useBias)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := perceptron.Predict([]float64{1, 1}, []float64{1, 1}, true)
	assert.ErrorIs(t, err, perceptron.ErrDimensionMismatch)
	_, err = perceptron.Predict([]float64{1}, []float64{1, 1}, false)
	assert.ErrorIs(t, err, perceptron.ErrDimensionMismatch)
}

func TestClassify(t *testing.T) {
	X, Y := twoPoints(t)

	got, err := perceptron.Classify(X, []float64{0, 2}, false)
	require.NoError(t, err)
	assert.Equal(t, Y, got)

	_, err = perceptron.Classify(X, []float64{0, 2}, true)
	assert.ErrorIs(t, err, perceptron.ErrDimensionMismatch)
}

func TestMarginAndMistakeBound(t *testing.T) {
	X, Y := twoPoints(t)

	// u = (0,1): constraints are 1 and 1, ‖u‖ = 1, R = √2.
	gamma, radius, err := perceptron.Margin(X, Y, []float64{0, 1}, false)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, gamma, 1e-12)
	assert.InDelta(t, 1.4142135623730951, radius, 1e-12)

	bound, err := perceptron.MistakeBound(X, Y, []float64{0, 1}, false)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, bound, 1e-12)

	_, _, err = perceptron.Margin(X, Y, []float64{0, 0}, false)
	assert.ErrorIs(t, err, perceptron.ErrNotSeparating)
	_, err = perceptron.MistakeBound(X, Y, []float64{1, 0}, false)
	assert.ErrorIs(t, err, perceptron.ErrNotSeparating)
	_, err = perceptron.MistakeBound(X, Y, []float64{math.Inf(1), 0}, false)
	assert.ErrorIs(t, err, perceptron.ErrNonFinite)
}

func TestMistakeBound_AffineSeparator(t *testing.T) {
	s, err := dataset.Affine(2, 40, -0.3, 0.1, dataset.WithSeed(17))
	require.NoError(t, err)
	require.True(t, s.Bias)

	bound, err := perceptron.MistakeBound(s.X, s.Y, s.Separator, true)
	require.NoError(t, err)
	assert.Greater(t, bound, 0.0)

	res, err := perceptron.Train(s.X, s.Y, perceptron.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.LessOrEqual(t, float64(res.Steps), bound)
}
