package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/perceptron/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	v, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, -5, 6})
	require.NoError(t, err)
	assert.Equal(t, 12.0, v)

	_, err = matrix.Dot([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAddScaledReturnsFreshSlice(t *testing.T) {
	a := []float64{1, 1}
	out, err := matrix.AddScaled(a, -1, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2}, out)
	assert.Equal(t, []float64{1, 1}, a, "input must not be modified")

	_, err = matrix.AddScaled(a, 1, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNorm2(t *testing.T) {
	assert.Equal(t, 5.0, matrix.Norm2([]float64{3, 4}))
	assert.Equal(t, 0.0, matrix.Norm2(nil))
	assert.True(t, math.IsInf(matrix.Norm2([]float64{math.Inf(1)}), 1))
}
