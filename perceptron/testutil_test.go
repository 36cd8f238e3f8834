package perceptron_test

import (
	"testing"

	"github.com/katalvlaran/perceptron/matrix"
	"github.com/katalvlaran/perceptron/perceptron"
	"github.com/stretchr/testify/require"
)

// twoPoints is the canonical scenario: columns (1,-1) and (1,1), labels -1, +1.
func twoPoints(t testing.TB) (*matrix.Dense, []float64) {
	t.Helper()
	X, err := matrix.NewDenseFromColumns([][]float64{{1, -1}, {1, 1}})
	require.NoError(t, err)

	return X, []float64{-1, 1}
}

// lastSource always corrects the largest violated index.
var lastSource = perceptron.SourceFunc(func(idx []int) int { return idx[len(idx)-1] })

// requireTraceInvariants checks the structural properties every Result must have:
// trajectory/risk lengths, zero start, risk bounds, and that each step is a
// perceptron update on a sample violated by the previous weights.
func requireTraceInvariants(t *testing.T, X *matrix.Dense, Y []float64, useBias bool, res *perceptron.Result) {
	t.Helper()

	require.Len(t, res.Trajectory, res.Steps+1)
	require.Len(t, res.Risks, res.Steps+1)
	require.Equal(t, res.Trajectory[res.Steps], res.Weights)

	Xb, err := perceptron.Augment(X, useBias)
	require.NoError(t, err)
	dim := X.Rows()
	if useBias {
		dim++
	}

	require.Equal(t, make([]float64, dim), res.Trajectory[0], "w_0 must be the zero vector")
	for t0, w := range res.Trajectory {
		require.Len(t, w, dim, "w_%d has wrong dimension", t0)
		c, err := perceptron.Constraints(Xb, Y, w)
		require.NoError(t, err)
		require.Equal(t, perceptron.EmpiricalRisk(c), res.Risks[t0])
		require.GreaterOrEqual(t, res.Risks[t0], 0.0)
		require.LessOrEqual(t, res.Risks[t0], 1.0)
	}

	for s := 0; s < res.Steps; s++ {
		prev, next := res.Trajectory[s], res.Trajectory[s+1]
		c, err := perceptron.Constraints(Xb, Y, prev)
		require.NoError(t, err)

		found := false
		for _, i := range perceptron.ViolatedIndices(c) {
			xi, err := Xb.Col(i)
			require.NoError(t, err)
			want, err := matrix.AddScaled(prev, Y[i], xi)
			require.NoError(t, err)
			if equalVec(want, next) {
				found = true
				break
			}
		}
		require.True(t, found, "step %d is not an update on a violated sample", s+1)
	}

	require.Equal(t, res.FinalRisk() == 0, res.Converged)
}

func equalVec(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
