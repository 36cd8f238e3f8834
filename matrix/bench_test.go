package matrix_test

import (
	"testing"

	"github.com/katalvlaran/perceptron/matrix"
)

// benchmarkVecMat measures the constraint kernel on a d×m matrix.
func benchmarkVecMat(b *testing.B, d, m int) {
	X, err := matrix.NewDense(d, m)
	if err != nil {
		b.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < d; i++ {
		for j := 0; j < m; j++ {
			_ = X.Set(i, j, float64((i+1)*(j%7)-3))
		}
	}
	w := make([]float64, d)
	for i := range w {
		w[i] = float64(i%3) - 1
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = matrix.VecMat(w, X); err != nil {
			b.Fatalf("VecMat: %v", err)
		}
	}
}

func BenchmarkVecMat_10x1000(b *testing.B)  { benchmarkVecMat(b, 10, 1000) }
func BenchmarkVecMat_100x1000(b *testing.B) { benchmarkVecMat(b, 100, 1000) }
