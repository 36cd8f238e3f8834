package perceptron_test

import (
	"testing"

	"github.com/katalvlaran/perceptron/dataset"
	"github.com/katalvlaran/perceptron/perceptron"
)

func benchmarkTrain(b *testing.B, d, m int, margin float64) {
	s, err := dataset.Separable(d, m, margin, dataset.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	opts := perceptron.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		opts.Source = perceptron.NewSource(int64(n + 1))
		if _, err = perceptron.Train(s.X, s.Y, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTrain_Separable_d10_m100(b *testing.B)  { benchmarkTrain(b, 10, 100, 0.05) }
func BenchmarkTrain_Separable_d10_m1000(b *testing.B) { benchmarkTrain(b, 10, 1000, 0.05) }
func BenchmarkTrain_Separable_d50_m500(b *testing.B)  { benchmarkTrain(b, 50, 500, 0.05) }
