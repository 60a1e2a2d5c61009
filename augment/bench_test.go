package augment_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsom/augment"
	"github.com/katalvlaran/lvsom/som"
	"gonum.org/v1/gonum/mat"
)

// benchmarkGenerate draws 1000 rows with method from a 10×10 map fitted on
// 200 random 8-D rows.
func benchmarkGenerate(b *testing.B, method augment.Method) {
	rng := rand.New(rand.NewSource(1))
	X := mat.NewDense(200, 8, nil)
	for i := 0; i < 200; i++ {
		for j := 0; j < 8; j++ {
			X.Set(i, j, rng.NormFloat64())
		}
	}
	a, err := augment.New(10, 10, som.WithSeed(1))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	if err = a.Fit(X, 2, false); err != nil {
		b.Fatalf("Fit failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = a.Generate(1000, method); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Interpolate benchmarks forward-neighbor blending.
func BenchmarkGenerate_Interpolate(b *testing.B) { benchmarkGenerate(b, augment.Interpolate) }

// BenchmarkGenerate_SampleNeurons benchmarks noisy prototype sampling.
func BenchmarkGenerate_SampleNeurons(b *testing.B) { benchmarkGenerate(b, augment.SampleNeurons) }

// BenchmarkGenerate_Perturb benchmarks BMU-guided mixing; dominated by BMU search.
func BenchmarkGenerate_Perturb(b *testing.B) { benchmarkGenerate(b, augment.Perturb) }
