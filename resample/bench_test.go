package resample_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/mattdell71/universe/cluster"
	"github.com/mattdell71/universe/resample"
	"github.com/mattdell71/universe/spectra"
)

// benchmarkRun times the full Monte Carlo loop on an n-star synthetic
// table with three populations.
func benchmarkRun(b *testing.B, n, trials, workers int, m cluster.Method) {
	const p = 4
	values := make([]float64, n*p)
	sigmas := make([]float64, n*p)
	for i := 0; i < n; i++ {
		blob := float64(i % 3)
		for j := 0; j < p; j++ {
			values[i*p+j] = blob*10 + math.Sin(float64(i*p+j))*0.2
			sigmas[i*p+j] = 0.1
		}
	}
	tbl, err := spectra.New(mat.NewDense(n, p, values), mat.NewDense(n, p, sigmas))
	if err != nil {
		b.Fatalf("table construction failed: %v", err)
	}

	opts := resample.DefaultOptions()
	opts.Trials = trials
	opts.Ks = []int{2, 3, 4}
	opts.Method = m
	opts.Workers = workers
	opts.Seed = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := resample.Run(tbl, opts); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_Agglomerative30x20 times 20 trials on 30 stars, serial.
func BenchmarkRun_Agglomerative30x20(b *testing.B) {
	benchmarkRun(b, 30, 20, 1, cluster.Agglomerative)
}

// BenchmarkRun_Agglomerative30x20Parallel times the same batch across 4 workers.
func BenchmarkRun_Agglomerative30x20Parallel(b *testing.B) {
	benchmarkRun(b, 30, 20, 4, cluster.Agglomerative)
}

// BenchmarkRun_Medoid30x20 times the non-hierarchical method (re-run per k).
func BenchmarkRun_Medoid30x20(b *testing.B) {
	benchmarkRun(b, 30, 20, 1, cluster.Medoid)
}
