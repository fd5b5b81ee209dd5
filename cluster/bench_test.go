package cluster_test

import (
	"testing"

	"github.com/selivant/harmonia/cluster"
	"github.com/selivant/harmonia/resonance"
)

// benchmarkBuild clusters p pages with the given worker count.
func benchmarkBuild(b *testing.B, pages, workers int) {
	data := make([]byte, pages*resonance.PageSize)
	for i := range data {
		data[i] = byte((i*7 + 13) % 256)
	}
	opts := cluster.DefaultOptions()
	opts.Workers = workers

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		view, err := cluster.Build(data, &opts)
		if err != nil {
			b.Fatalf("Build failed: %v", err)
		}
		view.Destroy()
	}
}

// BenchmarkBuild_64Pages_Sequential clusters 16 KiB sequentially.
func BenchmarkBuild_64Pages_Sequential(b *testing.B) { benchmarkBuild(b, 64, 1) }

// BenchmarkBuild_1KPages_Sequential clusters 256 KiB sequentially.
func BenchmarkBuild_1KPages_Sequential(b *testing.B) { benchmarkBuild(b, 1024, 1) }

// BenchmarkBuild_1KPages_4Workers clusters 256 KiB with 4 workers.
func BenchmarkBuild_1KPages_4Workers(b *testing.B) { benchmarkBuild(b, 1024, 4) }

// BenchmarkBuild_16KPages_8Workers clusters 4 MiB with 8 workers.
func BenchmarkBuild_16KPages_8Workers(b *testing.B) { benchmarkBuild(b, 16384, 8) }
