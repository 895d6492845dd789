package runner

import "github.com/DjordjeVuckovic/rankcorr/internal/config"

type Config struct {
	Sizes        []int
	ListsPerSize int
	TieDensity   float64
	Seed         uint64
	WarmupRuns   int
	Runs         int
	Workers      int
	Tolerance    float64
}

func FromBench(b config.BenchConfig) Config {
	return Config{
		Sizes:        b.Sizes,
		ListsPerSize: b.ListsPerSize,
		TieDensity:   b.TieDensity,
		Seed:         b.Seed,
		WarmupRuns:   b.Warmup,
		Runs:         max(b.Runs, 1),
		Workers:      max(b.Workers, 1),
		Tolerance:    b.Tolerance,
	}
}
