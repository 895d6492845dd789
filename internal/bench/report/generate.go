package report

import (
	"time"

	"github.com/DjordjeVuckovic/rankcorr/internal/bench/runner"
)

func Generate(br *runner.BenchmarkResult) *Report {
	r := &Report{
		Meta: BenchMeta{
			Version:     Version,
			Timestamp:   time.Now().UTC(),
			Metric:      br.Metric,
			Environment: NewEnvironmentInfo(),
		},
		Config: ReportConfig{
			ListsPerSize: br.Config.ListsPerSize,
			TieDensity:   br.Config.TieDensity,
			Seed:         br.Config.Seed,
			Runs:         br.Config.Runs,
			Workers:      br.Config.Workers,
			Tolerance:    br.Config.Tolerance,
		},
		Sizes: make([]SizeEntry, 0, len(br.Sizes)),
	}

	for _, sr := range br.Sizes {
		entry := SizeEntry{
			Size:        sr.Size,
			Lists:       len(sr.Lists),
			Aggregate:   sr.Aggregate,
			MaxAbsDiff:  sr.MaxAbsDiff,
			Mismatches:  sr.Mismatches,
			Unrestored:  sr.Unrestored,
			Verified:    sr.Timing.Verified(),
			Incremental: sr.Timing.Incremental.Summary(),
			Reference:   sr.Timing.Reference.Summary(),
			Speedup:     sr.Timing.Speedup(),
		}
		r.Sizes = append(r.Sizes, entry)
	}

	return r
}
