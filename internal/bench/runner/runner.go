package runner

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/DjordjeVuckovic/rankcorr/internal/metric"
	"github.com/DjordjeVuckovic/rankcorr/internal/ranklist"
	"golang.org/x/sync/errgroup"
)

// Verifier is a scorer that can also produce its swap-change matrix the slow
// way, by swapping and rescoring every pair.
type Verifier interface {
	metric.Scorer
	ReferenceSwapChange(rl metric.RankedList) [][]float64
}

type Runner struct {
	config Config
}

// New returns a runner for cfg. At least one worker and one timed run are
// always used.
func New(cfg Config) *Runner {
	cfg.Workers = max(cfg.Workers, 1)
	cfg.Runs = max(cfg.Runs, 1)
	cfg.WarmupRuns = max(cfg.WarmupRuns, 0)
	return &Runner{config: cfg}
}

// Run generates ListsPerSize random lists for every configured size and
// times SwapChange on each. When the scorer is a Verifier the reference
// matrix is timed too and the two are compared entry by entry.
func (r *Runner) Run(ctx context.Context, scorer metric.Scorer) (*BenchmarkResult, error) {
	br := &BenchmarkResult{Metric: scorer.Name(), Config: r.config}
	if _, ok := scorer.(Verifier); !ok {
		slog.Info("Scorer has no reference implementation, timing only", "metric", scorer.Name())
	}

	for _, n := range r.config.Sizes {
		gen := NewGenerator(r.config.Seed+uint64(n), r.config.TieDensity)
		lists := gen.Lists(fmt.Sprintf("n%d", n), n, r.config.ListsPerSize)

		sr, err := r.runSize(ctx, scorer, n, lists)
		if err != nil {
			return nil, fmt.Errorf("run size %d: %w", n, err)
		}
		if sr.Mismatches > 0 {
			slog.Warn("swap change disagrees with reference", "size", n, "lists", sr.Mismatches, "max_abs_diff", sr.MaxAbsDiff)
		}
		br.Sizes = append(br.Sizes, *sr)
	}

	return br, nil
}

func (r *Runner) runSize(
	ctx context.Context,
	scorer metric.Scorer,
	n int,
	lists []*ranklist.List,
) (*SizeResult, error) {
	results := make([]ListResult, len(lists))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)
	for i, l := range lists {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// each worker owns its list: SwapChange must never see another
			// goroutine's swaps
			results[i] = r.measure(scorer.Copy(), l)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sr := &SizeResult{Size: n, Lists: results}
	rls := make([]metric.RankedList, len(lists))
	for i, lr := range results {
		rls[i] = lists[i]
		sr.MaxAbsDiff = math.Max(sr.MaxAbsDiff, lr.MaxAbsDiff)
		if lr.Mismatch {
			sr.Mismatches++
		}
		if !lr.Restored {
			sr.Unrestored++
		}
		sr.Timing.Add(lr.Timing)
	}
	sr.Aggregate = scorer.ScoreAll(rls)
	return sr, nil
}

func (r *Runner) measure(scorer metric.Scorer, l *ranklist.List) ListResult {
	lr := ListResult{ListID: l.ID(), Size: l.Size(), Score: scorer.Score(l)}
	before := l.Entries()

	for i := 0; i < r.config.WarmupRuns; i++ {
		_ = scorer.SwapChange(l)
	}

	var got [][]float64
	lr.Timing.Incremental = r.timed(func() { got = scorer.SwapChange(l) })
	lr.Restored = slices.Equal(before, l.Entries())

	verifier, ok := scorer.(Verifier)
	if !ok {
		return lr
	}

	var want [][]float64
	lr.Timing.Reference = r.timed(func() { want = verifier.ReferenceSwapChange(l) })
	lr.Restored = lr.Restored && slices.Equal(before, l.Entries())

	lr.Verified = true
	lr.MaxAbsDiff = maxAbsDiff(got, want)
	lr.Mismatch = lr.MaxAbsDiff > r.config.Tolerance || len(got) != len(want)
	return lr
}

// timed calls fn Runs times and records each call.
func (r *Runner) timed(fn func()) Samples {
	samples := make(Samples, 0, r.config.Runs)
	for range r.config.Runs {
		start := time.Now()
		fn()
		samples = append(samples, time.Since(start))
	}
	return samples
}

func maxAbsDiff(a, b [][]float64) float64 {
	var d float64
	for i := range min(len(a), len(b)) {
		for j := range min(len(a[i]), len(b[i])) {
			d = math.Max(d, math.Abs(a[i][j]-b[i][j]))
		}
	}
	return d
}
