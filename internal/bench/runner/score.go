package runner

import (
	"context"

	"github.com/DjordjeVuckovic/rankcorr/internal/metric"
	"golang.org/x/sync/errgroup"
)

// ScoreParallel scores every list with up to workers goroutines. The lists
// must be distinct values; the scorer itself is shared.
func ScoreParallel(ctx context.Context, scorer metric.Scorer, lists []metric.RankedList, workers int) ([]float64, error) {
	scores := make([]float64, len(lists))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, rl := range lists {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scores[i] = scorer.Score(rl)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
