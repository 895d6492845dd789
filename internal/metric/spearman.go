package metric

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/stat"
)

const SpearmanName = "SPEAR"

// NewSpearman scores a list by Spearman's rho: Pearson's r over the
// fractional ranks of labels and predicted scores.
func NewSpearman() Scorer {
	return newCorrelationScorer(SpearmanName, spearman)
}

func spearman(labels, preds []float64) float64 {
	return stat.Correlation(fractionalRanks(labels), fractionalRanks(preds), nil)
}

// fractionalRanks assigns 1-based ranks in ascending order; tied values
// share the mean of the ranks they span.
func fractionalRanks(x []float64) []float64 {
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(x[a], x[b])
	})

	ranks := make([]float64, len(x))
	for start := 0; start < len(idx); {
		end := start + 1
		for end < len(idx) && x[idx[end]] == x[idx[start]] {
			end++
		}
		// positions start..end-1 hold ranks start+1..end
		avg := float64(start+end+1) / 2
		for _, i := range idx[start:end] {
			ranks[i] = avg
		}
		start = end
	}
	return ranks
}
