package metric

import "math"

// CorrelationFunc compares the label vector of a list with its predicted
// score vector. Both slices have the same length, at least two, and the
// labels are not all equal.
type CorrelationFunc func(labels, preds []float64) float64

// correlationScorer scores a whole list with a CorrelationFunc and has no
// specialized swap routine, so SwapChange rescores the list once per pair.
type correlationScorer struct {
	name string
	corr CorrelationFunc
}

func newCorrelationScorer(name string, corr CorrelationFunc) *correlationScorer {
	return &correlationScorer{name: name, corr: corr}
}

func (s *correlationScorer) Name() string { return s.name }

func (s *correlationScorer) Copy() Scorer {
	return newCorrelationScorer(s.name, s.corr)
}

func (s *correlationScorer) Score(rl RankedList) float64 {
	if allSameLabel(rl) {
		return 0
	}
	labels, preds := vectors(rl)
	v := s.corr(labels, preds)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (s *correlationScorer) ScoreAll(lists []RankedList) float64 {
	return meanScore(s, lists)
}

func (s *correlationScorer) SwapChange(rl RankedList) [][]float64 {
	return rescoreSwapChange(rl, s.Score)
}

func vectors(rl RankedList) (labels, preds []float64) {
	n := rl.Size()
	labels = make([]float64, n)
	preds = make([]float64, n)
	for i := 0; i < n; i++ {
		labels[i] = rl.LabelAt(i)
		preds[i] = rl.ScoreAt(i)
	}
	return labels, preds
}

// rescoreSwapChange swaps every pair in place, rescores the whole list and
// records the new value relative to the unswapped one. Each swap is undone
// before the next pair. It costs one full scoring per pair.
func rescoreSwapChange(rl RankedList, score func(RankedList) float64) [][]float64 {
	n := rl.Size()
	changes := newMatrix(n)
	if n < 2 || allSameLabel(rl) {
		return changes
	}

	base := score(rl)
	if base == 0 || math.IsNaN(base) || math.IsInf(base, 0) {
		return changes
	}

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			rl.Swap(i, j)
			v := score(rl) / base
			rl.Swap(i, j)
			changes[i][j] = v
			changes[j][i] = v
		}
	}
	return changes
}
