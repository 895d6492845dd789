// Package metric scores ranked lists against their ground-truth labels and
// computes, for pairwise rank learners, how much the score would move if any
// two positions were swapped.
package metric

// RankedList is the ordered sequence a Scorer reads. Position 0 is the top
// of the ranking. Swap must be its own inverse.
type RankedList interface {
	ID() string
	Size() int
	LabelAt(i int) float64
	ScoreAt(i int) float64
	Swap(i, j int)
}

// Scorer is a list-quality metric.
//
// SwapChange returns an n×n symmetric matrix with a zero diagonal whose
// [i][j] entry is the normalized change in the metric if positions i and j
// were exchanged. The list is left exactly as it was given.
//
// Scoring never fails. Lists with fewer than two entries score 0 and have an
// empty swap-change matrix, since no pair can be exchanged. Lists whose
// labels are all equal score 0 and produce an all-zero matrix. Implementations hold no
// mutable state, so one Scorer may serve many goroutines as long as each
// goroutine works on its own list.
type Scorer interface {
	Name() string
	Score(rl RankedList) float64
	ScoreAll(lists []RankedList) float64
	SwapChange(rl RankedList) [][]float64
	Copy() Scorer
}

// newMatrix allocates an n×n zero matrix backed by a single slice. Lists
// with no pair get an empty matrix.
func newMatrix(n int) [][]float64 {
	if n < 2 {
		return [][]float64{}
	}
	m := make([][]float64, n)
	backing := make([]float64, n*n)
	for i := range m {
		m[i] = backing[i*n : (i+1)*n : (i+1)*n]
	}
	return m
}

func allSameLabel(rl RankedList) bool {
	n := rl.Size()
	if n == 0 {
		return true
	}
	first := rl.LabelAt(0)
	for i := 1; i < n; i++ {
		if rl.LabelAt(i) != first {
			return false
		}
	}
	return true
}

// meanScore averages per-list scores. Lists that cannot be scored count as 0.
func meanScore(s Scorer, lists []RankedList) float64 {
	if len(lists) == 0 {
		return 0
	}
	var sum float64
	for _, rl := range lists {
		sum += s.Score(rl)
	}
	return sum / float64(len(lists))
}
