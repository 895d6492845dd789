package metric

import (
	"fmt"

	"github.com/DjordjeVuckovic/rankcorr/internal/apperr"
)

const ConcordanceName = "KTAU"

// PairStats classifies every pair of positions i<j of a list. A pair is
// concordant when the higher label sits at the better (lower) position,
// discordant when it sits at the worse one, and tied when the labels match.
type PairStats struct {
	Concordant int
	Discordant int
	Tied       int
}

// Total is the number of pairs that carry ordering information.
func (p PairStats) Total() int { return p.Concordant + p.Discordant }

// Numerator is concordant minus discordant.
func (p PairStats) Numerator() int { return p.Concordant - p.Discordant }

// ConcordanceScorer is Kendall's tau between label order and list order:
// (concordant − discordant) / (concordant + discordant).
type ConcordanceScorer struct {
	aggregate     AggregateMode
	normalization Normalization
	relCounts     *RelevantCounts
}

func NewConcordance(opts Options) (*ConcordanceScorer, error) {
	switch opts.Aggregate {
	case AggregatePerList, AggregatePooled:
	case AggregateUnset:
		return nil, apperr.NewConfig("aggregate", "mode is not set")
	default:
		return nil, apperr.NewConfig("aggregate", fmt.Sprintf("unknown mode %d", int(opts.Aggregate)))
	}
	switch opts.Normalization {
	case NormalizeBaseline, NormalizeRelevantCount, NormalizeTotalPairs:
	default:
		return nil, apperr.NewConfig("normalization", fmt.Sprintf("unknown strategy %d", int(opts.Normalization)))
	}

	return &ConcordanceScorer{
		aggregate:     opts.Aggregate,
		normalization: opts.Normalization,
		relCounts:     opts.RelevantCounts,
	}, nil
}

func (s *ConcordanceScorer) Name() string { return ConcordanceName }

func (s *ConcordanceScorer) Aggregate() AggregateMode { return s.aggregate }

func (s *ConcordanceScorer) Normalization() Normalization { return s.normalization }

// Copy returns a scorer with the same settings. The relevant-count map is
// shared, not duplicated.
func (s *ConcordanceScorer) Copy() Scorer {
	c := *s
	return &c
}

func (s *ConcordanceScorer) CountPairs(rl RankedList) PairStats {
	var st PairStats
	n := rl.Size()
	for i := 0; i < n-1; i++ {
		li := rl.LabelAt(i)
		for j := i + 1; j < n; j++ {
			switch compareLabels(li, rl.LabelAt(j)) {
			case 1:
				st.Concordant++
			case -1:
				st.Discordant++
			default:
				st.Tied++
			}
		}
	}
	return st
}

func (s *ConcordanceScorer) Score(rl RankedList) float64 {
	st := s.CountPairs(rl)
	if st.Total() == 0 {
		return 0
	}
	return float64(st.Numerator()) / float64(st.Total())
}

func (s *ConcordanceScorer) ScoreAll(lists []RankedList) float64 {
	if s.aggregate != AggregatePooled {
		return meanScore(s, lists)
	}

	var num, total int
	for _, rl := range lists {
		st := s.CountPairs(rl)
		num += st.Numerator()
		total += st.Total()
	}
	if total == 0 {
		return 0
	}
	return float64(num) / float64(total)
}

// SwapChange computes the swap delta of every pair without touching rl.
//
// Exchanging positions p<q changes only comparisons that involve p or q. An
// index k outside [p, q] stands on the same side of both positions before
// and after, so its two comparisons just trade places and their sum stays
// put. Every k strictly between them flips both comparisons, as does the
// pair (p, q) itself:
//
//	delta(p, q) = -2 * (sign[p][q] + Σ_{p<k<q} (sign[p][k] + sign[k][q]))
//
// The row sums Σ sign[p][k] are prefix sums along row p and the column sums
// Σ sign[k][q] are suffix sums up column q, so the whole matrix takes two
// O(n²) passes over the sign matrix.
func (s *ConcordanceScorer) SwapChange(rl RankedList) [][]float64 {
	n := rl.Size()
	changes := newMatrix(n)
	if n < 2 {
		return changes
	}

	labels := make([]float64, n)
	for i := range labels {
		labels[i] = rl.LabelAt(i)
	}

	sign := make([]int8, n*n)
	var st PairStats
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			c := compareLabels(labels[i], labels[j])
			sign[i*n+j] = c
			switch c {
			case 1:
				st.Concordant++
			case -1:
				st.Discordant++
			}
		}
	}
	if st.Total() == 0 {
		return changes
	}
	denom := s.denominator(rl, st)
	if denom == 0 {
		return changes
	}

	// Row pass: the upper triangle holds sign[p][q] + Σ_{p<k<q} sign[p][k]
	// as exact integers until the column pass finishes it.
	for p := 0; p < n-1; p++ {
		row := sign[p*n : (p+1)*n]
		run := 0
		for q := p + 1; q < n; q++ {
			changes[p][q] = float64(int(row[q]) + run)
			run += int(row[q])
		}
	}

	for q := 1; q < n; q++ {
		col := 0
		for p := q - 1; p >= 0; p-- {
			delta := -2 * (int(changes[p][q]) + col)
			col += int(sign[p*n+q])
			v := float64(delta) / denom
			changes[p][q] = v
			changes[q][p] = v
		}
	}
	return changes
}

// ReferenceSwapChange produces the same matrix as SwapChange by performing
// every swap on rl, recounting all pairs and swapping back. It runs in O(n³)
// and exists to check SwapChange.
func (s *ConcordanceScorer) ReferenceSwapChange(rl RankedList) [][]float64 {
	n := rl.Size()
	changes := newMatrix(n)
	if n < 2 {
		return changes
	}

	st := s.CountPairs(rl)
	if st.Total() == 0 {
		return changes
	}
	denom := s.denominator(rl, st)
	if denom == 0 {
		return changes
	}

	base := st.Numerator()
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			rl.Swap(i, j)
			delta := s.CountPairs(rl).Numerator() - base
			rl.Swap(i, j)
			v := float64(delta) / denom
			changes[i][j] = v
			changes[j][i] = v
		}
	}
	return changes
}

func (s *ConcordanceScorer) denominator(rl RankedList, st PairStats) float64 {
	switch s.normalization {
	case NormalizeRelevantCount:
		return float64(s.relCounts.CountFor(rl))
	case NormalizeTotalPairs:
		return float64(st.Total())
	default:
		return float64(st.Numerator())
	}
}

func compareLabels(a, b float64) int8 {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
