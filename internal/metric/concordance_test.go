package metric

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/DjordjeVuckovic/rankcorr/internal/apperr"
	"github.com/DjordjeVuckovic/rankcorr/internal/ranklist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKTau(t *testing.T, opts Options) *ConcordanceScorer {
	t.Helper()
	if opts.Aggregate == AggregateUnset {
		opts.Aggregate = AggregatePerList
	}
	s, err := NewConcordance(opts)
	require.NoError(t, err)
	return s
}

func randomList(r *rand.Rand, id string, n int) *ranklist.List {
	grades := 1 + r.IntN(n+1)
	labels := make([]float64, n)
	for i := range labels {
		labels[i] = float64(r.IntN(grades))
	}
	return ranklist.FromLabels(id, labels...)
}

func TestConcordanceScore(t *testing.T) {
	tests := []struct {
		name   string
		labels []float64
		want   float64
	}{
		{name: "empty", labels: nil, want: 0},
		{name: "single entry", labels: []float64{3}, want: 0},
		{name: "perfectly ordered", labels: []float64{3, 2, 1}, want: 1},
		{name: "perfectly reversed", labels: []float64{1, 2, 3}, want: -1},
		{name: "all labels equal", labels: []float64{5, 5, 5, 5}, want: 0},
		{name: "ties are ignored", labels: []float64{2, 2, 1}, want: 1},
		{name: "mixed", labels: []float64{1, 3, 2}, want: -1.0 / 3.0},
	}

	s := newKTau(t, Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(ranklist.FromLabels("q", tt.labels...))
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestCountPairs(t *testing.T) {
	s := newKTau(t, Options{})

	st := s.CountPairs(ranklist.FromLabels("q", 1, 3, 2, 2))

	// (1,3)D (1,2)D (1,2)D (3,2)C (3,2)C (2,2)T
	assert.Equal(t, PairStats{Concordant: 2, Discordant: 3, Tied: 1}, st)
	assert.Equal(t, 5, st.Total())
	assert.Equal(t, -1, st.Numerator())
}

func TestSwapChange_ReversedList(t *testing.T) {
	s := newKTau(t, Options{})
	l := ranklist.FromLabels("q", 1, 2, 3)

	changes := s.SwapChange(l)

	// Swapping the ends turns a score of -1 into 1. The numerator moves by
	// +6 against a baseline of -3.
	assert.InDelta(t, -2.0, changes[0][2], 1e-12)
	assert.InDelta(t, (1.0-(-1.0))/(-1.0), changes[0][2], 1e-12)
	// [2,1,3] has numerator -1, so the delta is +2.
	assert.InDelta(t, 2.0/-3.0, changes[0][1], 1e-12)
	assert.InDelta(t, 2.0/-3.0, changes[1][2], 1e-12)
}

func TestSwapChange_OrderedList(t *testing.T) {
	s := newKTau(t, Options{Normalization: NormalizeTotalPairs})
	l := ranklist.FromLabels("q", 3, 2, 1)

	changes := s.SwapChange(l)

	assert.InDelta(t, -2.0, changes[0][2], 1e-12)
	assert.InDelta(t, -2.0/3.0, changes[0][1], 1e-12)
	assert.InDelta(t, -2.0/3.0, changes[2][1], 1e-12)
}

func TestSwapChange_Degenerate(t *testing.T) {
	s := newKTau(t, Options{})

	for n := 0; n <= 8; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			labels := make([]float64, n)
			for i := range labels {
				labels[i] = 5.0
			}
			l := ranklist.FromLabels("q", labels...)

			assert.Zero(t, s.Score(l))
			changes := s.SwapChange(l)
			require.Len(t, changes, n)
			for i := range changes {
				require.Len(t, changes[i], n)
				for j := range changes[i] {
					assert.Zero(t, changes[i][j])
				}
			}
		})
	}
}

func TestSwapChange_ShortLists(t *testing.T) {
	s := newKTau(t, Options{})

	assert.Empty(t, s.SwapChange(ranklist.FromLabels("q")))
	assert.Empty(t, s.ReferenceSwapChange(ranklist.FromLabels("q")))
	assert.Equal(t, [][]float64{}, s.SwapChange(ranklist.FromLabels("q", 2)))
	assert.Equal(t, [][]float64{}, s.ReferenceSwapChange(ranklist.FromLabels("q", 2)))
	assert.Zero(t, s.Score(ranklist.FromLabels("q", 2)))
}

func TestSwapChange_ZeroBaseline(t *testing.T) {
	// (0,1)D (0,2)D (0,3)T (1,2)T (1,3)C (2,3)C: numerator 0, four pairs.
	l := ranklist.FromLabels("q", 1, 2, 2, 1)

	baseline := newKTau(t, Options{}).SwapChange(l)
	for i := range baseline {
		for j := range baseline[i] {
			assert.Zero(t, baseline[i][j])
		}
	}

	byPairs := newKTau(t, Options{Normalization: NormalizeTotalPairs}).SwapChange(l)
	// [2,1,2,1]: (0,1)C (0,2)T (0,3)C (1,2)D (1,3)T (2,3)C → numerator 2
	assert.InDelta(t, 2.0/4.0, byPairs[0][1], 1e-12)
}

func TestSwapChange_RelevantCount(t *testing.T) {
	counts, err := NewRelevantCounts(map[string]int{"q1": 4, "q3": 0})
	require.NoError(t, err)
	s := newKTau(t, Options{Normalization: NormalizeRelevantCount, RelevantCounts: counts})

	t.Run("count from map", func(t *testing.T) {
		changes := s.SwapChange(ranklist.FromLabels("q1", 0, 1, 2))
		assert.InDelta(t, 6.0/4.0, changes[0][2], 1e-12)
	})

	t.Run("fallback to positive labels in list", func(t *testing.T) {
		changes := s.SwapChange(ranklist.FromLabels("q2", 0, 1, 2))
		assert.InDelta(t, 6.0/2.0, changes[0][2], 1e-12)
	})

	t.Run("zero count yields zero matrix", func(t *testing.T) {
		changes := s.SwapChange(ranklist.FromLabels("q3", 0, 1, 2))
		assert.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, changes)
	})
}

func TestSwapChange_MatchesReference(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	counts, err := NewRelevantCounts(map[string]int{"fixed": 5})
	require.NoError(t, err)

	normalizations := []Normalization{NormalizeBaseline, NormalizeRelevantCount, NormalizeTotalPairs}
	for _, norm := range normalizations {
		s := newKTau(t, Options{Normalization: norm, RelevantCounts: counts})

		t.Run(norm.String(), func(t *testing.T) {
			for n := 2; n <= 50; n++ {
				for trial := 0; trial < 4; trial++ {
					id := fmt.Sprintf("n%d-t%d", n, trial)
					if trial == 0 {
						id = "fixed"
					}
					l := randomList(r, id, n)
					before := l.Entries()

					got := s.SwapChange(l)
					require.Equal(t, before, l.Entries(), "SwapChange must not reorder the list")
					want := s.ReferenceSwapChange(l)
					require.Equal(t, before, l.Entries(), "ReferenceSwapChange must restore the list")

					require.Len(t, got, n)
					for i := 0; i < n; i++ {
						assert.Zero(t, got[i][i])
						for j := 0; j < n; j++ {
							require.InDelta(t, want[i][j], got[i][j], 1e-9, "list %s labels %v pair (%d,%d)", id, l.Labels(), i, j)
							require.Equal(t, got[i][j], got[j][i])
						}
					}
				}
			}
		})
	}
}

func TestSwapChange_TotalPairsIsScoreDifference(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	s := newKTau(t, Options{Normalization: NormalizeTotalPairs})

	for n := 2; n <= 20; n++ {
		l := randomList(r, "q", n)
		changes := s.SwapChange(l)
		base := s.Score(l)

		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				l.Swap(i, j)
				swapped := s.Score(l)
				l.Swap(i, j)
				assert.InDelta(t, swapped-base, changes[i][j], 1e-9)
			}
		}
	}
}

func TestConcordanceScoreAll(t *testing.T) {
	tied := ranklist.FromLabels("tied", 2, 2, 2)
	ordered := ranklist.FromLabels("ordered", 3, 2, 1)
	lists := []RankedList{tied, ordered}

	perList := newKTau(t, Options{Aggregate: AggregatePerList})
	pooled := newKTau(t, Options{Aggregate: AggregatePooled})

	assert.InDelta(t, 0.5, perList.ScoreAll(lists), 1e-12)
	assert.InDelta(t, 1.0, pooled.ScoreAll(lists), 1e-12)
}

func TestConcordanceScoreAll_PooledWeightsByPairs(t *testing.T) {
	// 3 pairs all concordant, 1 pair discordant
	lists := []RankedList{
		ranklist.FromLabels("a", 3, 2, 1),
		ranklist.FromLabels("b", 0, 1),
	}

	perList := newKTau(t, Options{Aggregate: AggregatePerList})
	pooled := newKTau(t, Options{Aggregate: AggregatePooled})

	assert.InDelta(t, 0.0, perList.ScoreAll(lists), 1e-12)
	assert.InDelta(t, 2.0/4.0, pooled.ScoreAll(lists), 1e-12)
}

func TestConcordanceScoreAll_Empty(t *testing.T) {
	assert.Zero(t, newKTau(t, Options{Aggregate: AggregatePerList}).ScoreAll(nil))
	assert.Zero(t, newKTau(t, Options{Aggregate: AggregatePooled}).ScoreAll(nil))
	assert.Zero(t, newKTau(t, Options{Aggregate: AggregatePooled}).ScoreAll([]RankedList{
		ranklist.FromLabels("tied", 1, 1),
	}))
}

func TestNewConcordance_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "aggregate unset", opts: Options{}},
		{name: "aggregate out of range", opts: Options{Aggregate: AggregateMode(9)}},
		{name: "normalization out of range", opts: Options{Aggregate: AggregatePooled, Normalization: Normalization(7)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewConcordance(tt.opts)
			assert.Nil(t, s)
			assert.True(t, apperr.IsConfig(err), "want ConfigError, got %v", err)
		})
	}
}

func TestConcordanceCopy(t *testing.T) {
	counts, err := NewRelevantCounts(map[string]int{"q1": 2})
	require.NoError(t, err)
	s := newKTau(t, Options{Aggregate: AggregatePooled, Normalization: NormalizeRelevantCount, RelevantCounts: counts})

	c, ok := s.Copy().(*ConcordanceScorer)
	require.True(t, ok)

	assert.NotSame(t, s, c)
	assert.Same(t, s.relCounts, c.relCounts)
	assert.Equal(t, AggregatePooled, c.Aggregate())
	assert.Equal(t, NormalizeRelevantCount, c.Normalization())
	assert.Equal(t, ConcordanceName, c.Name())
}
