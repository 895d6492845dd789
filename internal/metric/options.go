package metric

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/rankcorr/internal/apperr"
)

// AggregateMode selects how ScoreAll combines several lists.
type AggregateMode int

const (
	AggregateUnset AggregateMode = iota
	// AggregatePerList averages the per-list scores, so every list weighs
	// the same regardless of how many pairs it has.
	AggregatePerList
	// AggregatePooled sums the pair counts of all lists and divides once,
	// weighting lists by their number of untied pairs.
	AggregatePooled
)

func (m AggregateMode) String() string {
	switch m {
	case AggregatePerList:
		return "per_list"
	case AggregatePooled:
		return "pooled"
	default:
		return "unset"
	}
}

func ParseAggregateMode(s string) (AggregateMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "per_list", "per-list", "average":
		return AggregatePerList, nil
	case "pooled", "pool":
		return AggregatePooled, nil
	case "":
		return AggregateUnset, apperr.NewConfig("aggregate", "mode is not set")
	default:
		return AggregateUnset, apperr.NewConfig("aggregate", fmt.Sprintf("unknown mode %q", s))
	}
}

// Normalization selects the divisor applied to raw swap deltas.
type Normalization int

const (
	// NormalizeBaseline divides by the current concordant minus discordant
	// count.
	NormalizeBaseline Normalization = iota
	// NormalizeRelevantCount divides by the number of relevant documents of
	// the list, taken from RelevantCounts or counted in the list itself.
	NormalizeRelevantCount
	// NormalizeTotalPairs divides by the number of untied pairs, which makes
	// each entry the change in the metric value itself.
	NormalizeTotalPairs
)

func (n Normalization) String() string {
	switch n {
	case NormalizeBaseline:
		return "baseline"
	case NormalizeRelevantCount:
		return "relevant_count"
	case NormalizeTotalPairs:
		return "total_pairs"
	default:
		return fmt.Sprintf("normalization(%d)", int(n))
	}
}

func ParseNormalization(s string) (Normalization, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "baseline":
		return NormalizeBaseline, nil
	case "relevant_count", "relevant-count", "relevant":
		return NormalizeRelevantCount, nil
	case "total_pairs", "total-pairs", "pairs":
		return NormalizeTotalPairs, nil
	default:
		return NormalizeBaseline, apperr.NewConfig("normalization", fmt.Sprintf("unknown strategy %q", s))
	}
}

// Options configures a scorer. It is read once at construction.
type Options struct {
	Aggregate      AggregateMode
	Normalization  Normalization
	RelevantCounts *RelevantCounts
}
