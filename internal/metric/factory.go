package metric

import (
	"fmt"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/rankcorr/internal/apperr"
)

var names = []string{ConcordanceName, PearsonName, SpearmanName}

// Names lists the metric identifiers accepted by New.
func Names() []string { return slices.Clone(names) }

// New builds the scorer registered under name (case-insensitive).
//
// Pearson and Spearman always average per list and normalize swap changes by
// the unswapped value, so they reject pooled aggregation and the alternative
// normalizations instead of silently ignoring them.
func New(name string, opts Options) (Scorer, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case ConcordanceName:
		return NewConcordance(opts)
	case PearsonName:
		if err := checkCoefficientOptions(opts); err != nil {
			return nil, err
		}
		return NewPearson(), nil
	case SpearmanName:
		if err := checkCoefficientOptions(opts); err != nil {
			return nil, err
		}
		return NewSpearman(), nil
	case "":
		return nil, apperr.NewConfig("metric", "no metric configured")
	default:
		return nil, apperr.NewConfig("metric", fmt.Sprintf("unknown metric %q, want one of %s", name, strings.Join(names, ", ")))
	}
}

func checkCoefficientOptions(opts Options) error {
	if opts.Aggregate == AggregatePooled {
		return apperr.NewConfig("aggregate", "pooled aggregation needs a pair-counting metric")
	}
	if opts.Normalization != NormalizeBaseline {
		return apperr.NewConfig("normalization", fmt.Sprintf("%s is only supported by %s", opts.Normalization, ConcordanceName))
	}
	return nil
}
