package config

import (
	"log/slog"

	"github.com/DjordjeVuckovic/rankcorr/internal/apperr"
	"github.com/DjordjeVuckovic/rankcorr/internal/judgment"
	"github.com/DjordjeVuckovic/rankcorr/internal/metric"
)

// Session is a ready-to-use scorer together with the options it was built
// from.
type Session struct {
	Scorer  metric.Scorer
	Options metric.Options
}

// NewSession resolves the configured metric, loading judgments into the
// relevant-count map when a judgment file is configured. Every failure is a
// *apperr.ConfigError.
func (c *Config) NewSession() (*Session, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}

	scorer, err := metric.New(c.Metric, opts)
	if err != nil {
		return nil, err
	}

	slog.Debug("Scoring session ready",
		"metric", scorer.Name(),
		"aggregate", opts.Aggregate.String(),
		"normalization", opts.Normalization.String(),
		"relevant_counts", opts.RelevantCounts.Len(),
	)
	return &Session{Scorer: scorer, Options: opts}, nil
}

func (c *Config) Options() (metric.Options, error) {
	var opts metric.Options

	if c.Aggregate != "" {
		mode, err := metric.ParseAggregateMode(c.Aggregate)
		if err != nil {
			return opts, err
		}
		opts.Aggregate = mode
	}

	norm, err := metric.ParseNormalization(c.Normalization)
	if err != nil {
		return opts, err
	}
	opts.Normalization = norm

	counts := c.RelevantCounts
	if c.Judgments != "" {
		jf, err := judgment.LoadFromFile(c.Judgments)
		if err != nil {
			return opts, apperr.NewConfigWrap("judgments", "load "+c.Judgments, err)
		}
		counts = judgment.Merge(counts, jf, c.RelevanceThreshold)
	}
	if len(counts) > 0 {
		rc, err := metric.NewRelevantCounts(counts)
		if err != nil {
			return opts, err
		}
		opts.RelevantCounts = rc
	}
	return opts, nil
}
