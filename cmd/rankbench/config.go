package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/rankcorr/internal/config"
	"github.com/DjordjeVuckovic/rankcorr/internal/metric"
)

type cliConfig struct {
	ConfigPath    string
	Mode          string
	Metric        string
	Aggregate     string
	Normalization string
	Judgments     string
	Sizes         string
	Lists         int
	Workers       int
	Runs          int
	Output        string
	Verbose       bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.ConfigPath, "config", "", "Path to session YAML")
	flag.StringVar(&cfg.Mode, "mode", "bench", "Run mode: bench, score, or judge")
	flag.StringVar(&cfg.Metric, "metric", "", "Metric: "+strings.Join(metric.Names(), ", ")+" (overrides config)")
	flag.StringVar(&cfg.Aggregate, "aggregate", "", "Aggregate mode: per_list or pooled (overrides config)")
	flag.StringVar(&cfg.Normalization, "normalization", "", "Swap-change normalization: baseline, relevant_count or total_pairs")
	flag.StringVar(&cfg.Judgments, "judgments", "", "Path to judgment YAML used for relevant-document counts")
	flag.StringVar(&cfg.Sizes, "sizes", "", "List sizes, comma-separated (overrides config)")
	flag.IntVar(&cfg.Lists, "lists", 0, "Generated lists per size (overrides config)")
	flag.IntVar(&cfg.Workers, "workers", 0, "Lists processed concurrently (overrides config)")
	flag.IntVar(&cfg.Runs, "runs", 0, "Timed runs per list (overrides config)")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the JSON report")
	flag.BoolVar(&cfg.Verbose, "v", false, "Debug logging")

	flag.Parse()
	return cfg
}

// apply copies every flag that was set onto the loaded session config.
func (c cliConfig) apply(cfg *config.Config) error {
	if c.Metric != "" {
		cfg.Metric = c.Metric
	}
	if c.Aggregate != "" {
		cfg.Aggregate = c.Aggregate
	}
	if c.Normalization != "" {
		cfg.Normalization = c.Normalization
	}
	if c.Judgments != "" {
		cfg.Judgments = c.Judgments
	}
	if c.Sizes != "" {
		sizes, err := parseSizes(c.Sizes)
		if err != nil {
			return err
		}
		cfg.Bench.Sizes = sizes
	}
	if c.Lists > 0 {
		cfg.Bench.ListsPerSize = c.Lists
	}
	if c.Workers > 0 {
		cfg.Bench.Workers = c.Workers
	}
	if c.Runs > 0 {
		cfg.Bench.Runs = c.Runs
	}
	return nil
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	vals := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", p, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("size must not be negative, got %d", v)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
