package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/rankcorr/internal/apperr"
	"github.com/DjordjeVuckovic/rankcorr/internal/metric"
	"github.com/DjordjeVuckovic/rankcorr/pkg/config/env"
	"gopkg.in/yaml.v3"
)

// Load reads the session file at path (defaults only when path is empty),
// applies RANKCORR_* environment overrides, including those from a .env
// file, and validates the result.
func Load(path string) (*Config, error) {
	if err := env.LoadDotEnv(".env"); err != nil {
		return nil, apperr.NewConfigWrap("env", "load .env", err)
	}

	var cfg *Config
	if path == "" {
		cfg = &Config{}
	} else {
		loaded, err := readFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		if cfg.Judgments != "" && !filepath.IsAbs(cfg.Judgments) {
			cfg.Judgments = filepath.Join(filepath.Dir(path), cfg.Judgments)
		}
	}

	ApplyEnv(cfg, os.Getenv)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadFromFile(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NewConfigWrap("", "read session file", err)
	}
	return unmarshal(data)
}

func Parse(data []byte) (*Config, error) {
	cfg, err := unmarshal(data)
	if err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func unmarshal(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, apperr.NewConfigWrap("", "parse session YAML", err)
	}
	return &cfg, nil
}

// ApplyEnv overrides fields with any non-empty RANKCORR_* variable.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	overrides := []struct {
		key   string
		field *string
	}{
		{EnvMetric, &cfg.Metric},
		{EnvAggregate, &cfg.Aggregate},
		{EnvNormalization, &cfg.Normalization},
		{EnvJudgments, &cfg.Judgments},
	}
	for _, o := range overrides {
		if v := getenv(o.key); v != "" {
			slog.Debug("Config overridden from environment", "key", o.key, "value", v)
			*o.field = v
		}
	}
}

func validate(cfg *Config) error {
	if cfg.Metric == "" {
		cfg.Metric = DefaultMetric
	}
	if cfg.Aggregate != "" {
		if _, err := metric.ParseAggregateMode(cfg.Aggregate); err != nil {
			return err
		}
	}
	if _, err := metric.ParseNormalization(cfg.Normalization); err != nil {
		return err
	}
	for id, c := range cfg.RelevantCounts {
		if id == "" {
			return apperr.NewConfig("relevant_counts", "empty list id")
		}
		if c < 0 {
			return apperr.NewConfig("relevant_counts", fmt.Sprintf("negative count %d for %q", c, id))
		}
	}
	if cfg.RelevanceThreshold < 0 {
		return apperr.NewConfig("relevance_threshold", "must not be negative")
	}
	if cfg.RelevanceThreshold == 0 {
		cfg.RelevanceThreshold = DefaultRelevanceThreshold
	}
	return validateBench(&cfg.Bench)
}

func validateBench(b *BenchConfig) error {
	if len(b.Sizes) == 0 {
		b.Sizes = DefaultSizes
	}
	for _, n := range b.Sizes {
		if n < 0 {
			return apperr.NewConfig("bench.sizes", fmt.Sprintf("list size must not be negative, got %d", n))
		}
	}
	if b.TieDensity < 0 || b.TieDensity >= 1 {
		return apperr.NewConfig("bench.tie_density", fmt.Sprintf("must be in [0, 1), got %g", b.TieDensity))
	}
	if b.Warmup < 0 {
		return apperr.NewConfig("bench.warmup", "must not be negative")
	}
	if b.Tolerance < 0 {
		return apperr.NewConfig("bench.tolerance", "must not be negative")
	}
	if b.ListsPerSize <= 0 {
		b.ListsPerSize = DefaultListsPerSize
	}
	if b.Seed == 0 {
		b.Seed = DefaultSeed
	}
	if b.Runs <= 0 {
		b.Runs = DefaultRuns
	}
	if b.Workers <= 0 {
		b.Workers = DefaultWorkers
	}
	if b.Tolerance == 0 {
		b.Tolerance = DefaultTolerance
	}
	return nil
}
