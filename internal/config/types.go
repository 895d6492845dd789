package config

// Config describes one scoring session. It is loaded and validated before
// any list is scored.
type Config struct {
	Metric             string         `yaml:"metric"`
	Aggregate          string         `yaml:"aggregate"`
	Normalization      string         `yaml:"normalization"`
	RelevantCounts     map[string]int `yaml:"relevant_counts"`
	Judgments          string         `yaml:"judgments"`
	RelevanceThreshold int            `yaml:"relevance_threshold"`
	Bench              BenchConfig    `yaml:"bench"`
}

type BenchConfig struct {
	Sizes        []int   `yaml:"sizes"`
	ListsPerSize int     `yaml:"lists_per_size"`
	TieDensity   float64 `yaml:"tie_density"`
	Seed         uint64  `yaml:"seed"`
	Warmup       int     `yaml:"warmup"`
	Runs         int     `yaml:"runs"`
	Workers      int     `yaml:"workers"`
	Tolerance    float64 `yaml:"tolerance"`
}

var DefaultSizes = []int{10, 50, 100, 200}

const (
	DefaultMetric             = "KTAU"
	DefaultRelevanceThreshold = 1
	DefaultListsPerSize       = 20
	DefaultTieDensity         = 0.3
	DefaultSeed               = 42
	DefaultRuns               = 1
	DefaultWorkers            = 1
	DefaultTolerance          = 1e-9
)

const (
	EnvMetric        = "RANKCORR_METRIC"
	EnvAggregate     = "RANKCORR_AGGREGATE"
	EnvNormalization = "RANKCORR_NORMALIZATION"
	EnvJudgments     = "RANKCORR_JUDGMENTS"
)
