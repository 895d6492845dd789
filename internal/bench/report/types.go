package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/rankcorr/internal/bench/runner"
)

const Version = "1"

type Report struct {
	Meta   BenchMeta    `json:"meta"`
	Config ReportConfig `json:"config"`
	Sizes  []SizeEntry  `json:"sizes"`
}

type BenchMeta struct {
	Version     string          `json:"version"`
	Timestamp   time.Time       `json:"timestamp"`
	Metric      string          `json:"metric"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type ReportConfig struct {
	ListsPerSize int     `json:"lists_per_size"`
	TieDensity   float64 `json:"tie_density"`
	Seed         uint64  `json:"seed"`
	Runs         int     `json:"runs"`
	Workers      int     `json:"workers"`
	Tolerance    float64 `json:"tolerance"`
}

type SizeEntry struct {
	Size        int            `json:"size"`
	Lists       int            `json:"lists"`
	Aggregate   float64        `json:"aggregate"`
	MaxAbsDiff  float64        `json:"max_abs_diff"`
	Mismatches  int            `json:"mismatches"`
	Unrestored  int            `json:"unrestored"`
	Verified    bool           `json:"verified"`
	Incremental runner.Summary `json:"incremental"`
	Reference   runner.Summary `json:"reference"`
	// Speedup is the reference median over the incremental median; 0 when
	// either was not measured.
	Speedup float64 `json:"speedup"`
}

// ScoreEntry is one row of a score-mode run.
type ScoreEntry struct {
	ListID string  `json:"list_id"`
	Size   int     `json:"size"`
	Score  float64 `json:"score"`
}
