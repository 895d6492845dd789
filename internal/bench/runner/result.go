package runner

// ListResult records one generated list: its score, how far the incremental
// swap-change matrix strayed from the reference one, and whether the list
// came back in its original order.
type ListResult struct {
	ListID     string
	Size       int
	Score      float64
	MaxAbsDiff float64
	Verified   bool
	Mismatch   bool
	Restored   bool
	Timing     Timing
}

type SizeResult struct {
	Size       int
	Lists      []ListResult
	Aggregate  float64
	MaxAbsDiff float64
	Mismatches int
	Unrestored int
	Timing     Timing
}

type BenchmarkResult struct {
	Metric string
	Config Config
	Sizes  []SizeResult
}

// Failed reports whether any list disagreed with the reference or was left
// reordered.
func (br *BenchmarkResult) Failed() bool {
	for _, s := range br.Sizes {
		if s.Mismatches > 0 || s.Unrestored > 0 {
			return true
		}
	}
	return false
}
