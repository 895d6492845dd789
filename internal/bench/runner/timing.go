package runner

import (
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Samples are the wall-clock durations of individual swap-change calls.
type Samples []time.Duration

// Timing holds the samples of both swap-change implementations measured on
// the same lists. Reference stays empty when the scorer has no reference
// implementation.
type Timing struct {
	Incremental Samples
	Reference   Samples
}

// Add appends the samples of o to t.
func (t *Timing) Add(o Timing) {
	t.Incremental = append(t.Incremental, o.Incremental...)
	t.Reference = append(t.Reference, o.Reference...)
}

func (t Timing) Verified() bool { return len(t.Reference) > 0 }

// Speedup is the median reference call over the median incremental call, or
// 0 when either side was not measured.
func (t Timing) Speedup() float64 {
	inc, ref := t.Incremental.Summary().Median, t.Reference.Summary().Median
	if inc <= 0 || ref <= 0 {
		return 0
	}
	return float64(ref) / float64(inc)
}

// Summary condenses samples into the figures printed by reports.
type Summary struct {
	Calls  int           `json:"calls"`
	Min    time.Duration `json:"min"`
	Median time.Duration `json:"median"`
	P90    time.Duration `json:"p90"`
	P99    time.Duration `json:"p99"`
	Max    time.Duration `json:"max"`
	Mean   time.Duration `json:"mean"`
	Stddev time.Duration `json:"stddev"`
}

// Summary computes order statistics with the empirical quantile: the
// reported value is always one of the measured durations.
func (s Samples) Summary() Summary {
	if len(s) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(s))
	for i, d := range s {
		xs[i] = float64(d)
	}
	slices.Sort(xs)

	at := func(p float64) time.Duration {
		return time.Duration(stat.Quantile(p, stat.Empirical, xs, nil))
	}
	sum := Summary{
		Calls:  len(xs),
		Min:    time.Duration(xs[0]),
		Median: at(0.5),
		P90:    at(0.9),
		P99:    at(0.99),
		Max:    time.Duration(xs[len(xs)-1]),
	}
	if len(xs) == 1 {
		sum.Mean = sum.Min
		return sum
	}
	mean, std := stat.MeanStdDev(xs, nil)
	sum.Mean = time.Duration(mean)
	sum.Stddev = time.Duration(std)
	return sum
}
