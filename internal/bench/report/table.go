package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Swap-Change Benchmark (%s) ===\n\n", r.Meta.Metric)
	writeVerificationTable(tw, r)
	writeTimingTable(tw, r)

	tw.Flush()
}

func writeVerificationTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Verification (%d lists per size, tie density %.2f, tolerance %g)\n\n",
		r.Config.ListsPerSize, r.Config.TieDensity, r.Config.Tolerance)

	header := []string{"Size", "Lists", "Aggregate", "Max |Δ|", "Mismatches", "Reordered", "Status"}
	writeHeader(tw, header)

	for _, e := range r.Sizes {
		status := "OK"
		switch {
		case e.Mismatches > 0 || e.Unrestored > 0:
			status = "FAIL"
		case !e.Verified:
			status = "UNVERIFIED"
		}
		row := []string{
			fmt.Sprintf("%d", e.Size),
			fmt.Sprintf("%d", e.Lists),
			fmt.Sprintf("%.4f", e.Aggregate),
			fmt.Sprintf("%.2e", e.MaxAbsDiff),
			fmt.Sprintf("%d/%d", e.Mismatches, e.Lists),
			fmt.Sprintf("%d/%d", e.Unrestored, e.Lists),
			status,
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeTimingTable(tw *tabwriter.Writer, r *Report) {
	fmt.Fprintf(tw, "Timing (per swap-change call, %d runs per list)\n\n", r.Config.Runs)

	header := []string{"Size", "Incr p50", "Incr p99", "Ref p50", "Ref p99", "Speedup", "Calls"}
	writeHeader(tw, header)

	for _, e := range r.Sizes {
		speedup := "-"
		if e.Speedup > 0 {
			speedup = fmt.Sprintf("%.1fx", e.Speedup)
		}
		row := []string{
			fmt.Sprintf("%d", e.Size),
			fmtDuration(e.Incremental.Median),
			fmtDuration(e.Incremental.P99),
			fmtDuration(e.Reference.Median),
			fmtDuration(e.Reference.P99),
			speedup,
			fmt.Sprintf("%d", e.Incremental.Calls),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

// WriteScores prints one row per list followed by the aggregate.
func WriteScores(w io.Writer, metricName, aggregateMode string, entries []ScoreEntry, aggregate float64) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== %s scores ===\n\n", metricName)
	writeHeader(tw, []string{"List", "Size", "Score"})
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%.4f\n", e.ListID, e.Size, e.Score)
	}
	fmt.Fprintf(tw, "\nAggregate (%s): %.4f\n", aggregateMode, aggregate)

	tw.Flush()
}

func writeHeader(tw *tabwriter.Writer, header []string) {
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))
}

func fmtDuration(d time.Duration) string {
	if d == 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
