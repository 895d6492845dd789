package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/rankcorr/internal/bench/report"
	"github.com/DjordjeVuckovic/rankcorr/internal/bench/runner"
	"github.com/DjordjeVuckovic/rankcorr/internal/config"
	"github.com/DjordjeVuckovic/rankcorr/internal/judgment"
	"github.com/DjordjeVuckovic/rankcorr/internal/metric"
)

func main() {
	cli := parseFlags()
	if cli.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load(cli.ConfigPath)
	if err != nil {
		slog.Error("Failed to load config", "path", cli.ConfigPath, "error", err)
		os.Exit(1)
	}
	if err := cli.apply(cfg); err != nil {
		slog.Error("Invalid flags", "error", err)
		os.Exit(1)
	}

	switch cli.Mode {
	case "bench":
		runBench(ctx, cli, cfg)
	case "score":
		runScore(ctx, cfg)
	case "judge":
		runJudge(cfg)
	default:
		slog.Error("Unknown mode", "mode", cli.Mode)
		os.Exit(1)
	}
}

func newSession(cfg *config.Config) *config.Session {
	s, err := cfg.NewSession()
	if err != nil {
		slog.Error("Invalid scoring session", "error", err)
		os.Exit(1)
	}
	return s
}

func runBench(ctx context.Context, cli cliConfig, cfg *config.Config) {
	session := newSession(cfg)

	r := runner.New(runner.FromBench(cfg.Bench))
	result, err := r.Run(ctx, session.Scorer)
	if err != nil {
		slog.Error("Benchmark failed", "error", err)
		os.Exit(1)
	}

	rpt := report.Generate(result)
	report.WriteTable(rpt, os.Stdout)

	if cli.Output != "" {
		if err := report.SaveJSON(rpt, cli.Output); err != nil {
			slog.Error("Failed to write JSON report", "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", cli.Output)
	}

	if result.Failed() {
		slog.Error("Incremental swap change disagrees with the reference")
		os.Exit(2)
	}
}

func runScore(ctx context.Context, cfg *config.Config) {
	session := newSession(cfg)

	var lists []metric.RankedList
	var entries []report.ScoreEntry
	for _, n := range cfg.Bench.Sizes {
		gen := runner.NewGenerator(cfg.Bench.Seed+uint64(n), cfg.Bench.TieDensity)
		for _, l := range gen.Lists(fmt.Sprintf("n%d", n), n, cfg.Bench.ListsPerSize) {
			lists = append(lists, l)
			entries = append(entries, report.ScoreEntry{ListID: l.ID(), Size: l.Size()})
		}
	}

	scores, err := runner.ScoreParallel(ctx, session.Scorer, lists, cfg.Bench.Workers)
	if err != nil {
		slog.Error("Scoring failed", "error", err)
		os.Exit(1)
	}
	for i := range entries {
		entries[i].Score = scores[i]
	}

	aggregate := session.Scorer.ScoreAll(lists)
	report.WriteScores(os.Stdout, session.Scorer.Name(), session.Options.Aggregate.String(), entries, aggregate)
}

func runJudge(cfg *config.Config) {
	if cfg.Judgments == "" {
		slog.Error("Judge mode requires --judgments")
		os.Exit(1)
	}

	jf, err := judgment.LoadFromFile(cfg.Judgments)
	if err != nil {
		slog.Error("Failed to read judgment file", "path", cfg.Judgments, "error", err)
		os.Exit(1)
	}

	counts := jf.RelevantCounts(cfg.RelevanceThreshold)
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Query\tRelevant (grade >= %d)\n", cfg.RelevanceThreshold)
	for _, id := range ids {
		fmt.Fprintf(tw, "%s\t%d\n", id, counts[id])
	}
	tw.Flush()
}
