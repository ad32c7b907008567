package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/khanhnv2901/pqcheck/internal/checker"
	sharedErrors "github.com/khanhnv2901/pqcheck/internal/shared/errors"
)

var analyzeTargetsFile string

var analyzeCmd = &cobra.Command{
	Use:   "analyze DOMAIN...",
	Short: "Observe one or more domains and report their post-quantum readiness",
	Long: `Analyze observes each domain with the selected source and classifies the
negotiated algorithms.

Sources:
  probe   dial the domain over TLS and read the negotiated parameters
  lookup  query a certificate-transparency log and the TLS Observatory

A domain that cannot be observed is reported with status ERROR and a red
verdict; this is not a command failure.`,
	Example: `  pqcheck analyze example.com cloudflare.com
  pqcheck analyze --source lookup -f json example.com
  pqcheck analyze --targets-file domains.txt --concurrency 8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cliConfig.Analyze

		format, err := parseOutputFormat(cfg.Format)
		if err != nil {
			return err
		}

		targets, err := collectTargets(args, analyzeTargetsFile)
		if err != nil {
			return err
		}

		source, err := checker.NewSource(cfg.Source, sourceConfig(cfg.TimeoutSecs))
		if err != nil {
			return err
		}

		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		var tp trace.TracerProvider
		if traceSpans {
			provider := newTracerProvider(logger.Desugar())
			defer func() { _ = provider.Shutdown(context.Background()) }()
			tp = provider
		}

		reports, elapsed := runAnalysis(ctx, cmd, source, targets, cfg, tp)

		if cfg.HistoryFile != "" {
			if err := appendHistory(cfg.HistoryFile, newHistoryRecord(source.Name(), reports, elapsed)); err != nil {
				logger.Warnw("history_write_failed", "path", cfg.HistoryFile, "error", err)
			}
		}

		out := cmd.OutOrStdout()
		if format != formatText {
			return writeStructured(out, format, reports)
		}
		for i, r := range reports {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printReport(out, r)
		}
		if len(reports) > 1 {
			fmt.Fprintln(out)
			printSummary(out, checker.Summarize(reports))
		}
		return nil
	},
}

func runAnalysis(ctx context.Context, cmd *cobra.Command, source checker.Source, targets []string, cfg AnalyzeRuntimeConfig, tp trace.TracerProvider) ([]*checker.Report, time.Duration) {
	analyzer := checker.NewAnalyzer(source, logger.Desugar())
	if err := analyzer.WithOTel(tp, otel.GetMeterProvider()); err != nil {
		logger.Warnw("otel_setup_failed", "error", err)
	}
	runner := &checker.Runner{
		Concurrency: cfg.Concurrency,
		RateLimit:   cfg.RateLimit,
		Timeout:     time.Duration(cfg.TimeoutSecs) * time.Second,
	}
	// The lookup source waits on the Observatory between requests.
	if source.Name() == checker.SourceLookup {
		runner.Timeout += time.Duration(cliConfig.Sources.ObservatoryWaitSecs) * time.Second
	}

	var progress *progressPrinter
	if cfg.Progress {
		progress = newProgressPrinter(cmd.ErrOrStderr(), len(targets), source.Name())
		progress.Start()
	}

	logger.Infow("analysis_started", "targets", len(targets), "source", source.Name(), "concurrency", runner.Concurrency)
	start := time.Now()
	reports := runner.Run(ctx, targets, analyzer, func(target string, report *checker.Report, d time.Duration) {
		if progress != nil {
			progress.Increment(report.PQStatus, report.Failed(), d.Seconds())
		}
	})
	elapsed := time.Since(start)

	if progress != nil {
		progress.Stop()
	}
	summary := checker.Summarize(reports)
	logger.Infow("analysis_finished",
		"targets", summary.Total,
		"green", summary.Green,
		"yellow", summary.Yellow,
		"red", summary.Red,
		"errors", summary.Errors,
		"duration", elapsed,
	)
	return reports, elapsed
}

// collectTargets merges positional domains with those listed in file (one per
// line, # comments allowed) and validates each of them.
func collectTargets(args []string, file string) ([]string, error) {
	targets := make([]string, 0, len(args))
	targets = append(targets, args...)

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open targets file: %w", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			targets = append(targets, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read targets file: %w", err)
		}
	}

	if len(targets) == 0 {
		return nil, &TargetError{Err: sharedErrors.ErrEmptyTarget}
	}
	for _, t := range targets {
		if _, err := checker.ParseTarget(t); err != nil {
			return nil, &TargetError{Target: t, Err: err}
		}
	}
	return targets, nil
}

func init() {
	flags := analyzeCmd.Flags()
	flags.StringVar(&cliConfig.Analyze.Source, "source", cliConfig.Analyze.Source, "observation source: probe or lookup")
	flags.StringVarP(&cliConfig.Analyze.Format, "format", "f", cliConfig.Analyze.Format, "output format: text, json or yaml")
	flags.IntVar(&cliConfig.Analyze.Concurrency, "concurrency", cliConfig.Analyze.Concurrency, "max concurrent analyses")
	flags.IntVar(&cliConfig.Analyze.RateLimit, "rate-limit", cliConfig.Analyze.RateLimit, "targets started per second (0 = unlimited)")
	flags.IntVar(&cliConfig.Analyze.TimeoutSecs, "timeout", cliConfig.Analyze.TimeoutSecs, "per-target timeout in seconds")
	flags.BoolVar(&cliConfig.Analyze.Progress, "progress", false, "show a live progress line on stderr")
	flags.StringVar(&cliConfig.Analyze.HistoryFile, "history", "", "append a JSON line summarizing this run to the given file")
	flags.StringVar(&analyzeTargetsFile, "targets-file", "", "read additional domains from a file, one per line")
}
