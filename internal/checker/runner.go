package checker

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/khanhnv2901/pqcheck/internal/pqc"
)

// ReportFunc is called once per finished target, from the worker goroutine.
type ReportFunc func(target string, report *Report, duration time.Duration)

// Runner orchestrates the execution of analyses with concurrency and rate limiting
type Runner struct {
	Concurrency int           // Maximum number of concurrent analyses
	RateLimit   int           // Targets started per second (global, 0 = unlimited)
	Timeout     time.Duration // Timeout for each target
}

// Run analyzes every target using a worker pool. Reports are returned in the
// order of targets.
func (r *Runner) Run(ctx context.Context, targets []string, analyzer *Analyzer, fn ReportFunc) []*Report {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if r.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(r.RateLimit), r.RateLimit)
	}

	// Worker pool
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	reports := make([]*Report, len(targets))

	for i, target := range targets {
		wg.Add(1)
		go func(i int, t string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			start := time.Now()

			if err := limiter.Wait(ctx); err != nil {
				report := analyzer.failureReport(reportHost(t), err)
				reports[i] = report
				if fn != nil {
					fn(t, report, time.Since(start))
				}
				return
			}

			checkCtx := ctx
			if r.Timeout > 0 {
				var cancel context.CancelFunc
				checkCtx, cancel = context.WithTimeout(ctx, r.Timeout)
				defer cancel()
			}

			report := analyzer.Analyze(checkCtx, t)
			reports[i] = report

			if fn != nil {
				fn(t, report, time.Since(start))
			}
		}(i, target)
	}

	wg.Wait()
	return reports
}

// Summary counts reports by verdict.
type Summary struct {
	Total  int `json:"total" yaml:"total"`
	Green  int `json:"green" yaml:"green"`
	Yellow int `json:"yellow" yaml:"yellow"`
	Red    int `json:"red" yaml:"red"`
	Errors int `json:"errors" yaml:"errors"`
}

// Summarize tallies verdicts and failed analyses.
func Summarize(reports []*Report) Summary {
	s := Summary{Total: len(reports)}
	for _, r := range reports {
		if r == nil {
			continue
		}
		switch r.PQStatus {
		case pqc.Green:
			s.Green++
		case pqc.Yellow:
			s.Yellow++
		default:
			s.Red++
		}
		if r.Failed() {
			s.Errors++
		}
	}
	return s
}
