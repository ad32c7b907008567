package checker

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/khanhnv2901/pqcheck/internal/checker"

// analyzerMetrics holds the instruments created by WithOTel.
type analyzerMetrics struct {
	// count is incremented once per analysis, labeled by source and verdict.
	count    metric.Int64Counter
	duration metric.Float64Histogram
}

// WithOTel instruments the analyzer. Either provider may be nil to skip that
// signal. Each Analyze call then produces one span and one set of metric
// points.
func (a *Analyzer) WithOTel(tp trace.TracerProvider, mp metric.MeterProvider) error {
	if tp != nil {
		a.tracer = tp.Tracer(instrumentationName)
	}
	if mp == nil {
		return nil
	}

	meter := mp.Meter(instrumentationName)
	metrics := &analyzerMetrics{}
	var err error

	metrics.count, err = meter.Int64Counter(
		"pqcheck.analysis.count",
		metric.WithDescription("Number of analyses performed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("create count counter: %w", err)
	}

	metrics.duration, err = meter.Float64Histogram(
		"pqcheck.analysis.duration",
		metric.WithDescription("Analysis duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return fmt.Errorf("create duration histogram: %w", err)
	}

	a.metrics = metrics
	return nil
}

func (a *Analyzer) startSpan(ctx context.Context, target string) (context.Context, trace.Span) {
	tracer := a.tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return tracer.Start(ctx, "checker.analyze", trace.WithAttributes(
		attribute.String("pqcheck.target", target),
		attribute.String("pqcheck.source", a.Source.Name()),
	))
}

func (a *Analyzer) recordOTel(ctx context.Context, span trace.Span, report *Report, elapsed time.Duration) {
	span.SetAttributes(
		attribute.String("pqcheck.host", report.Host),
		attribute.String("pqcheck.status", report.Status),
		attribute.String("pqcheck.pq_status", string(report.PQStatus)),
	)
	if report.Failed() {
		span.SetStatus(codes.Error, report.Error)
	} else {
		span.SetStatus(codes.Ok, "")
	}

	if a.metrics == nil {
		return
	}
	opts := metric.WithAttributes(
		attribute.String("source", report.Source),
		attribute.String("pq_status", string(report.PQStatus)),
		attribute.Bool("failed", report.Failed()),
	)
	a.metrics.count.Add(ctx, 1, opts)
	a.metrics.duration.Record(ctx, float64(elapsed.Milliseconds()), opts)
}
