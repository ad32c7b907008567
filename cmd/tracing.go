package cmd

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.uber.org/zap"
)

// zapSpanExporter writes finished spans to the structured log.
type zapSpanExporter struct {
	logger *zap.Logger
}

func (e *zapSpanExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		fields := []zap.Field{
			zap.String("span", span.Name()),
			zap.String("trace_id", span.SpanContext().TraceID().String()),
			zap.String("span_id", span.SpanContext().SpanID().String()),
			zap.Duration("duration", span.EndTime().Sub(span.StartTime())),
			zap.String("status", span.Status().Code.String()),
		}
		for _, kv := range span.Attributes() {
			fields = append(fields, attributeField(kv))
		}
		e.logger.Info("span", fields...)
	}
	return nil
}

func (e *zapSpanExporter) Shutdown(ctx context.Context) error {
	return nil
}

func attributeField(kv attribute.KeyValue) zap.Field {
	return zap.String(string(kv.Key), kv.Value.Emit())
}

// newTracerProvider builds a tracer provider that logs every span through
// logger as soon as it ends.
func newTracerProvider(logger *zap.Logger) *sdktrace.TracerProvider {
	res, err := resource.New(
		context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String("pqcheck"),
			semconv.ServiceVersionKey.String(Version),
		),
	)
	if err != nil {
		logger.Warn("failed to create resource, using default", zap.Error(err))
		res = resource.Default()
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(&zapSpanExporter{logger: logger})),
		sdktrace.WithResource(res),
	)
}
