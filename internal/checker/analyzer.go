package checker

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/khanhnv2901/pqcheck/internal/pqc"
)

// failureProtocols is what a failed analysis reports in place of protocols.
var failureProtocols = []string{"Connection failed", "Domain might not exist"}

// Analyzer runs a Source and classifies what it observed.
type Analyzer struct {
	Source Source
	Logger *zap.Logger
	// Table overrides the classifier pattern table; nil uses pqc.DefaultTable.
	Table *pqc.Table

	tracer  trace.Tracer
	metrics *analyzerMetrics
	now     func() time.Time
}

// NewAnalyzer creates an analyzer for source. A nil logger discards logs.
func NewAnalyzer(source Source, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{Source: source, Logger: logger}
}

// Analyze observes target and returns its report. It never returns nil and
// never fails: if the source cannot observe the target the report has status
// ERROR, a red verdict and no classifications.
func (a *Analyzer) Analyze(ctx context.Context, target string) *Report {
	ctx, span := a.startSpan(ctx, target)
	defer span.End()

	start := time.Now()
	report := a.analyze(ctx, target)
	a.recordOTel(ctx, span, report, time.Since(start))
	return report
}

func (a *Analyzer) analyze(ctx context.Context, target string) *Report {
	logger := a.logger().With(zap.String("target", target), zap.String("source", a.Source.Name()))
	host := reportHost(target)

	logger.Debug("analysis_started")
	obs, err := a.Source.Observe(ctx, target)
	if err != nil {
		logger.Warn("analysis_failed", zap.Error(err))
		return a.failureReport(host, err)
	}

	table := a.Table
	if table == nil {
		table = pqc.DefaultTable()
	}
	crypto := table.ClassifyConnection(obs.KeyExchange, obs.Cert.SignatureAlgorithm, obs.Cipher)
	verdict := table.DeriveReadiness(crypto.KeyExchange, crypto.Signature, obs.Cipher)

	report := &Report{
		ID:           uuid.NewString(),
		Host:         host,
		Source:       a.Source.Name(),
		Status:       StatusReady,
		CheckedAt:    a.clock(),
		Protocols:    obs.Protocols,
		Cipher:       obs.Cipher,
		KeyExchange:  obs.KeyExchange,
		CertInfo:     obs.Cert,
		PQStatus:     verdict,
		Cryptography: crypto,
	}
	if obs.Host != "" {
		report.Host = obs.Host
	}
	if report.Protocols == nil {
		report.Protocols = []string{}
	}

	logger.Info("analysis_complete",
		zap.String("key_exchange", obs.KeyExchange),
		zap.String("signature", obs.Cert.SignatureAlgorithm),
		zap.String("cipher", obs.Cipher),
		zap.String("pq_status", string(verdict)),
	)
	return report
}

// FailureReport is the fixed report for a target that could not be observed.
func FailureReport(host, source string, err error) *Report {
	report := &Report{
		ID:        uuid.NewString(),
		Host:      host,
		Source:    source,
		Status:    StatusError,
		CheckedAt: time.Now().UTC(),
		Protocols: append([]string(nil), failureProtocols...),
		CertInfo:  CertInfo{Subject: host},
		PQStatus:  pqc.Red,
	}
	if err != nil {
		report.Error = err.Error()
	}
	return report
}

func (a *Analyzer) failureReport(host string, err error) *Report {
	report := FailureReport(host, a.Source.Name(), err)
	report.CheckedAt = a.clock()
	return report
}

// reportHost is the host shown in a report, falling back to the raw target.
func reportHost(target string) string {
	if host := ExtractHost(target); host != "" {
		return host
	}
	return target
}

func (a *Analyzer) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *Analyzer) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now().UTC()
}
