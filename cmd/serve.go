package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/khanhnv2901/pqcheck/internal/api"
	"github.com/khanhnv2901/pqcheck/internal/checker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the TLS proxy route and readiness API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cliConfig.Serve
		out := cmd.OutOrStdout()

		// Initialize structured logger
		zl, err := newLogger(debug)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer func() {
			if err := zl.Sync(); err != nil {
				fmt.Fprintf(os.Stderr, "failed to sync logger: %v\n", err)
			}
		}()

		var tp trace.TracerProvider
		if traceSpans {
			provider := newTracerProvider(zl)
			defer func() { _ = provider.Shutdown(context.Background()) }()
			tp = provider
		}

		server := newAPIServer(cfg, zl, tp)
		defer server.Close()

		httpServer := &http.Server{
			Addr:         cfg.Addr,
			Handler:      server,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		// Channel to listen for errors from the server
		serverErrors := make(chan error, 1)

		// Start server in a goroutine
		go func() {
			fmt.Fprintf(out, "%s API server listening on %s\n", colorInfo("→"), cfg.Addr)
			fmt.Fprintf(out, "%s Press Ctrl+C to gracefully shutdown\n", colorInfo("→"))
			serverErrors <- httpServer.ListenAndServe()
		}()

		// Channel to listen for interrupt signals
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)

		// Block until we receive a signal or an error
		select {
		case err := <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
		case sig := <-shutdown:
			fmt.Fprintf(out, "\n%s Received signal %v, initiating graceful shutdown...\n", colorInfo("→"), sig)

			// Create context with timeout for shutdown
			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()

			// Attempt graceful shutdown
			if err := httpServer.Shutdown(ctx); err != nil {
				// Force close if graceful shutdown fails
				if closeErr := httpServer.Close(); closeErr != nil {
					return fmt.Errorf("failed to gracefully shutdown server: %w (close error: %v)", err, closeErr)
				}
				return fmt.Errorf("failed to gracefully shutdown server: %w", err)
			}

			fmt.Fprintf(out, "%s Server shutdown complete\n", colorInfo("✓"))
		}

		return nil
	},
}

func newAPIServer(cfg ServeRuntimeConfig, zl *zap.Logger, tp trace.TracerProvider) *api.Server {
	timeoutSecs := cliConfig.Defaults.TimeoutSecs
	return api.NewServer(api.Config{
		Probe: &probeAPIService{source: &checker.ProbeSource{Timeout: sourceConfig(timeoutSecs).Timeout}},
		Analysis: &analysisAPIService{
			defaultSource: cliConfig.Defaults.Source,
			timeoutSecs:   timeoutSecs,
			logger:        zl,
			tracer:        tp,
		},
		Health:      healthAPIService{},
		AuthToken:   cfg.AuthToken,
		Logger:      zl,
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimit,
		RateBurst:   cfg.RateBurst,
	})
}

func init() {
	flags := serveCmd.Flags()
	flags.StringVar(&cliConfig.Serve.Addr, "addr", cliConfig.Serve.Addr, "Address for the API server")
	flags.StringVar(&cliConfig.Serve.AuthToken, "auth-token", "", "Optional shared secret for API requests (X-Auth-Token)")
	flags.DurationVar(&cliConfig.Serve.ShutdownTimeout, "shutdown-timeout", cliConfig.Serve.ShutdownTimeout, "Graceful shutdown timeout")
	flags.StringSliceVar(&cliConfig.Serve.CORSOrigins, "cors-origins", []string{}, "Allowed CORS origins (empty = allow all)")
	flags.IntVar(&cliConfig.Serve.RateLimit, "rate-limit", cliConfig.Serve.RateLimit, "Rate limit per IP (requests/second, 0 = disabled)")
	flags.IntVar(&cliConfig.Serve.RateBurst, "rate-burst", cliConfig.Serve.RateBurst, "Rate limit burst size")
}

type probeAPIService struct {
	source *checker.ProbeSource
}

func (s *probeAPIService) Probe(ctx context.Context, domain string) (*checker.Observation, error) {
	return s.source.Observe(ctx, domain)
}

type analysisAPIService struct {
	defaultSource string
	timeoutSecs   int
	logger        *zap.Logger
	tracer        trace.TracerProvider
}

func (s *analysisAPIService) Analyze(ctx context.Context, domain, source string) (*checker.Report, error) {
	if source == "" {
		source = s.defaultSource
	}
	if _, err := checker.ParseTarget(domain); err != nil {
		return nil, err
	}
	src, err := checker.NewSource(source, sourceConfig(s.timeoutSecs))
	if err != nil {
		return nil, err
	}
	analyzer := checker.NewAnalyzer(src, s.logger)
	if err := analyzer.WithOTel(s.tracer, otel.GetMeterProvider()); err != nil {
		return nil, err
	}
	return analyzer.Analyze(ctx, domain), nil
}

type healthAPIService struct{}

func (healthAPIService) Check(ctx context.Context) error {
	return ctx.Err()
}
