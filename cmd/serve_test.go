package cmd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	sharedErrors "github.com/khanhnv2901/pqcheck/internal/shared/errors"
)

func TestNewAPIServerClassifyRoute(t *testing.T) {
	preserveConfig(t)

	server := newAPIServer(ServeRuntimeConfig{}, zaptest.NewLogger(t), nil)
	defer server.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/classify?sym=CHACHA20-POLY1305", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"pqStatus":"yellow"`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestNewAPIServerProbeRoute(t *testing.T) {
	preserveConfig(t)
	cliConfig.Defaults.TimeoutSecs = 5

	backend := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer backend.Close()

	server := newAPIServer(ServeRuntimeConfig{}, zaptest.NewLogger(t), nil)
	defer server.Close()

	target := strings.TrimPrefix(backend.URL, "https://")
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/check-tls/"+target, nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"protocols":["TLS 1.`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestAnalysisAPIServiceErrors(t *testing.T) {
	svc := &analysisAPIService{defaultSource: "probe", timeoutSecs: 1, logger: zaptest.NewLogger(t)}

	if _, err := svc.Analyze(context.Background(), "example.com", "smoke-signals"); !errors.Is(err, sharedErrors.ErrUnsupportedSource) {
		t.Fatalf("expected ErrUnsupportedSource, got %v", err)
	}
	if _, err := svc.Analyze(context.Background(), "exam!ple.com", ""); !errors.Is(err, sharedErrors.ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
}

func TestHealthAPIService(t *testing.T) {
	if err := (healthAPIService{}).Check(context.Background()); err != nil {
		t.Fatalf("expected healthy, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := (healthAPIService{}).Check(ctx); err == nil {
		t.Fatal("expected cancelled context to report unhealthy")
	}
}
