package api

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/khanhnv2901/pqcheck/internal/api/middleware"
	"github.com/khanhnv2901/pqcheck/internal/checker"
	"github.com/khanhnv2901/pqcheck/internal/pqc"
	sharedErrors "github.com/khanhnv2901/pqcheck/internal/shared/errors"
)

// ProxyCipher mirrors the cipher object a Node TLS socket reports.
type ProxyCipher struct {
	Name         string `json:"name"`
	StandardName string `json:"standardName"`
	Version      string `json:"version"`
}

// ProxyResponse is the body of the /check-tls/{domain} route.
type ProxyResponse struct {
	Protocols   []string         `json:"protocols"`
	Cipher      ProxyCipher      `json:"cipher"`
	KeyExchange string           `json:"keyExchange,omitempty"`
	CertInfo    checker.CertInfo `json:"certInfo"`
}

// ProbeService performs a live TLS probe of a domain.
type ProbeService interface {
	Probe(ctx context.Context, domain string) (*checker.Observation, error)
}

// AnalysisService produces a full readiness report for a domain using the
// named source ("" selects the default).
type AnalysisService interface {
	Analyze(ctx context.Context, domain, source string) (*checker.Report, error)
}

type HealthService interface {
	Check(ctx context.Context) error
}

type Config struct {
	Probe       ProbeService
	Analysis    AnalysisService
	Health      HealthService
	AuthToken   string
	Logger      *zap.Logger
	CORSOrigins []string // Allowed CORS origins (empty = allow all)
	RateLimit   int      // Requests per second per IP (0 = disabled)
	RateBurst   int      // Burst size for rate limiter
}

type Server struct {
	cfg      Config
	mux      *http.ServeMux
	limiters *rateLimiterMap
}

func NewServer(cfg Config) *Server {
	srv := &Server{
		cfg:      cfg,
		mux:      http.NewServeMux(),
		limiters: newRateLimiterMap(),
	}
	srv.routes()
	return srv
}

// Close stops background housekeeping.
func (s *Server) Close() {
	s.limiters.stop()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Apply middleware chain: RequestID -> Logging -> RateLimit -> CORS -> Handler
	handler := middleware.RequestID(s.withLogging(s.withRateLimit(s.withCORS(s.mux))))
	handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mux.Handle("/check-tls/", s.withAuth(http.HandlerFunc(s.handleCheckTLS)))

	s.mux.Handle("/api/v1/health", s.withAuth(http.HandlerFunc(s.handleHealth)))
	s.mux.Handle("/api/v1/analyze/", s.withAuth(http.HandlerFunc(s.handleAnalyze)))
	s.mux.Handle("/api/v1/classify", s.withAuth(http.HandlerFunc(s.handleClassify)))
	s.mux.Handle("/api/v1/reference", s.withAuth(http.HandlerFunc(s.handleReference)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	if s.cfg.Health != nil {
		if err := s.cfg.Health.Check(r.Context()); err != nil {
			s.writeError(w, r, http.StatusInternalServerError, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCheckTLS is the one-route proxy: it probes the domain and reports the
// negotiated parameters, or 500 with {"error": ...} when the probe fails.
func (s *Server) handleCheckTLS(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	if s.cfg.Probe == nil {
		s.writeError(w, r, http.StatusNotFound, errors.New("probe service not available"))
		return
	}
	domain := strings.TrimPrefix(r.URL.Path, "/check-tls/")
	if domain == "" || strings.Contains(domain, "/") {
		s.writeError(w, r, http.StatusBadRequest, sharedErrors.ErrEmptyTarget)
		return
	}

	obs, err := s.cfg.Probe.Probe(r.Context(), domain)
	if err != nil {
		s.requestLogger(r).Warn("probe_failed", zap.String("domain", domain), zap.Error(err))
		// The proxy contract exposes the probe error to the caller.
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	version := ""
	if len(obs.Protocols) > 0 {
		version = obs.Protocols[0]
	}
	writeJSON(w, http.StatusOK, ProxyResponse{
		Protocols:   obs.Protocols,
		Cipher:      ProxyCipher{Name: obs.Cipher, StandardName: obs.Cipher, Version: version},
		KeyExchange: obs.KeyExchange,
		CertInfo:    obs.Cert,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	if s.cfg.Analysis == nil {
		s.writeError(w, r, http.StatusNotFound, errors.New("analysis service not available"))
		return
	}
	domain := strings.TrimPrefix(r.URL.Path, "/api/v1/analyze/")
	if domain == "" || strings.Contains(domain, "/") {
		s.writeError(w, r, http.StatusBadRequest, sharedErrors.ErrEmptyTarget)
		return
	}

	report, err := s.cfg.Analysis.Analyze(r.Context(), domain, r.URL.Query().Get("source"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, sharedErrors.ErrUnsupportedSource) ||
			errors.Is(err, sharedErrors.ErrInvalidTarget) ||
			errors.Is(err, sharedErrors.ErrEmptyTarget) {
			status = http.StatusBadRequest
		}
		s.writeError(w, r, status, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, pqc.Assess(q.Get("kex"), q.Get("sig"), q.Get("sym")))
}

func (s *Server) handleReference(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	writeJSON(w, http.StatusOK, pqc.Reference())
}

func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.RateLimit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		clientIP := clientAddress(r)
		limiter := s.limiters.getLimiter(clientIP, s.cfg.RateLimit, s.cfg.RateBurst)

		if !limiter.Allow() {
			s.requestLogger(r).Warn("rate_limit_exceeded",
				zap.String("client_ip", clientIP),
			)
			s.writeError(w, r, http.StatusTooManyRequests, errors.New("rate limit exceeded"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientAddress returns the first X-Forwarded-For hop, or the remote address,
// without its port.
func clientAddress(r *http.Request) string {
	clientIP := r.RemoteAddr
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx > 0 {
			clientIP = strings.TrimSpace(forwarded[:idx])
		} else {
			clientIP = strings.TrimSpace(forwarded)
		}
	}
	if host, _, err := net.SplitHostPort(clientIP); err == nil {
		return host
	}
	return strings.Trim(clientIP, "[]")
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		allowOrigin := "*"
		if len(s.cfg.CORSOrigins) > 0 {
			allowOrigin = ""
			for _, allowedOrigin := range s.cfg.CORSOrigins {
				if allowedOrigin == origin {
					allowOrigin = origin
					break
				}
			}
		}

		if allowOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Auth-Token, X-Request-ID")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lrw, r)

		if s.cfg.Logger != nil {
			s.cfg.Logger.Info("http_request",
				zap.String("request_id", middleware.GetRequestID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Int("status", lrw.statusCode),
				zap.Duration("duration", time.Since(start)),
				zap.Int64("bytes", lrw.bytesWritten),
			)
		}
	})
}

func (s *Server) withAuth(next http.Handler) http.Handler {
	if s.cfg.AuthToken == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Auth-Token")
		// Use constant-time comparison to prevent timing attacks
		if subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.AuthToken)) != 1 {
			s.writeError(w, r, http.StatusUnauthorized, errors.New("unauthorized"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// loggingResponseWriter wraps http.ResponseWriter to capture status code and bytes written
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int64
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	n, err := lrw.ResponseWriter.Write(b)
	lrw.bytesWritten += int64(n)
	return n, err
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	msg := err.Error()

	// For 5xx errors, return generic message and log details server-side
	if status >= 500 {
		s.requestLogger(r).Error("internal_server_error",
			zap.Error(err),
			zap.Int("status", status),
		)
		msg = "internal server error"
	}

	writeJSON(w, status, map[string]string{"error": msg})
}

// requestLogger creates a logger with request context (request ID, method, path)
func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	if s.cfg.Logger == nil {
		return zap.NewNop()
	}

	return s.cfg.Logger.With(
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, http.StatusMethodNotAllowed, errors.New("method not allowed"))
}

// rateLimiterMap manages per-IP rate limiters with automatic cleanup
type rateLimiterMap struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	done     chan struct{}
	once     sync.Once
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newRateLimiterMap() *rateLimiterMap {
	m := &rateLimiterMap{
		limiters: make(map[string]*ipLimiter),
		done:     make(chan struct{}),
	}
	go m.cleanupLoop()
	return m
}

func (m *rateLimiterMap) getLimiter(ip string, rps, burst int) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if burst <= 0 {
		burst = rps
	}
	limiter, exists := m.limiters[ip]
	if !exists {
		limiter = &ipLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
		m.limiters[ip] = limiter
	}
	limiter.lastSeen = time.Now()
	return limiter.limiter
}

func (m *rateLimiterMap) stop() {
	m.once.Do(func() { close(m.done) })
}

// cleanupLoop removes limiters that haven't been used in 5 minutes
func (m *rateLimiterMap) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep(5 * time.Minute)
		case <-m.done:
			return
		}
	}
}

func (m *rateLimiterMap) sweep(maxIdle time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for ip, limiter := range m.limiters {
		if time.Since(limiter.lastSeen) > maxIdle {
			delete(m.limiters, ip)
		}
	}
}
