package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"adspaces/internal/currency"
	applog "adspaces/internal/log"
	"adspaces/internal/records"
	"adspaces/internal/services"
)

// Server exposes the inventory over a JSON API: the expiration feed, the
// revenue dashboard, the display-currency preference, and the raw record
// collections.
type Server struct {
	http.Server
	expirations *services.ExpirationService
	revenue     *services.RevenueService
	registry    *currency.Registry
	prefStore   currency.Store
	provider    records.Provider
	rateLimiter *rateLimiter
	logger      *applog.Logger

	// now is injectable for deterministic handler tests.
	now func() time.Time

	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server. prefStore may be nil; the currency preference then lives
// only in memory for the lifetime of each request.
func NewServer(addr string, logger *applog.Logger, exp *services.ExpirationService, rev *services.RevenueService, registry *currency.Registry, prefStore currency.Store, provider records.Provider) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		expirations: exp,
		revenue:     rev,
		registry:    registry,
		prefStore:   prefStore,
		provider:    provider,
		rateLimiter: newRateLimiter(),
		logger:      logger.WithComponent(applog.ComponentHTTP),
		now:         time.Now,
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("/api/expirations", s.withAPI(s.handleExpirations))
	mux.HandleFunc("/api/dashboard", s.withAPI(s.handleDashboard))
	mux.HandleFunc("/api/currency", s.withAPI(s.handleCurrency))
	mux.HandleFunc("/api/clients", s.withAPI(s.handleClients))
	mux.HandleFunc("/api/landlords", s.withAPI(s.handleLandlords))
	mux.HandleFunc("/api/structures", s.withAPI(s.handleStructures))
	mux.HandleFunc("/api/ad-locations", s.withAPI(s.handleAdLocations))

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// withAPI adds security headers, rate limiting for mutating requests, and
// request logging around an API handler.
func (s *Server) withAPI(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ip := clientIP(r)

		requestID := generateRequestID()
		logger := s.logger.With(applog.FieldRequestID, requestID)
		ctx := applog.WithLogger(r.Context(), logger)
		r = r.WithContext(ctx)

		logger.InfoContext(ctx, "HTTP request started",
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldQuery, r.URL.RawQuery,
			applog.FieldClientIP, ip,
			applog.FieldUserAgent, r.Header.Get("User-Agent"))

		if r.Method != http.MethodGet && !s.rateLimiter.allow(ip) {
			logger.WarnContext(ctx, "Rate limit exceeded",
				applog.FieldClientIP, ip,
				applog.FieldMethod, r.Method,
				applog.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		applog.LogHTTPEnd(ctx, logger, r, rw.statusCode, time.Since(start).Milliseconds(), ip)
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// preference loads the display-currency preference for one request.
func (s *Server) preference(ctx context.Context) *currency.Preference {
	return currency.Load(ctx, s.registry, s.prefStore)
}
