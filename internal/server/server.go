package server

import (
	"context"
	"net/http"

	"github.com/marketlens/marketlens/internal/logger"
	"github.com/marketlens/marketlens/internal/models"
	"github.com/marketlens/marketlens/internal/repositories"
	"github.com/marketlens/marketlens/internal/tracking"
)

type Server struct {
	config    *models.Config
	log       *logger.Logger
	sales     repositories.SalesRepository
	users     repositories.UserRepository
	publisher tracking.Publisher
	cache     *responseCache
	limiter   *ipRateLimiter
	http      *http.Server
}

func New(config *models.Config, log *logger.Logger, sales repositories.SalesRepository, users repositories.UserRepository, publisher tracking.Publisher) *Server {
	s := &Server{
		config:    config,
		log:       log,
		sales:     sales,
		users:     users,
		publisher: publisher,
		cache:     newResponseCache(config.CacheTTL),
		limiter:   newIPRateLimiter(config.RateLimitPerMinute, config.RateLimitBurst),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/channels", s.withMiddleware(s.handleChannelSummary))
	mux.HandleFunc("/api/market-share/monthly", s.withMiddleware(s.handleMonthlyMarketShare))
	mux.HandleFunc("/api/market-share/weekly", s.withMiddleware(s.handleWeeklyMarketShare))
	mux.HandleFunc("/api/cuisines", s.withMiddleware(s.handleCuisineBreakdown))
	mux.HandleFunc("/api/areas/signals", s.withMiddleware(s.handleAreaSignals))
	mux.HandleFunc("/api/geo/resolve", s.withMiddleware(s.handleGeoResolve))
	mux.HandleFunc("/api/admin/users", s.withMiddleware(s.handleUsers))
	mux.HandleFunc("/api/admin/users/role", s.withMiddleware(s.handleUserRole))
	mux.HandleFunc("/api/admin/users/deactivate", s.withMiddleware(s.handleUserDeactivate))

	s.http = &http.Server{
		Addr:    config.ServerAddress,
		Handler: mux,
	}
	return s
}

func (s *Server) ListenAndServe() error {
	s.log.WithField("address", s.config.ServerAddress).Info("starting server")
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// withMiddleware wraps a handler with request logging and per-IP rate
// limiting.
func (s *Server) withMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reqLog := s.log.WithRequest(r)

		if !s.limiter.allow(clientIP(r)) {
			reqLog.Warn("rate limit exceeded")
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		reqLog.Debug("request received")
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// track publishes a usage event; failures are logged and swallowed so
// tracking never affects a response.
func (s *Server) track(eventType, path string) {
	event := tracking.NewEvent(eventType, "", path)
	if err := s.publisher.Publish(event); err != nil {
		s.log.WithField("error", err.Error()).Warn("failed to publish tracking event")
	}
}
