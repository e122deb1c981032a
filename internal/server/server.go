package server

import (
		"context"
		"errors"
		"net/http"

		"InfraPricing/internal/config"
		"InfraPricing/internal/handlers/health"
		"InfraPricing/internal/handlers/landing"
		"InfraPricing/internal/handlers/pricing"
		"InfraPricing/internal/metrics"
		"InfraPricing/internal/middleware"
		"InfraPricing/web"
		"github.com/gorilla/mux"
		"github.com/prometheus/client_golang/prometheus"
		"github.com/sirupsen/logrus"
		"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
		config  config.Config
		log     *logrus.Entry
		metrics *metrics.Metrics
		pricing *pricing.Handler
		http    *http.Server
}

func New(cfg config.Config, log *logrus.Entry) *Server {
		m := metrics.New(prometheus.NewRegistry())

		s := &Server{
				config:  cfg,
				log:     log,
				metrics: m,
				pricing: pricing.NewHandler(log, m),
		}
		s.http = &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      s.Handler(),
				ReadTimeout:  cfg.ReadTimeout,
				WriteTimeout: cfg.WriteTimeout,
				IdleTimeout:  cfg.IdleTimeout,
		}
		return s
}

// Handler builds the full routing tree. Request IDs are assigned outside the
// router so unmatched paths get one too.
func (s *Server) Handler() http.Handler {
		router := mux.NewRouter()
		router.Use(middleware.Logging(s.log), middleware.Metrics(s.metrics))

		// Serve static files
		router.PathPrefix("/static/").Handler(http.StripPrefix("/static/",
				http.FileServer(http.FS(web.Static()))))

		// Health check endpoint
		router.HandleFunc("/health", health.Handler(s.config.InstanceName)).Methods(http.MethodGet)

		if s.config.MetricsEnabled {
				router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
		}

		// Application routes
		router.HandleFunc("/", landing.Handler).Methods(http.MethodGet)
		s.pricing.RegisterRoutes(router)

		return otelhttp.NewHandler(middleware.RequestID(router), "pricing")
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
		errCh := make(chan error, 1)
		go func() {
				errCh <- s.http.ListenAndServe()
		}()

		select {
		case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
						return nil
				}
				return err
		case <-ctx.Done():
		}

		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()
		return s.http.Shutdown(shutdownCtx)
}
