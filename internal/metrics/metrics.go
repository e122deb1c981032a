package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Page metrics
	PageRendersTotal *prometheus.CounterVec
	TogglesTotal     *prometheus.CounterVec
	CTARedirects     *prometheus.CounterVec
}

// New creates the collectors and registers them with registry.
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pricing_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		PageRendersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_page_renders_total",
				Help: "Pricing page renders by billing period shown",
			},
			[]string{"billing"},
		),
		TogglesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_toggles_total",
				Help: "Billing toggle flips by resulting billing period",
			},
			[]string{"billing"},
		),
		CTARedirects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricing_cta_redirects_total",
				Help: "Call to action redirects by plan",
			},
			[]string{"plan"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.PageRendersTotal,
		m.TogglesTotal,
		m.CTARedirects,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
