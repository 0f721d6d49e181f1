package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dashboard-theme/internal/ui"
)

var (
	// MetricRequestsTotal counts requests by route and status code
	MetricRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboardtheme_requests_total",
		Help: "Total theme requests by route and status code",
	}, []string{"route", "code"})

	// MetricBytesServed counts response body bytes by route
	MetricBytesServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboardtheme_bytes_served_total",
		Help: "Total response bytes served by route",
	}, []string{"route"})

	// MetricRejectedTotal counts requests refused before routing
	MetricRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboardtheme_rejected_total",
		Help: "Total requests rejected by reason",
	}, []string{"reason"})

	// MetricRateLimitedClients tracks clients with a live rate limit bucket
	MetricRateLimitedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dashboardtheme_ratelimit_clients",
		Help: "Clients currently tracked by the rate limiter",
	})

	// MetricRequestDuration tracks handler latency
	MetricRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboardtheme_request_duration_seconds",
		Help:    "Theme request duration in seconds",
		Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5},
	}, []string{"route"})
)

// MetricsServer wraps the HTTP server for prometheus metrics
type MetricsServer struct {
	server *http.Server
}

// NewMetricsServer creates a new metrics server
func NewMetricsServer(addr string) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &MetricsServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start begins serving metrics (non-blocking)
func (m *MetricsServer) Start() {
	go func() {
		if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			ui.LogStatus("error", "Metrics server error: "+err.Error())
		}
	}()
}

// Shutdown gracefully stops the metrics server
func (m *MetricsServer) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.server.Shutdown(shutdownCtx)
}
