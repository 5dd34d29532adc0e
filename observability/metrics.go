package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the API.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec // labels: path, status
	RequestDuration *prometheus.HistogramVec

	OverviewHazards   prometheus.Histogram
	OverviewResources prometheus.Histogram
	SnapshotRefreshes *prometheus.CounterVec // labels: outcome={success,error}
}

// NewMetrics creates and registers all API metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.OverviewHazards,
		m.OverviewResources,
		m.SnapshotRefreshes,
	)

	return m
}

// NewMetricsForTesting creates Metrics without touching the default
// registry, avoiding "already registered" panics across tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "beacon",
			Name:      "requests_total",
			Help:      "API requests by path and status code.",
		}, []string{"path", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "beacon",
			Name:      "request_duration_seconds",
			Help:      "API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"path"}),
		OverviewHazards: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "beacon",
			Name:      "overview_hazards",
			Help:      "Hazards returned per overview request.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		OverviewResources: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "beacon",
			Name:      "overview_resources",
			Help:      "Resources returned per overview request.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}),
		SnapshotRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "beacon",
			Name:      "snapshot_refreshes_total",
			Help:      "Hazard snapshot refresh runs by outcome.",
		}, []string{"outcome"}),
	}
}

// Middleware records per-request counters and latency.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		m.RequestsTotal.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}
