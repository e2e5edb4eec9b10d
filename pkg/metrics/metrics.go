package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Business metrics
	GuidanceQueries   *prometheus.CounterVec
	RoadmapsServed    *prometheus.CounterVec
	SkillsGapAnalyses prometheus.Counter
	SnapshotRefreshes *prometheus.CounterVec
	SnapshotFailures  prometheus.Counter

	// Database metrics
	DBQueryDuration *prometheus.HistogramVec
	DBConnections   prometheus.Gauge

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),
		HTTPResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),

		GuidanceQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guidance_queries_total",
				Help: "Total number of career guidance queries processed",
			},
			[]string{"field", "experience_level"},
		),
		RoadmapsServed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roadmaps_served_total",
				Help: "Total number of roadmaps served",
			},
			[]string{"field"},
		),
		SkillsGapAnalyses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "skills_gap_analyses_total",
			Help: "Total number of skills gap analyses performed",
		}),
		SnapshotRefreshes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "company_snapshot_refreshes_total",
				Help: "Total number of company snapshot refreshes",
			},
			[]string{"trigger"}, // request, scheduled
		),
		SnapshotFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "company_snapshot_failures_total",
			Help: "Total number of failed company snapshot refreshes",
		}),

		DBQueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Database query duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"operation"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of active database connections",
		}),

		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // route pattern, not actual path (e.g., /api/roadmap/:field)

			if req.ContentLength > 0 {
				m.HTTPRequestSize.WithLabelValues(req.Method, path).Observe(float64(req.ContentLength))
			}

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)
			m.HTTPResponseSize.WithLabelValues(req.Method, path).Observe(float64(c.Response().Size))

			return err
		}
	}
}

// RecordGuidanceQuery increments the guidance queries counter
func (m *Metrics) RecordGuidanceQuery(field, experienceLevel string) {
	m.GuidanceQueries.WithLabelValues(field, experienceLevel).Inc()
}

// RecordRoadmapServed increments the roadmaps served counter
func (m *Metrics) RecordRoadmapServed(field string) {
	m.RoadmapsServed.WithLabelValues(field).Inc()
}

// RecordSkillsGapAnalysis increments the skills gap analyses counter
func (m *Metrics) RecordSkillsGapAnalysis() {
	m.SkillsGapAnalyses.Inc()
}

// RecordSnapshotRefresh increments the snapshot refreshes counter
func (m *Metrics) RecordSnapshotRefresh(trigger string) {
	m.SnapshotRefreshes.WithLabelValues(trigger).Inc()
}

// RecordSnapshotFailure increments the snapshot failures counter
func (m *Metrics) RecordSnapshotFailure() {
	m.SnapshotFailures.Inc()
}

// RecordDBQuery records database query duration
func (m *Metrics) RecordDBQuery(operation string, duration time.Duration) {
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateDBConnections updates active database connections gauge
func (m *Metrics) UpdateDBConnections(count float64) {
	m.DBConnections.Set(count)
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}
