// Package metrics exposes prometheus instrumentation for the demo
// service: HTTP traffic, graph builds, query decisions, and runtime
// gauges, all on a private registry.
package metrics

import (
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles every metric the service records.
type Registry struct {
	registry *prometheus.Registry

	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	GraphBuildsTotal   prometheus.Counter
	GraphBuildDuration prometheus.Histogram
	GraphNodesServed   prometheus.Histogram
	GraphEdgesServed   prometheus.Histogram

	QueryDecisionsTotal *prometheus.CounterVec
	ChipClicksTotal     *prometheus.CounterVec
	ScenariosTotal      *prometheus.CounterVec

	UptimeSeconds    prometheus.Gauge
	GoRoutines       prometheus.Gauge
	MemoryAllocBytes prometheus.Gauge
}

// NewRegistry creates the metric set on a fresh prometheus registry.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.HTTPRequestsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentinel_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sentinel_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestsInFlight = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "sentinel_http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
	)

	r.GraphBuildsTotal = promauto.With(reg).NewCounter(
		prometheus.CounterOpts{
			Name: "sentinel_graph_builds_total",
			Help: "Total number of graph element builds",
		},
	)

	r.GraphBuildDuration = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentinel_graph_build_duration_seconds",
			Help:    "Graph element build latency in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	r.GraphNodesServed = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentinel_graph_nodes_served",
			Help:    "Nodes per served graph build",
			Buckets: []float64{5, 10, 15, 20, 25, 30, 35},
		},
	)

	r.GraphEdgesServed = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentinel_graph_edges_served",
			Help:    "Edges per served graph build",
			Buckets: []float64{0, 10, 20, 30, 40, 50},
		},
	)

	r.QueryDecisionsTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentinel_query_decisions_total",
			Help: "Question submissions by outcome",
		},
		[]string{"outcome"},
	)

	r.ChipClicksTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentinel_chip_clicks_total",
			Help: "Suggestion chip clicks by resulting action",
		},
		[]string{"action"},
	)

	r.ScenariosTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentinel_scenario_submissions_total",
			Help: "Scenario submissions by result",
		},
		[]string{"result"},
	)

	r.UptimeSeconds = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "sentinel_uptime_seconds",
			Help: "Seconds since the server started",
		},
	)

	r.GoRoutines = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "sentinel_goroutines",
			Help: "Current number of goroutines",
		},
	)

	r.MemoryAllocBytes = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "sentinel_memory_alloc_bytes",
			Help: "Bytes of allocated heap objects",
		},
	)

	return r
}

// Handler returns the /metrics exposition handler.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one HTTP request with its duration.
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordGraphBuild records one graph element build.
func (r *Registry) RecordGraphBuild(nodes, edges int, duration time.Duration) {
	r.GraphBuildsTotal.Inc()
	r.GraphBuildDuration.Observe(duration.Seconds())
	r.GraphNodesServed.Observe(float64(nodes))
	r.GraphEdgesServed.Observe(float64(edges))
}

// RecordQueryDecision records a question submission outcome.
func (r *Registry) RecordQueryDecision(matched bool) {
	outcome := "no_match"
	if matched {
		outcome = "redirect"
	}
	r.QueryDecisionsTotal.WithLabelValues(outcome).Inc()
}

// UpdateRuntime refreshes the uptime and Go runtime gauges.
func (r *Registry) UpdateRuntime(start time.Time) {
	r.UptimeSeconds.Set(time.Since(start).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	r.MemoryAllocBytes.Set(float64(m.Alloc))
}
