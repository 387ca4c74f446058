package metrics

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	grpc_prom "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
)

const divisor = 100

// Metrics holds the Prometheus collectors of the weather lab.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP server metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// gRPC server metrics
	GRPC *grpc_prom.ServerMetrics

	// Domain metrics
	SuggestionsTotal  *prometheus.CounterVec
	SuggestionMatches prometheus.Histogram
	LookupsTotal      *prometheus.CounterVec
	DismissalsTotal   prometheus.Counter

	// Session store metrics
	SessionOpDuration *prometheus.HistogramVec
	SessionOpsTotal   *prometheus.CounterVec
}

// NewMetrics constructs all collectors and registers them on a private registry.
func NewMetrics(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,

		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status class",
			},
			[]string{"method", "endpoint", "status_class"},
		),

		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		GRPC: grpc_prom.NewServerMetrics(),

		SuggestionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "suggestion_requests_total",
				Help:      "Total number of suggestion queries",
			},
			[]string{"result"},
		),

		SuggestionMatches: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "suggestion_matches",
				Help:      "Number of cities matched per suggestion query",
				Buckets:   prometheus.LinearBuckets(0, 1, 6),
			},
		),

		LookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "lookups_total",
				Help:      "Total number of weather lookups",
			},
			[]string{"result"},
		),

		DismissalsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "suggestion_dismissals_total",
				Help:      "Suggestion lists hidden by a click outside the search control",
			},
		),

		SessionOpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "session_operation_duration_seconds",
				Help:      "Session store operation latencies",
			},
			[]string{"operation"},
		),

		SessionOpsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "session_operations_total",
				Help:      "Session store operation counts",
			},
			[]string{"operation", "result"},
		),
	}

	m.GRPC.EnableHandlingTimeHistogram()

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.GRPC,
		m.SuggestionsTotal,
		m.SuggestionMatches,
		m.LookupsTotal,
		m.DismissalsTotal,
		m.SessionOpDuration,
		m.SessionOpsTotal,
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(
				collectors.GoRuntimeMetricsRule{Matcher: regexp.MustCompile("/sched/latencies:seconds")},
			),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Registry returns the registry holding every collector.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// HTTPMiddleware counts and times every request by route template.
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		d := time.Since(start)

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		m.HTTPRequestsTotal.With(prometheus.Labels{
			"method":       c.Request.Method,
			"endpoint":     endpoint,
			"status_class": getStatusClass(c.Writer.Status()),
		}).Inc()
		m.HTTPRequestDuration.With(prometheus.Labels{
			"method":   c.Request.Method,
			"endpoint": endpoint,
		}).Observe(d.Seconds())
	}
}

// UnaryInterceptor and StreamInterceptor feed the gRPC server metrics.
func (m *Metrics) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return m.GRPC.UnaryServerInterceptor()
}

func (m *Metrics) StreamInterceptor() grpc.StreamServerInterceptor {
	return m.GRPC.StreamServerInterceptor()
}

func (m *Metrics) ObserveSuggestions(count int) {
	result := "matched"
	if count == 0 {
		result = "empty"
	}
	m.SuggestionsTotal.WithLabelValues(result).Inc()
	m.SuggestionMatches.Observe(float64(count))
}

func (m *Metrics) ObserveLookup(result string) {
	m.LookupsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveDismissal() {
	m.DismissalsTotal.Inc()
}

func getStatusClass(code int) string {
	return fmt.Sprintf("%dxx", code/divisor)
}
