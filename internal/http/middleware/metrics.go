// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file exposes Prometheus instrumentation: generic HTTP traffic metrics
// plus the domain counters for ingestion outcomes and GDPR erasures. Labels
// are kept low-cardinality: the path label uses the registered Gin route
// (e.g. /v1/history/:userId), never the raw URL with its embedded UUIDs.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// httpReqs counts requests by method, route path, and status code.
	httpReqs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// httpLat records request duration in seconds by method and route path.
	// Status is omitted to keep histogram cardinality lower.
	httpLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// httpInflight gauges the number of in-flight requests.
	httpInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		},
	)

	// ingestOutcomes counts play submissions by outcome
	// (accepted, duplicate, rejected_erased).
	ingestOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "play_ingest_total",
			Help: "Play event submissions by ingestion outcome.",
		},
		[]string{"result"},
	)

	// erasureReqs counts completed GDPR erasure requests.
	erasureReqs = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gdpr_erasures_total",
			Help: "Completed user erasure requests (including no-op repeats).",
		},
	)

	// erasedRows counts play rows removed by erasures.
	erasedRows = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gdpr_erased_rows_total",
			Help: "Play event rows removed by user erasures.",
		},
	)
)

func init() {
	prometheus.MustRegister(httpReqs, httpLat, httpInflight, ingestOutcomes, erasureReqs, erasedRows)
}

// Metrics returns a Gin middleware that instruments requests with Prometheus.
//
// Usage:
//
//	r := gin.New()
//	r.Use(middleware.Metrics())
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInflight.Inc()
		defer httpInflight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			// Route not matched (404); raw path is fine for those.
			path = c.Request.URL.Path
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		httpReqs.WithLabelValues(method, path, status).Inc()
		httpLat.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

// ObserveIngest records one play submission outcome. The result string is
// the stable label produced by services.SubmitResult.String().
func ObserveIngest(result string) {
	ingestOutcomes.WithLabelValues(result).Inc()
}

// ObserveErasure records one completed erasure and the rows it removed.
func ObserveErasure(rows int64) {
	erasureReqs.Inc()
	if rows > 0 {
		erasedRows.Add(float64(rows))
	}
}
