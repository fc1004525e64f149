package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "arena",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route, method and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "code"})

	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "arena",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route, method and status code.",
	}, []string{"route", "method", "code"})
)

func init() {
	prometheus.MustRegister(httpRequestDuration, httpRequestsTotal)
}

// MetricsMiddleware records per-request latency and count. The route label is
// the gin route template, not the raw path, to keep cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		labels := prometheus.Labels{
			"route":  route,
			"method": c.Request.Method,
			"code":   strconv.Itoa(c.Writer.Status()),
		}
		httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
		httpRequestsTotal.With(labels).Inc()
	}
}

// MetricsHandler exposes the prometheus registry.
func MetricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
