package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AttemptsStarted counts checkout attempts entering the flow.
	AttemptsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_attempts_total",
			Help: "Total number of checkout attempts started",
		},
	)

	// AttemptOutcomes counts terminal attempt outcomes.
	AttemptOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_attempt_outcomes_total",
			Help: "Terminal checkout attempt outcomes",
		},
		[]string{"outcome"},
	)

	// AttemptFailures counts failures by taxonomy reason.
	AttemptFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_attempt_failures_total",
			Help: "Checkout attempt failures by reason",
		},
		[]string{"reason"},
	)

	// BreakerState tracks backend circuit breaker state (0=closed, 1=open, 2=half-open).
	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "backend_circuit_breaker_state",
			Help: "Storefront backend circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"circuit"},
	)

	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
)

// HTTPMiddleware records request durations per route.
func HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
