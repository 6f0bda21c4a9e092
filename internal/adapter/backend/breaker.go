package backend

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"github.com/platefront/checkout/internal/metrics"
)

type breaker struct {
	*gobreaker.CircuitBreaker
}

func newBreaker(name string, logger *slog.Logger) *breaker {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(cbName string, from, to gobreaker.State) {
			metrics.BreakerState.WithLabelValues(cbName).Set(stateValue(to))
			logger.Warn("circuit breaker state changed",
				slog.String("circuit", cbName),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	metrics.BreakerState.WithLabelValues(name).Set(stateValue(gobreaker.StateClosed))
	return &breaker{CircuitBreaker: cb}
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
