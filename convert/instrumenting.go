package convert

import (
	"context"
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"go-fx-widget/domain"
	"go-fx-widget/rates"
	"time"
)

// Metrics the collectors updated by an instrumenting Service
type Metrics struct {
	// Conversions counts conversions by pair and outcome
	Conversions *prometheus.CounterVec

	// Duration observes conversion latency by pair
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the conversion collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fx",
				Subsystem: "convert",
				Name:      "conversions_total",
				Help:      "Number of conversions by currency pair and outcome.",
			},
			[]string{"from", "to", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "fx",
				Subsystem: "convert",
				Name:      "duration_seconds",
				Help:      "Time spent converting in seconds.",
				Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 8),
			},
			[]string{"from", "to"},
		),
	}
	reg.MustRegister(m.Conversions, m.Duration)
	return m
}

// instrumentingService decorates a convert.Service with Prometheus metrics
type instrumentingService struct {
	metrics *Metrics
	next    Service
}

// NewInstrumentingService returns a new instance of an instrumenting Service
func NewInstrumentingService(metrics *Metrics, s Service) Service {
	return &instrumentingService{
		metrics: metrics,
		next:    s,
	}
}

func (s *instrumentingService) Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (ex domain.Exchanged, err error) {
	defer func(begin time.Time) {
		s.metrics.Conversions.WithLabelValues(string(from), string(to), outcome(err)).Inc()
		s.metrics.Duration.WithLabelValues(string(from), string(to)).Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}

// outcome a low-cardinality label for an error
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, rates.ErrRateNotFound):
		return "rate_not_found"
	default:
		return "error"
	}
}
