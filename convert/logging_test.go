package convert

import (
	"bytes"
	"context"
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go-fx-widget/rates"
	"testing"
)

func TestLoggingService_Convert(t *testing.T) {
	var buf bytes.Buffer
	s := NewLoggingService(log.NewLogfmtLogger(&buf), NewService(rates.Reference(), DefaultPrecision()))

	_, err := s.Convert(context.Background(), 1, rates.JPY, rates.EUR)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "method=convert")
	assert.Contains(t, buf.String(), "rate=0.00553")

	buf.Reset()
	_, err = s.Convert(context.Background(), 1, rates.JPY, "USD")
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "level=error")

	buf.Reset()
	_, err = s.Convert(context.Background(), -1, rates.JPY, rates.EUR)
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "level=info")
}

func TestInstrumentingService_Convert(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	s := NewInstrumentingService(metrics, NewService(rates.Reference(), DefaultPrecision()))
	ctx := context.Background()

	_, _ = s.Convert(ctx, 1, rates.JPY, rates.EUR)
	_, _ = s.Convert(ctx, 2, rates.JPY, rates.EUR)
	_, _ = s.Convert(ctx, 0, rates.JPY, rates.EUR)
	_, _ = s.Convert(ctx, 1, rates.JPY, "USD")

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Conversions.WithLabelValues("JPY", "EUR", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Conversions.WithLabelValues("JPY", "EUR", "invalid_amount")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Conversions.WithLabelValues("JPY", "USD", "rate_not_found")))
}
