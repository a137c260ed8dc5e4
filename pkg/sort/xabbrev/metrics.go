package xabbrev

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	instrumentationName = "github.com/kaanatesel/pg-id/xabbrev"

	metricAborts            = "mgid.abbrev.aborts"
	metricEstimationStopped = "mgid.abbrev.estimation_stopped"
	metricCardinality       = "mgid.abbrev.cardinality"
)

// instruments 判定点的 OTel 指标。
type instruments struct {
	aborts      metric.Int64Counter
	stopped     metric.Int64Counter
	cardinality metric.Float64Histogram
}

func newInstruments(provider metric.MeterProvider) (*instruments, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(instrumentationName)

	aborts, err := meter.Int64Counter(
		metricAborts,
		metric.WithDescription("sorts that abandoned abbreviated keys"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xabbrev: create counter failed: %w", err)
	}

	stopped, err := meter.Int64Counter(
		metricEstimationStopped,
		metric.WithDescription("sorts that stopped cardinality estimation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xabbrev: create counter failed: %w", err)
	}

	cardinality, err := meter.Float64Histogram(
		metricCardinality,
		metric.WithDescription("estimated abbreviated key cardinality at each evaluation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xabbrev: create histogram failed: %w", err)
	}

	return &instruments{
		aborts:      aborts,
		stopped:     stopped,
		cardinality: cardinality,
	}, nil
}

func (m *instruments) recordEstimate(ctx context.Context, card float64) {
	m.cardinality.Record(ctx, card)
}

func (m *instruments) recordAbort(ctx context.Context) {
	m.aborts.Add(ctx, 1)
}

func (m *instruments) recordStopped(ctx context.Context) {
	m.stopped.Add(ctx, 1)
}
