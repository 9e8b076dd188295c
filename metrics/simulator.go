package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type SimulatorMetrics struct {
	synthesizedCounter  metric.Int64Counter
	updateTimeHistogram metric.Float64Histogram

	opts metric.MeasurementOption
}

// NewSimulatorMetrics initializes metrics related to event synthesis
func NewSimulatorMetrics(meter metric.Meter, opts metric.MeasurementOption) (*SimulatorMetrics, error) {
	synthesizedCounter, err := meter.Int64Counter(
		"testkit.SynthesizedEvents",
		metric.WithDescription("Number of spoke pool events synthesized, by event type"),
	)
	if err != nil {
		return nil, err
	}

	updateTimeHistogram, err := meter.Float64Histogram("testkit.UpdateTime")
	if err != nil {
		return nil, err
	}

	return &SimulatorMetrics{
		synthesizedCounter:  synthesizedCounter,
		updateTimeHistogram: updateTimeHistogram,
		opts:                opts,
	}, nil
}

func (m *SimulatorMetrics) RecordSynthesized(eventType string) {
	m.synthesizedCounter.Add(
		context.Background(),
		1,
		m.opts,
		metric.WithAttributes(attribute.String("event", eventType)),
	)
}

func (m *SimulatorMetrics) ObserveUpdate(duration time.Duration) {
	m.updateTimeHistogram.Record(context.Background(), duration.Seconds(), m.opts)
}
