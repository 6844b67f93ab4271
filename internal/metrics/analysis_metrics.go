package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("groundcite-analysis")

// Failure classes recorded under the error.type attribute
const (
	ErrorTypeDecode     = "decode"
	ErrorTypeValidation = "validation"
	ErrorTypeEngine     = "engine"
	ErrorTypeUnexpected = "unexpected"
)

// AnalysisMetrics provides metrics collection for analysis requests
type AnalysisMetrics struct {
	requestsCounter   metric.Int64Counter
	completedCounter  metric.Int64Counter
	failedCounter     metric.Int64Counter
	durationHistogram metric.Float64Histogram
	activeGauge       metric.Int64UpDownCounter
}

// NewAnalysisMetrics creates a new analysis metrics collector
func NewAnalysisMetrics() (*AnalysisMetrics, error) {
	requestsCounter, err := meter.Int64Counter(
		"groundcite.analysis.requests",
		metric.WithDescription("Total number of analysis requests received"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	completedCounter, err := meter.Int64Counter(
		"groundcite.analysis.completed",
		metric.WithDescription("Total number of analyses completed successfully"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	failedCounter, err := meter.Int64Counter(
		"groundcite.analysis.failed",
		metric.WithDescription("Total number of analysis requests that failed"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	durationHistogram, err := meter.Float64Histogram(
		"groundcite.analysis.duration",
		metric.WithDescription("Wall-clock duration of analysis requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	activeGauge, err := meter.Int64UpDownCounter(
		"groundcite.analysis.active",
		metric.WithDescription("Number of analysis requests in flight"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &AnalysisMetrics{
		requestsCounter:   requestsCounter,
		completedCounter:  completedCounter,
		failedCounter:     failedCounter,
		durationHistogram: durationHistogram,
		activeGauge:       activeGauge,
	}, nil
}

// RecordReceived records a new analysis request
func (m *AnalysisMetrics) RecordReceived(ctx context.Context, transport string) {
	m.requestsCounter.Add(ctx, 1,
		metric.WithAttributes(attribute.String("transport", transport)),
	)
	m.activeGauge.Add(ctx, 1,
		metric.WithAttributes(attribute.String("transport", transport)),
	)
}

// RecordCompleted records a successful analysis
func (m *AnalysisMetrics) RecordCompleted(ctx context.Context, transport, parsingProvider string, duration time.Duration) {
	m.completedCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("transport", transport),
			attribute.String("parsing_provider", parsingProvider),
		),
	)
	m.durationHistogram.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("transport", transport),
			attribute.String("status", "completed"),
		),
	)
	m.activeGauge.Add(ctx, -1,
		metric.WithAttributes(attribute.String("transport", transport)),
	)
}

// RecordFailed records a failed analysis request
func (m *AnalysisMetrics) RecordFailed(ctx context.Context, transport, errorType string, duration time.Duration) {
	m.failedCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("transport", transport),
			attribute.String("error.type", errorType),
		),
	)
	m.durationHistogram.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("transport", transport),
			attribute.String("status", "failed"),
		),
	)
	m.activeGauge.Add(ctx, -1,
		metric.WithAttributes(attribute.String("transport", transport)),
	)
}
