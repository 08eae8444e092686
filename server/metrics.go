package server

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lab1702/seabots/server"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// metrics holds the arena's OTel instruments. Uses the global meter
// provider, which is a no-op unless one is installed.
type metrics struct {
	commands  metric.Int64Counter
	rejected  metric.Int64Counter
	rageQuits metric.Int64Counter
	sinkings  metric.Int64Counter
	tickTime  metric.Float64Histogram
}

func newMetrics() (*metrics, error) {
	m := meter()
	var (
		ms  metrics
		err error
	)

	ms.commands, err = m.Int64Counter(
		"arena.commands",
		metric.WithDescription("Commands emitted by bots"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating commands counter: %w", err)
	}

	ms.rejected, err = m.Int64Counter(
		"arena.commands.rejected",
		metric.WithDescription("Bot commands the arena could not apply"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rejected counter: %w", err)
	}

	ms.rageQuits, err = m.Int64Counter(
		"arena.bots.rage_quits",
		metric.WithDescription("Bots that left instead of respawning"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rage quit counter: %w", err)
	}

	ms.sinkings, err = m.Int64Counter(
		"arena.boats.sunk",
		metric.WithDescription("Boats destroyed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sinkings counter: %w", err)
	}

	ms.tickTime, err = m.Float64Histogram(
		"arena.tick.duration",
		metric.WithDescription("Wall time spent per tick"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tick histogram: %w", err)
	}

	return &ms, nil
}

func (m *metrics) command(ctx context.Context, kind string) {
	m.commands.Add(ctx, 1, metric.WithAttributes(attribute.String("type", kind)))
}

func (m *metrics) reject(ctx context.Context, kind, reason string) {
	m.rejected.Add(ctx, 1, metric.WithAttributes(
		attribute.String("type", kind),
		attribute.String("reason", reason),
	))
}
