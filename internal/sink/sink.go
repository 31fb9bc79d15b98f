// Package sink defines the destination abstraction for generated records.
package sink

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ashita-ai/agentseed/internal/model"
	"github.com/ashita-ai/agentseed/internal/telemetry"
)

// Sink consumes one batch of records for a single table.
// Implementations must not retain records after Write returns unless they
// are collectors. Write may be called concurrently for different tables.
type Sink interface {
	Write(ctx context.Context, table model.Table, records []model.Record) error
}

// Func adapts a function to the Sink interface.
type Func func(ctx context.Context, table model.Table, records []model.Record) error

// Write calls f.
func (f Func) Write(ctx context.Context, table model.Table, records []model.Record) error {
	return f(ctx, table, records)
}

// Discard accepts and drops every batch.
var Discard Sink = Func(func(context.Context, model.Table, []model.Record) error { return nil })

// Multi returns a sink that writes each batch to every sink in order and
// stops at the first failure.
func Multi(sinks ...Sink) Sink {
	return Func(func(ctx context.Context, table model.Table, records []model.Record) error {
		for _, s := range sinks {
			if err := s.Write(ctx, table, records); err != nil {
				return err
			}
		}
		return nil
	})
}

type instrumented struct {
	next     Sink
	name     string
	tracer   trace.Tracer
	rows     metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// Instrument wraps s so every batch write produces a span and updates the
// agentseed.rows.written, agentseed.write.failures, and agentseed.write.duration
// instruments. name identifies the destination kind ("rest", "postgres", ...).
func Instrument(s Sink, name string) Sink {
	meter := telemetry.Meter("agentseed/sink")
	in := &instrumented{
		next:   s,
		name:   name,
		tracer: telemetry.Tracer("agentseed/sink"),
	}
	var rowsErr, failuresErr, durationErr error
	in.rows, rowsErr = meter.Int64Counter("agentseed.rows.written",
		metric.WithDescription("Rows accepted by the destination"))
	in.failures, failuresErr = meter.Int64Counter("agentseed.write.failures",
		metric.WithDescription("Batch writes rejected by the destination"))
	in.duration, durationErr = meter.Float64Histogram("agentseed.write.duration",
		metric.WithDescription("Time to write one batch (ms)"),
		metric.WithUnit("ms"))
	if err := errors.Join(rowsErr, failuresErr, durationErr); err != nil {
		// Writes still go through; only the failed instruments are skipped.
		slog.Warn("sink: create instruments", "sink", name, "error", err)
	}
	return in
}

func (in *instrumented) Write(ctx context.Context, table model.Table, records []model.Record) error {
	attrs := metric.WithAttributes(
		attribute.String("sink", in.name),
		attribute.String("table", string(table)),
	)

	ctx, span := in.tracer.Start(ctx, "sink.write",
		trace.WithAttributes(
			attribute.String("sink", in.name),
			attribute.String("table", string(table)),
			attribute.Int("rows", len(records)),
		),
	)
	defer span.End()

	start := time.Now()
	err := in.next.Write(ctx, table, records)
	if in.duration != nil {
		in.duration.Record(ctx, float64(time.Since(start).Milliseconds()), attrs)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if in.failures != nil {
			in.failures.Add(ctx, 1, attrs)
		}
		return err
	}
	if in.rows != nil {
		in.rows.Add(ctx, int64(len(records)), attrs)
	}
	return nil
}
