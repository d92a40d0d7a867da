package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/metric"
)

// Instrument is a function that records a measurement of type N, with an
// optional set of attributes.
type Instrument[N int64 | float64] func(ctx context.Context, n N, attrs ...Attr)

// Counter returns an instrument that records a monotonically increasing
// total.
func (r *Recorder) Counter(name, unit, desc string) Instrument[int64] {
	c, err := r.meter.Int64Counter(
		name,
		metric.WithUnit(unit),
		metric.WithDescription(desc),
	)
	if err != nil {
		panic(err)
	}

	return func(ctx context.Context, n int64, attrs ...Attr) {
		c.Add(ctx, n, metric.WithAttributes(asAttrKeyValues(attrs)...))
	}
}

// UpDownCounter returns an instrument that records a total that may increase
// or decrease over time.
func (r *Recorder) UpDownCounter(name, unit, desc string) Instrument[int64] {
	c, err := r.meter.Int64UpDownCounter(
		name,
		metric.WithUnit(unit),
		metric.WithDescription(desc),
	)
	if err != nil {
		panic(err)
	}

	return func(ctx context.Context, n int64, attrs ...Attr) {
		c.Add(ctx, n, metric.WithAttributes(asAttrKeyValues(attrs)...))
	}
}

// Histogram returns an instrument that records a distribution of measured
// values.
func (r *Recorder) Histogram(name, unit, desc string) Instrument[float64] {
	h, err := r.meter.Float64Histogram(
		name,
		metric.WithUnit(unit),
		metric.WithDescription(desc),
	)
	if err != nil {
		panic(err)
	}

	return func(ctx context.Context, n float64, attrs ...Attr) {
		h.Record(ctx, n, metric.WithAttributes(asAttrKeyValues(attrs)...))
	}
}
