package liveset

import (
	"github.com/dogmatiq/liveset/internal/telemetry"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
)

// An Option changes the behavior of a [Set] constructed by [New].
type Option func(*config)

type config struct {
	name        string
	interceptor *Interceptor
	telemetry   *telemetry.Provider
}

// WithName returns an [Option] that gives the set a name.
//
// The name has no semantic meaning; it appears in telemetry produced by the
// set to distinguish it from other sets in the same process.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}

// WithInterceptor returns an [Option] that invokes the functions defined by
// the given [Interceptor] when performing operations on the set.
//
// If i is nil the option has no effect.
func WithInterceptor(i *Interceptor) Option {
	return func(cfg *config) {
		cfg.interceptor = i
	}
}

// WithTelemetry returns an [Option] that adds telemetry to the set.
func WithTelemetry(
	m metric.MeterProvider,
	l log.LoggerProvider,
) Option {
	return func(cfg *config) {
		cfg.telemetry = &telemetry.Provider{
			MeterProvider:  m,
			LoggerProvider: l,
		}
	}
}
