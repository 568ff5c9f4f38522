// Package otel wires OpenTelemetry tracing for the command line tools.
package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/gamedata/internal/platform/config"
)

// instrumentationName scopes the tracers handed out by Tracer.
const instrumentationName = "github.com/louisbranch/gamedata"

// Config controls trace export.
type Config struct {
	Endpoint string `env:"GAMEDATA_OTEL_ENDPOINT"`
	Enabled  bool   `env:"GAMEDATA_OTEL_ENABLED" envDefault:"true"`
}

// Active reports whether spans should be exported.
func (c Config) Active() bool {
	return c.Enabled && c.Endpoint != ""
}

// Setup initialises OpenTelemetry tracing for the given service from the
// GAMEDATA_OTEL_* environment.
//
// Tracing is opt-in: when GAMEDATA_OTEL_ENDPOINT is empty or
// GAMEDATA_OTEL_ENABLED is false, Setup returns a no-op shutdown function and
// no global provider is registered. Spans started through Tracer are then
// dropped.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return noop, err
	}
	return SetupWith(ctx, serviceName, cfg)
}

// SetupWith is Setup with an explicit configuration.
func SetupWith(ctx context.Context, serviceName string, cfg Config) (shutdown func(context.Context) error, err error) {
	if !cfg.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns the tracer used for data loading spans.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

func noop(context.Context) error { return nil }
