package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Telemetry holds the installed providers. The zero value is valid and
// shuts down as a no-op.
type Telemetry struct {
	TracerProvider *trace.TracerProvider
}

// Shutdown flushes pending spans and stops the exporter
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil || t.TracerProvider == nil {
		return nil
	}

	var errlist []error
	if err := t.TracerProvider.Shutdown(ctx); err != nil {
		errlist = append(errlist, goerr.Wrap(err, "failed to shut down tracer provider"))
	}
	return errors.Join(errlist...)
}

// Setup exports spans over OTLP/HTTP to endpoint and installs the provider
// globally. An empty endpoint leaves the global no-op provider in place.
func Setup(ctx context.Context, serviceName, endpoint string) (*Telemetry, error) {
	if endpoint == "" {
		return &Telemetry{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create OTLP trace exporter", goerr.V("endpoint", endpoint))
	}

	tp, err := NewTracerProvider(exporter, serviceName)
	if err != nil {
		return nil, err
	}
	otel.SetTracerProvider(tp)

	return &Telemetry{TracerProvider: tp}, nil
}

// NewTracerProvider batches spans into exporter, tagged with serviceName
func NewTracerProvider(exporter trace.SpanExporter, serviceName string) (*trace.TracerProvider, error) {
	r, err := newResource(serviceName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build telemetry resource", goerr.V("service", serviceName))
	}

	return trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(r),
	), nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}
