// Package telemetry builds the OpenTelemetry tracer the scheduler uses to
// span each tool invocation, following the same "pass a *trace.Tracer into
// whatever needs one" shape used throughout the harness this package was
// adapted from.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config controls tracer construction. An empty Config yields a tracer
// backed by a provider with no registered exporter; spans are created but
// go nowhere, which is fine for local demos and tests.
type Config struct {
	ServiceName string

	// Exporter, when non-nil, receives every completed span.
	Exporter sdktrace.SpanExporter
}

// Provider wraps the SDK TracerProvider so callers can Shutdown it on exit.
type Provider struct {
	tp *sdktrace.TracerProvider
}

// NewProvider builds a Provider from cfg. Callers should defer Shutdown.
func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	if cfg.ServiceName == "" {
		cfg.ServiceName = "toolsched"
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("building resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if cfg.Exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(cfg.Exporter))
	}

	return &Provider{tp: sdktrace.NewTracerProvider(opts...)}, nil
}

// Tracer returns a named tracer drawn from the provider.
func (p *Provider) Tracer(name string) trace.Tracer {
	if p == nil || p.tp == nil {
		return noop.NewTracerProvider().Tracer(name)
	}
	return p.tp.Tracer(name)
}

// Shutdown flushes and releases the underlying TracerProvider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.tp == nil {
		return nil
	}
	return p.tp.Shutdown(ctx)
}

// Noop returns a tracer that records nothing, for callers that want the
// scheduler's tracing code paths exercised without a live backend.
func Noop() trace.Tracer {
	return noop.NewTracerProvider().Tracer("toolsched/noop")
}
