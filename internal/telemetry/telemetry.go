// Package telemetry provides OpenTelemetry tracing for the editor.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "charcanvas"
	serviceVersion = "0.1.0"
)

// Enabled reports whether an OTLP endpoint has been configured through the
// standard OTEL_* environment variables.
func Enabled() bool {
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" ||
		os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") != ""
}

// Span attribute keys recorded by the editor.
const (
	SessionIDKey    = attribute.Key("charcanvas.session.id")
	CommandKindKey  = attribute.Key("charcanvas.command.kind")
	CanvasWidthKey  = attribute.Key("charcanvas.canvas.width")
	CanvasHeightKey = attribute.Key("charcanvas.canvas.height")
	CellsWrittenKey = attribute.Key("charcanvas.cells.written")
	FrontendKey     = attribute.Key("charcanvas.frontend")
)

// CanvasSize returns the attributes describing a w x h canvas.
func CanvasSize(w, h int) []attribute.KeyValue {
	return []attribute.KeyValue{
		CanvasWidthKey.Int(w),
		CanvasHeightKey.Int(h),
	}
}

// Setup installs a global tracer provider that exports over OTLP HTTP,
// configured from the standard OTEL_* environment variables. extra is added
// to the resource of every span, e.g. FrontendKey.
//
// The returned function flushes and stops the exporter.
func Setup(ctx context.Context, extra ...attribute.KeyValue) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Not merged with resource.Default() to avoid schema URL conflicts
	res, err := resource.New(ctx, resource.WithAttributes(resourceAttributes(extra)...))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

func resourceAttributes(extra []attribute.KeyValue) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", getHostname()),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.version", runtime.Version()),
	}
	return append(attrs, extra...)
}

// Tracer returns a named tracer for the given component. Until Setup
// succeeds this is a no-op tracer.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("charcanvas/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("charcanvas/noop")
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
