// Package telemetry wires OpenTelemetry tracing and metrics for the service.
//
// Both providers share one resource and one exporter choice:
//
//	tp, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
//	mp, err := telemetry.InitMeter(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
//	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
//
// Callers own shutdown of the returned providers.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names, matching telemetry.exporter in config.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

var errNoEndpoint = errors.New("otlp exporter requires an endpoint")

// target is a parsed exporter selection.
type target struct {
	otlp     bool
	host     string
	insecure bool
}

func parseTarget(exporter, endpoint string) (target, error) {
	switch exporter {
	case ExporterStdout:
		return target{}, nil
	case ExporterOTLP:
		if endpoint == "" {
			return target{}, errNoEndpoint
		}
		t := target{otlp: true, host: endpoint, insecure: true}
		if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
			t.host = u.Host
			t.insecure = u.Scheme != "https"
		}
		return t, nil
	default:
		return target{}, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

// InitTracer registers a global TracerProvider batching spans to the
// selected exporter, along with W3C trace-context and baggage propagation.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	tgt, err := parseTarget(exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("span exporter: %w", err)
	}
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var spans sdktrace.SpanExporter
	if tgt.otlp {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(tgt.host)}
		if tgt.insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		spans, err = otlptracehttp.New(ctx, opts...)
	} else {
		spans, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter registers a global MeterProvider reading periodically into the
// selected exporter.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	tgt, err := parseTarget(exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("metric exporter: %w", err)
	}
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var exp sdkmetric.Exporter
	if tgt.otlp {
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(tgt.host)}
		if tgt.insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exp, err = otlpmetrichttp.New(ctx, opts...)
	} else {
		exp, err = stdoutmetric.New()
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
}
