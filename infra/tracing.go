package infra

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type TelemetryConfiguration struct {
	Enabled         bool
	ApplicationName string
}

type TelemetryRessources struct {
	TracerProvider    trace.TracerProvider
	Tracer            trace.Tracer
	TextMapPropagator propagation.TextMapPropagator
}

func NoopTelemetry() TelemetryRessources {
	return TelemetryRessources{
		TracerProvider:    noop.NewTracerProvider(),
		Tracer:            &noop.Tracer{},
		TextMapPropagator: nil,
	}
}

func InitTelemetry(configuration TelemetryConfiguration, apiVersion string) (TelemetryRessources, error) {
	if !configuration.Enabled {
		return NoopTelemetry(), nil
	}

	exporter, err := otlptracegrpc.New(context.Background())
	if err != nil {
		return TelemetryRessources{}, fmt.Errorf("otlptracegrpc.New error: %w", err)
	}

	res, err := resource.New(context.Background(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(configuration.ApplicationName),
			semconv.ServiceVersion(apiVersion),
		),
	)
	if err != nil {
		return TelemetryRessources{}, fmt.Errorf("resource.New error: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(RouteSampler{}),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	tracer := tp.Tracer(configuration.ApplicationName)

	propagators := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)

	otel.SetTextMapPropagator(propagators)

	return TelemetryRessources{
		TracerProvider:    tp,
		Tracer:            tracer,
		TextMapPropagator: propagators,
	}, nil
}

const DEFAULT_SAMPLING_RATE = 0.3

var (
	defaultSpanNamesSampling = map[string]float64{
		"watchlist_refresh": 1.0,
	}

	// Screenings are the hot path, sampling them all would flood the
	// collector. Health endpoints are pure noise.
	defaultRoutePrefixSampling = map[string]float64{
		"/liveness":   0.0,
		"/metrics":    0.0,
		"/screenings": 0.05,
		"/watchlists": 1.0,
	}
)

// RouteSampler samples by http route prefix or span name, so the cheap
// high-volume spans do not drown out the interesting ones.
type RouteSampler struct{}

func (RouteSampler) Description() string {
	return "vigie-route-sampler"
}

func (RouteSampler) ShouldSample(p sdktrace.SamplingParameters) sdktrace.SamplingResult {
	var (
		prob     = DEFAULT_SAMPLING_RATE
		decision = sdktrace.Drop
	)

	psc := trace.SpanContextFromContext(p.ParentContext)

	// This span should not be sampled if the parent is not. Except for the root
	// span ID (the one that does not have a trace ID).
	if psc.HasTraceID() && !psc.IsSampled() {
		return sdktrace.NeverSample().ShouldSample(p)
	}

	var route string
	for _, attr := range p.Attributes {
		if attr.Key == semconv.HTTPRouteKey {
			route = attr.Value.AsString()
			break
		}
	}

rates:
	switch {
	case route != "":
		for prefix, prefixProb := range defaultRoutePrefixSampling {
			if strings.HasPrefix(route, prefix) {
				prob = prefixProb
				break rates
			}
		}

	default:
		if ratio, ok := defaultSpanNamesSampling[p.Name]; ok {
			prob = ratio
			break rates
		}
		if psc.IsSampled() {
			prob = 1.0
		}
	}

	traceId := binary.BigEndian.Uint64(p.TraceID[:8])

	if traceId < uint64(prob*float64(math.MaxUint64)) {
		decision = sdktrace.RecordAndSample
	}

	return sdktrace.SamplingResult{
		Decision:   decision,
		Attributes: p.Attributes,
		Tracestate: trace.SpanContextFromContext(p.ParentContext).TraceState(),
	}
}
