package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/trace"
)

// Observability records outbound Zoho call durations and wraps them in spans.
type Observability struct {
	meterProvider *metric.MeterProvider
	meter         otelmetric.Meter
	tracer        trace.Tracer
	callCounter   otelmetric.Int64Counter
	callDuration  otelmetric.Float64Histogram
}

// New wires an OpenTelemetry meter to a Prometheus exporter registered on reg.
// If the exporter cannot be created the returned value still works but
// records nothing.
func New(serviceName string, reg prometheus.Registerer) (*Observability, error) {
	exporter, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return NewNoop(serviceName), err
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	o := &Observability{
		meterProvider: provider,
		meter:         provider.Meter(serviceName),
		tracer:        otel.Tracer(serviceName),
	}
	o.initInstruments()
	return o, nil
}

// NewNoop returns an Observability that records nothing, for tests.
func NewNoop(serviceName string) *Observability {
	o := &Observability{
		meter:  noop.NewMeterProvider().Meter(serviceName),
		tracer: otel.Tracer(serviceName),
	}
	o.initInstruments()
	return o
}

// WithTracerProvider makes spans come from tp instead of the global provider.
func (o *Observability) WithTracerProvider(tp trace.TracerProvider, serviceName string) *Observability {
	o.tracer = tp.Tracer(serviceName)
	return o
}

func (o *Observability) initInstruments() {
	o.callCounter, _ = o.meter.Int64Counter(
		"zoho.calls",
		otelmetric.WithDescription("Number of outbound Zoho API calls"),
	)
	o.callDuration, _ = o.meter.Float64Histogram(
		"zoho.call.duration",
		otelmetric.WithDescription("Outbound Zoho API call duration"),
		otelmetric.WithUnit("ms"),
	)
}

// StartSpan starts a client span for an outbound call.
func (o *Observability) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return o.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// EndSpan records err on span (if any) and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func (o *Observability) RecordCall(ctx context.Context, operation string, duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	attrs := otelmetric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	)
	if o.callCounter != nil {
		o.callCounter.Add(ctx, 1, attrs)
	}
	if o.callDuration != nil {
		o.callDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = o.meterProvider.Shutdown(ctx)
	}
}
