package observability

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservability_RecordCallExportsToPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := New("lead-intake-test", reg)
	require.NoError(t, err)
	defer obs.Shutdown()

	obs.RecordCall(context.Background(), "token_refresh", 120*time.Millisecond, nil)
	obs.RecordCall(context.Background(), "lead_create", 80*time.Millisecond, errors.New("boom"))

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if strings.Contains(mf.GetName(), "zoho_call") {
			found = true
		}
	}
	assert.True(t, found, "expected zoho call metrics to be exported")
}

func TestObservability_SpansDoNotPanic(t *testing.T) {
	obs := NewNoop("lead-intake-test")

	ctx, span := obs.StartSpan(context.Background(), "zoho.token.refresh")
	require.NotNil(t, ctx)
	EndSpan(span, nil)

	_, span = obs.StartSpan(context.Background(), "zoho.lead.create")
	EndSpan(span, errors.New("upstream failure"))

	obs.RecordCall(context.Background(), "lead_create", time.Millisecond, nil)
	obs.Shutdown()
}

func TestObservability_WithTracerProviderRecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	obs := NewNoop("lead-intake-test").WithTracerProvider(tp, "lead-intake-test")

	_, span := obs.StartSpan(context.Background(), "zoho.token.refresh")
	EndSpan(span, nil)
	_, span = obs.StartSpan(context.Background(), "zoho.lead.create")
	EndSpan(span, errors.New("duplicate"))

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "zoho.token.refresh", spans[0].Name())
	assert.Equal(t, trace.SpanKindClient, spans[0].SpanKind())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)

	assert.Equal(t, "zoho.lead.create", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "duplicate", spans[1].Status().Description)
}
