package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zachlewis/colorconfig/internal/adapters/telemetry"
)

func newRecordingTracer(t *testing.T) (*telemetry.Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return telemetry.New(provider.Tracer("test")), recorder
}

func TestSpanAttributes(t *testing.T) {
	tracer, recorder := newRecordingTracer(t)

	_, span := tracer.Start(context.Background(), "colorconfig.New")
	span.SetAttribute("config", "default-reference")
	span.SetAttribute("colorspaces", 8)
	span.SetAttribute("cached", true)
	span.SetAttribute("tolerance", 1e-3)
	span.SetAttribute("other", []string{"a"})
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "colorconfig.New", ended[0].Name())

	attrs := ended[0].Attributes()
	assert.Contains(t, attrs, attribute.String("config", "default-reference"))
	assert.Contains(t, attrs, attribute.Int("colorspaces", 8))
	assert.Contains(t, attrs, attribute.Bool("cached", true))
	assert.Contains(t, attrs, attribute.Float64("tolerance", 1e-3))
	// Unhandled types stringify.
	assert.Contains(t, attrs, attribute.String("other", "[a]"))
}

func TestSpanRecordError(t *testing.T) {
	tracer, recorder := newRecordingTracer(t)

	_, span := tracer.Start(context.Background(), "colorconfig.CreateColorProcessor")
	span.RecordError(errors.New("unknown color space"))
	span.RecordError(nil)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "unknown color space", ended[0].Status().Description)
	require.Len(t, ended[0].Events(), 1)
}

func TestNoopTracer(t *testing.T) {
	tracer := telemetry.NewNoop()

	ctx := context.Background()
	got, span := tracer.Start(ctx, "anything")
	assert.Equal(t, ctx, got)

	// All span operations are inert.
	span.SetAttribute("k", "v")
	span.RecordError(errors.New("boom"))
	span.End()
}
