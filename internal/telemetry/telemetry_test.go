package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestTracerRecordsOnGlobalProvider(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	rec := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))

	_, span := Tracer("sim").Start(context.Background(), "switch.activate")
	span.End()

	ended := rec.Ended()
	if len(ended) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(ended))
	}
	if got := ended[0].Name(); got != "switch.activate" {
		t.Errorf("span name = %q, want switch.activate", got)
	}
	if got := ended[0].InstrumentationScope().Name; got != "tilequest/sim" {
		t.Errorf("scope = %q, want tilequest/sim", got)
	}
}

func TestSetupWithEndpoint(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	shutdown, err := Setup(context.Background(), "http://127.0.0.1:4318", "test-session")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	// Nothing was exported, so shutdown has nothing to flush.
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}
