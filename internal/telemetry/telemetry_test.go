package telemetry

import (
	"context"
	"os"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestConfigureEnv(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if err := ConfigureEnv(Honeycomb{APIKey: "abc"}); err != nil {
		t.Fatalf("ConfigureEnv: %v", err)
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); got != honeycombEndpoint {
		t.Errorf("endpoint = %q", got)
	}
	want := "x-honeycomb-team=abc,x-honeycomb-dataset=mageduel"
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}
}

func TestConfigureEnvWithoutKey(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if err := ConfigureEnv(Honeycomb{Dataset: "duels"}); err != nil {
		t.Fatalf("ConfigureEnv: %v", err)
	}
	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "" {
		t.Errorf("headers should stay empty without a key, got %q", got)
	}
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := Tracer("combat").Start(context.Background(), "combat.turn")
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 {
		t.Fatalf("recorded %d spans, want 1", len(ended))
	}
	if got := ended[0].InstrumentationScope().Name; got != "mageduel/combat" {
		t.Errorf("scope = %q, want mageduel/combat", got)
	}
}
