package telemetry

import (
	"context"
	"testing"
)

func TestEnabled(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	if Enabled() {
		t.Error("Enabled() with no endpoint = true, want false")
	}

	t.Setenv(EndpointEnv, "http://localhost:4318")
	if !Enabled() {
		t.Error("Enabled() with endpoint = false, want true")
	}
}

func TestTracersAreUsableWithoutSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "test.span")
	if span.IsRecording() {
		t.Error("span before Setup() should not record")
	}
	span.End()
}
