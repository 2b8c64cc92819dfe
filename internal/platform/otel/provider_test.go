package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/translating.space/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("TRANSLATING_SPACE_OTEL_ENDPOINT", "")
	t.Setenv("TRANSLATING_SPACE_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("TRANSLATING_SPACE_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("TRANSLATING_SPACE_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupWithConfig_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address: nothing is exported.
	shutdown, err := otel.SetupWithConfig(context.Background(), "test-service", otel.Config{
		Endpoint:    "http://192.0.2.1:4318",
		Enabled:     true,
		SampleRatio: 0.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestConfigActive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		cfg  otel.Config
		want bool
	}{
		{otel.Config{}, false},
		{otel.Config{Endpoint: "http://collector:4318"}, false},
		{otel.Config{Endpoint: "  ", Enabled: true}, false},
		{otel.Config{Endpoint: "http://collector:4318", Enabled: true}, true},
	}
	for _, tc := range cases {
		if got := tc.cfg.Active(); got != tc.want {
			t.Fatalf("Active(%+v) = %v, want %v", tc.cfg, got, tc.want)
		}
	}
}
