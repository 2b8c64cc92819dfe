package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port   int      `env:"TEST_PORT" envDefault:"123"`
	Labels []string `env:"TEST_LABELS" envSeparator:","`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	t.Setenv("TRANSLATING_SPACE_TEST_PORT", "8081")
	t.Setenv("TRANSLATING_SPACE_TEST_LABELS", "dummy,weblate")
	t.Setenv("TEST_PORT", "9999")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 8081 {
		t.Fatalf("port = %d, want 8081", cfg.Port)
	}
	if len(cfg.Labels) != 2 || cfg.Labels[1] != "weblate" {
		t.Fatalf("labels = %v, want [dummy weblate]", cfg.Labels)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("TRANSLATING_SPACE_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvRejectsNilTarget(t *testing.T) {
	if err := ParseEnv(nil); err == nil {
		t.Fatal("expected nil target error")
	}
}
