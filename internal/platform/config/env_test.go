package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Tolerance float64 `env:"WIZARDING_ACADEMY_TEST_TOLERANCE" envDefault:"10"`
}

type prefixedTestConfig struct {
	UnitsPath string `env:"UNITS_PATH" envDefault:"units.md"`
	DryRun    bool   `env:"DRY_RUN"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Tolerance != 10 {
		t.Fatalf("expected default tolerance 10, got %v", cfg.Tolerance)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("WIZARDING_ACADEMY_TEST_TOLERANCE", "not-a-number")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvWithPrefix(t *testing.T) {
	t.Setenv(EnvPrefix+"UNITS_PATH", "/tmp/units.md")
	t.Setenv(EnvPrefix+"DRY_RUN", "true")
	t.Setenv("UNITS_PATH", "/ignored/units.md")

	var cfg prefixedTestConfig
	if err := ParseEnvWithPrefix(&cfg, EnvPrefix); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.UnitsPath != "/tmp/units.md" {
		t.Fatalf("units path = %q, want /tmp/units.md", cfg.UnitsPath)
	}
	if !cfg.DryRun {
		t.Fatal("expected dry run from prefixed env")
	}
}

func TestParseEnvWithPrefixError(t *testing.T) {
	t.Setenv(EnvPrefix+"DRY_RUN", "maybe")

	var cfg prefixedTestConfig
	if err := ParseEnvWithPrefix(&cfg, EnvPrefix); err == nil {
		t.Fatal("expected error")
	}
}
