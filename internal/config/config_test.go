package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("default level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.OutputDir != "" {
		t.Errorf("default output dir should be empty, got %q", cfg.OutputDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PDFEXTRACT_LOG_LEVEL", "debug")
	t.Setenv("PDFEXTRACT_OUTPUT_DIR", "out")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("output dir = %q, want out", cfg.OutputDir)
	}
}

func TestLoadConfigFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	data := "log:\n  level: error\noutput:\n  dir: results\n"
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("level = %q, want error", cfg.Logging.Level)
	}
	if cfg.OutputDir != "results" {
		t.Errorf("output dir = %q, want results", cfg.OutputDir)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
