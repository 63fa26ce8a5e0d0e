package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Backend.URL != "http://localhost:5000" {
		t.Errorf("default backend URL = %s", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout() != 30*time.Second {
		t.Errorf("default timeout = %v", cfg.Backend.Timeout())
	}
	if cfg.Autocomplete.Debounce() != 300*time.Millisecond {
		t.Errorf("default debounce = %v", cfg.Autocomplete.Debounce())
	}
	if cfg.Autocomplete.MinChars != 2 {
		t.Errorf("default min chars = %d", cfg.Autocomplete.MinChars)
	}
	if cfg.Output.DefaultFormat != "cli" {
		t.Errorf("default format = %s", cfg.Output.DefaultFormat)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.URL != Default().Backend.URL {
		t.Errorf("backend URL = %s, want default", cfg.Backend.URL)
	}
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	content := `
backend {
  url             = "http://pricing.internal:8080"
  timeout_seconds = 10
}

autocomplete {
  debounce_ms = 150
}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Backend.URL != "http://pricing.internal:8080" {
		t.Errorf("backend URL = %s", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout() != 10*time.Second {
		t.Errorf("timeout = %v", cfg.Backend.Timeout())
	}
	if cfg.Autocomplete.Debounce() != 150*time.Millisecond {
		t.Errorf("debounce = %v", cfg.Autocomplete.Debounce())
	}
	// Untouched sections keep their defaults.
	if cfg.Autocomplete.MinChars != 2 {
		t.Errorf("min chars = %d, want default", cfg.Autocomplete.MinChars)
	}
	if cfg.Output.DefaultFormat != "cli" {
		t.Errorf("format = %s, want default", cfg.Output.DefaultFormat)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	if err := os.WriteFile(path, []byte("backend {"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestEnvOverridesBackendURL(t *testing.T) {
	t.Setenv(EnvBackendURL, "http://override:9000")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.URL != "http://override:9000" {
		t.Errorf("backend URL = %s, want env override", cfg.Backend.URL)
	}
}
