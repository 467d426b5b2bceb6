package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidatesAfterNormalize(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestLoadParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := strings.Join([]string{
		"[paths]",
		`workset = "` + filepath.Join(dir, "plants.csv") + `"`,
		`output = "` + filepath.Join(dir, "out.txt") + `"`,
		"[batch]",
		"max_items = 25",
		"[logging]",
		`level = "debug"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != path {
		t.Fatalf("expected resolved path %s, got %s", path, resolved)
	}
	if cfg.Batch.MaxItems != 25 {
		t.Fatalf("expected max_items 25, got %d", cfg.Batch.MaxItems)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected level debug, got %q", cfg.Logging.Level)
	}
	// Untouched sections fall back to defaults.
	if cfg.PubChem.BaseURL != defaultPubChemBaseURL {
		t.Fatalf("expected default pubchem base url, got %q", cfg.PubChem.BaseURL)
	}
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for bad log format")
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	if _, _, _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestWorksetEnvOverride(t *testing.T) {
	t.Setenv("ALKALOID_WORKSET", filepath.Join(t.TempDir(), "override.csv"))
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if !strings.HasSuffix(cfg.Paths.Workset, "override.csv") {
		t.Fatalf("expected env override to win, got %q", cfg.Paths.Workset)
	}
}
