package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromCreatesDefaultsWhenMissing(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "brewdeck", "config.yaml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Brew.Binary != DefaultBrewBinary {
		t.Errorf("expected default binary %q, got %q", DefaultBrewBinary, cfg.Brew.Binary)
	}
	if !cfg.Brew.GreedyUpgrade {
		t.Error("expected greedy upgrade enabled by default")
	}
	if cfg.Analytics.URL != DefaultAnalyticsURL {
		t.Errorf("expected default analytics URL, got %q", cfg.Analytics.URL)
	}
	if cfg.Analytics.Limit != DefaultAnalyticsLimit {
		t.Errorf("expected default analytics limit, got %d", cfg.Analytics.Limit)
	}

	// Defaults should have been persisted for the next run.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestLoadFromParsesExistingFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	content := `brew:
  binary: /opt/homebrew/bin/brew
  greedy_upgrade: false
analytics:
  limit: 20
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.Brew.Binary != "/opt/homebrew/bin/brew" {
		t.Errorf("binary = %q", cfg.Brew.Binary)
	}
	if cfg.Brew.GreedyUpgrade {
		t.Error("greedy_upgrade should be false")
	}
	if cfg.Analytics.Limit != 20 {
		t.Errorf("limit = %d", cfg.Analytics.Limit)
	}
	// URL was omitted, so the default applies.
	if cfg.Analytics.URL != DefaultAnalyticsURL {
		t.Errorf("URL should fall back to default, got %q", cfg.Analytics.URL)
	}
}

func TestLoadFromRejectsNegativeLimit(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(path, []byte("analytics:\n  limit: -3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if !errors.Is(err, ErrAnalyticsLimitInvalid) {
		t.Errorf("expected ErrAnalyticsLimitInvalid, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Defaults()
	cfg.Brew.Binary = "brew-test"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Brew.Binary != "brew-test" {
		t.Errorf("round trip lost binary: %q", loaded.Brew.Binary)
	}
}
