package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/morph/internal/layout"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Formation != string(layout.FormationTable) {
		t.Errorf("expected table default, got %s", cfg.Formation)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if cfg.TransitionDuration() != 1200*time.Millisecond {
		t.Errorf("duration: got %v", cfg.TransitionDuration())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown formation", func(c *Config) { c.Formation = "ring" }},
		{"zero duration", func(c *Config) { c.Duration = 0 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -1 }},
		{"zero camera distance", func(c *Config) { c.Camera.Distance = 0 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morph.yaml")

	cfg := DefaultConfig()
	cfg.Dataset = "elements.csv"
	cfg.Formation = string(layout.FormationHelix)
	cfg.Duration = 800
	cfg.Camera.AutoOrbit = true

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("dataset: rows.json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FrameRate != DefaultFrameRate {
		t.Errorf("frame rate default not applied: %d", cfg.FrameRate)
	}
	if cfg.Dataset != "rows.json" {
		t.Errorf("dataset: got %q", cfg.Dataset)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("formation: ring\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown formation")
	}
}

func TestToken(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Token() != "" {
		t.Error("no token env set should yield empty token")
	}
	cfg.Source.TokenEnv = "MORPH_TEST_TOKEN"
	t.Setenv("MORPH_TEST_TOKEN", "sesame")
	if cfg.Token() != "sesame" {
		t.Errorf("token: got %q", cfg.Token())
	}
}
