package game

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if !cfg.Color {
		t.Error("Color should default to true")
	}
	if cfg.Debug || cfg.Telemetry {
		t.Error("Debug and Telemetry should default to false")
	}
	if cfg.HoneycombDataset != "mageduel" {
		t.Errorf("HoneycombDataset = %q, want mageduel", cfg.HoneycombDataset)
	}
}

func TestLoadConfigReadsEnv(t *testing.T) {
	t.Setenv("MAGEDUEL_SEED", "42")
	t.Setenv("MAGEDUEL_COLOR", "false")
	t.Setenv("MAGEDUEL_TELEMETRY", "true")
	t.Setenv("HONEYCOMB_MAGEDUEL_API_KEY", "key")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 42 || cfg.Color || !cfg.Telemetry || cfg.HoneycombAPIKey != "key" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigRejectsBadSeed(t *testing.T) {
	t.Setenv("MAGEDUEL_SEED", "not-a-number")
	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig should reject a non-numeric seed")
	}
}
