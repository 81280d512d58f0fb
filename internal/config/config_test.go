package config

import (
	"os"
	"path/filepath"
	"testing"

	"beesim/internal/model"
)

const schemaPath = "../../schemas/simulation.cue"

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simulation.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", schemaPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Calibration() != model.DefaultCalibration() {
		t.Errorf("empty path should yield the default calibration, got %+v", cfg.Calibration())
	}
	if cfg.Policy() != model.ClampLosses {
		t.Errorf("default policy should clamp losses, got %q", cfg.Policy())
	}
	if cfg.Listen != ":8080" {
		t.Errorf("unexpected default listen address %q", cfg.Listen)
	}
}

func TestLoad_OverridesKeepDefaults(t *testing.T) {
	path := writeConfig(t, `
carrying_capacity: 300000
loss_policy: signed
presets:
  - name: drought
    environment_stress: 0.6
    disease_management: 0.5
    climate_factor: 0.2
`)
	cfg, err := Load(path, schemaPath)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	cal := cfg.Calibration()
	if cal.CarryingCapacity != 300000 {
		t.Errorf("carrying capacity override lost: %f", cal.CarryingCapacity)
	}
	if cal.InitialColonies != 182300 {
		t.Errorf("unset fields should keep defaults, got %f", cal.InitialColonies)
	}
	if cfg.Policy() != model.SignedLosses {
		t.Errorf("policy override lost: %q", cfg.Policy())
	}
	if len(cfg.Presets) != 1 || cfg.Presets[0].Name != "drought" {
		t.Errorf("unexpected presets: %+v", cfg.Presets)
	}
}

func TestLoad_RejectsBadPolicy(t *testing.T) {
	path := writeConfig(t, "loss_policy: sometimes\n")
	if _, err := Load(path, schemaPath); err == nil {
		t.Error("expected error for unknown loss policy, got nil")
	}
}

func TestLoad_RejectsOutOfRangeDriver(t *testing.T) {
	path := writeConfig(t, `
presets:
  - name: broken
    environment_stress: 1.5
    disease_management: 0.5
    climate_factor: 0.5
`)
	if _, err := Load(path, schemaPath); err == nil {
		t.Error("expected CUE validation error for driver above 1, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), schemaPath); err == nil {
		t.Error("expected error for missing config file, got nil")
	}
}
