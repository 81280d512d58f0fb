// YAML config loader with CUE validation integration
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"beesim/internal/model"
	"beesim/internal/scenario"
)

// SimulationConfig is the root configuration: calibration overrides for the
// colony model, the loss policy, server settings, and named presets.
type SimulationConfig struct {
	StartYear              int     `yaml:"start_year"`
	InitialColonies        float64 `yaml:"initial_colonies"`
	BaseGrowthRate         float64 `yaml:"base_growth_rate"`
	BaseLossRate           float64 `yaml:"base_loss_rate"`
	ValuePerColony         float64 `yaml:"value_per_colony"`
	HoneyMinKg             float64 `yaml:"honey_min_kg"`
	HoneyMaxKg             float64 `yaml:"honey_max_kg"`
	CarryingCapacity       float64 `yaml:"carrying_capacity"`
	WinterLossPenalty      float64 `yaml:"winter_loss_penalty"`
	ClimateLossSensitivity float64 `yaml:"climate_loss_sensitivity"`
	DensityLossSensitivity float64 `yaml:"density_loss_sensitivity"`
	ClimateGrowthFloor     float64 `yaml:"climate_growth_floor"`
	EconomicValueScaler    float64 `yaml:"economic_value_scaler"`

	LossPolicy string `yaml:"loss_policy"`
	Listen     string `yaml:"listen"`

	Presets []scenario.Preset `yaml:"presets"`
}

// Default returns the configuration backed by the reference calibration.
func Default() *SimulationConfig {
	c := model.DefaultCalibration()
	return &SimulationConfig{
		StartYear:              c.StartYear,
		InitialColonies:        c.InitialColonies,
		BaseGrowthRate:         c.BaseGrowthRate,
		BaseLossRate:           c.BaseLossRate,
		ValuePerColony:         c.ValuePerColony,
		HoneyMinKg:             c.HoneyMin,
		HoneyMaxKg:             c.HoneyMax,
		CarryingCapacity:       c.CarryingCapacity,
		WinterLossPenalty:      c.WinterLossPenalty,
		ClimateLossSensitivity: c.ClimateLossSensitivity,
		DensityLossSensitivity: c.DensityLossSensitivity,
		ClimateGrowthFloor:     c.ClimateGrowthFloor,
		EconomicValueScaler:    c.EconomicValueScaler,
		LossPolicy:             string(model.ClampLosses),
		Listen:                 ":8080",
	}
}

// Load loads YAML config over the defaults and validates it against a CUE
// schema first. An empty configPath returns the defaults unchanged.
func Load(configPath, cueSchemaPath string) (*SimulationConfig, error) {
	cfg := Default()
	if configPath == "" {
		return cfg, nil
	}

	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.LossPolicy != string(model.ClampLosses) && cfg.LossPolicy != string(model.SignedLosses) {
		return nil, fmt.Errorf("config: unknown loss_policy %q", cfg.LossPolicy)
	}

	return cfg, nil
}

// Calibration converts the config into the engine's constants table.
func (c *SimulationConfig) Calibration() model.Calibration {
	return model.Calibration{
		StartYear:              c.StartYear,
		InitialColonies:        c.InitialColonies,
		BaseGrowthRate:         c.BaseGrowthRate,
		BaseLossRate:           c.BaseLossRate,
		ValuePerColony:         c.ValuePerColony,
		HoneyMin:               c.HoneyMinKg,
		HoneyMax:               c.HoneyMaxKg,
		CarryingCapacity:       c.CarryingCapacity,
		WinterLossPenalty:      c.WinterLossPenalty,
		ClimateLossSensitivity: c.ClimateLossSensitivity,
		DensityLossSensitivity: c.DensityLossSensitivity,
		ClimateGrowthFloor:     c.ClimateGrowthFloor,
		EconomicValueScaler:    c.EconomicValueScaler,
	}
}

// Policy returns the configured loss policy, defaulting to clamped.
func (c *SimulationConfig) Policy() model.LossPolicy {
	if c.LossPolicy == string(model.SignedLosses) {
		return model.SignedLosses
	}
	return model.ClampLosses
}
