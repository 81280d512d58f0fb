package model

import "math"

// ScenarioParams bundles the three normalized drivers of one run. Values are
// expected in [0,1]; the struct does not enforce this itself, callers at the
// boundary clamp before constructing it.
type ScenarioParams struct {
	EnvironmentStress float64 // 0 = ideal conditions, 1 = worst
	DiseaseManagement float64 // 0 = poor management, 1 = excellent
	ClimateFactor     float64 // 0 = worst climate year, 1 = best
}

// AsConstants returns the drivers as a flat parameter map, keyed by their
// wire names.
func (p ScenarioParams) AsConstants() map[string]float64 {
	return map[string]float64{
		"environment_stress": p.EnvironmentStress,
		"disease_management": p.DiseaseManagement,
		"climate_factor":     p.ClimateFactor,
	}
}

// Clamped returns a copy with every driver clamped to [0,1].
func (p ScenarioParams) Clamped() ScenarioParams {
	return ScenarioParams{
		EnvironmentStress: Clamp01(p.EnvironmentStress),
		DiseaseManagement: Clamp01(p.DiseaseManagement),
		ClimateFactor:     Clamp01(p.ClimateFactor),
	}
}

// Clamp01 bounds v to the unit interval.
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
