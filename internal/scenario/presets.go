package scenario

// BuiltIn returns the predefined driver presets, keyed by lowercase name.
func BuiltIn() map[string]Preset {
	return map[string]Preset{
		"baseline": {
			Name:              "baseline",
			Description:       "Moderate conditions matching the observed Swiss average year.",
			EnvironmentStress: 0.3,
			DiseaseManagement: 0.7,
			ClimateFactor:     0.6,
		},
		"stress": {
			Name:              "stress",
			Description:       "Degraded environment, weakened disease management, and a poor climate year.",
			EnvironmentStress: 0.8,
			DiseaseManagement: 0.3,
			ClimateFactor:     0.4,
		},
		"varroa-outbreak": {
			Name:              "varroa-outbreak",
			Description:       "Disease management collapses while environment and climate stay average.",
			EnvironmentStress: 0.5,
			DiseaseManagement: 0.1,
			ClimateFactor:     0.5,
		},
		"heatwave": {
			Name:              "heatwave",
			Description:       "A run of extreme climate years with elevated environmental stress.",
			EnvironmentStress: 0.7,
			DiseaseManagement: 0.6,
			ClimateFactor:     0.1,
		},
		"ideal": {
			Name:              "ideal",
			Description:       "Best case on every driver.",
			EnvironmentStress: 0,
			DiseaseManagement: 1,
			ClimateFactor:     1,
		},
		"collapse": {
			Name:              "collapse",
			Description:       "Worst case on every driver.",
			EnvironmentStress: 1,
			DiseaseManagement: 0,
			ClimateFactor:     0,
		},
	}
}
