package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"beesim/internal/model"
)

// Preset names a driver combination that CLI and API callers can reference
// instead of spelling out raw driver triples.
type Preset struct {
	Name              string  `yaml:"name"`
	Description       string  `yaml:"description,omitempty"`
	EnvironmentStress float64 `yaml:"environment_stress"`
	DiseaseManagement float64 `yaml:"disease_management"`
	ClimateFactor     float64 `yaml:"climate_factor"`
}

// Params converts the preset into engine parameters, clamping drivers to the
// unit interval.
func (p Preset) Params() model.ScenarioParams {
	return model.ScenarioParams{
		EnvironmentStress: p.EnvironmentStress,
		DiseaseManagement: p.DiseaseManagement,
		ClimateFactor:     p.ClimateFactor,
	}.Clamped()
}

// Load reads additional presets from a YAML file.
func Load(path string) ([]Preset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	var doc struct {
		Presets []Preset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	return doc.Presets, nil
}

// Find looks up a preset by name, case-insensitively, in the built-in set
// merged with extra presets. Extra presets shadow built-ins of the same name.
func Find(name string, extra []Preset) (Preset, bool) {
	for _, p := range extra {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	p, ok := BuiltIn()[strings.ToLower(name)]
	return p, ok
}
