package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"beesim/internal/config"
	"beesim/internal/model"
	"beesim/internal/scenario"
	"beesim/internal/sim"
)

var (
	simYears          int
	simConfigPath     string
	simSchemaPath     string
	simOutput         string
	simExportPath     string
	simBaselineName   string
	simScenarioName   string
	simStress         float64
	simDisease        float64
	simClimate        float64
	simSignedLosses   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a baseline-vs-scenario comparison",
	Long:  "simulate runs the colony model for a baseline and a stress scenario over the same horizon and renders the losses.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(simConfigPath, simSchemaPath)
		if err != nil {
			return err
		}

		baseline, err := resolvePreset(simBaselineName, cfg.Presets)
		if err != nil {
			return err
		}
		scen, err := resolvePreset(simScenarioName, cfg.Presets)
		if err != nil {
			return err
		}
		// Individual driver flags override the scenario preset.
		if cmd.Flags().Changed("stress") {
			scen.EnvironmentStress = model.Clamp01(simStress)
		}
		if cmd.Flags().Changed("disease") {
			scen.DiseaseManagement = model.Clamp01(simDisease)
		}
		if cmd.Flags().Changed("climate") {
			scen.ClimateFactor = model.Clamp01(simClimate)
		}

		policy := cfg.Policy()
		if simSignedLosses {
			policy = model.SignedLosses
		}

		writer, cleanup, err := newResultWriter(simOutput, simExportPath)
		if err != nil {
			return err
		}
		defer cleanup()

		runner := sim.NewRunner(cfg.Calibration(), policy)
		res, err := runner.RunComparison(simYears, baseline, scen)
		if err != nil {
			return err
		}
		return writer.WriteResult(res)
	},
}

// resolvePreset maps a preset name to engine parameters, checking config
// presets before the built-ins.
func resolvePreset(name string, extra []scenario.Preset) (model.ScenarioParams, error) {
	p, ok := scenario.Find(name, extra)
	if !ok {
		return model.ScenarioParams{}, fmt.Errorf("unknown scenario preset %q", name)
	}
	return p.Params(), nil
}

func init() {
	simulateCmd.Flags().IntVar(&simYears, "years", 20, "Simulation horizon in years")
	simulateCmd.Flags().StringVar(&simConfigPath, "config", "", "Path to simulation configuration YAML")
	simulateCmd.Flags().StringVar(&simSchemaPath, "schema", "schemas/simulation.cue", "Path to CUE schema file")
	simulateCmd.Flags().StringVar(&simOutput, "output", "table", "Output mode: json, table, or tui")
	simulateCmd.Flags().StringVar(&simExportPath, "export", "", "Path to export the run as JSON for later replay")
	simulateCmd.Flags().StringVar(&simBaselineName, "baseline", "baseline", "Baseline preset name")
	simulateCmd.Flags().StringVar(&simScenarioName, "scenario", "stress", "Scenario preset name")
	simulateCmd.Flags().Float64Var(&simStress, "stress", 0, "Override scenario environment stress (0..1)")
	simulateCmd.Flags().Float64Var(&simDisease, "disease", 0, "Override scenario disease management (0..1)")
	simulateCmd.Flags().Float64Var(&simClimate, "climate", 0, "Override scenario climate factor (0..1)")
	simulateCmd.Flags().BoolVar(&simSignedLosses, "signed-losses", false, "Keep the sign of losses instead of clamping at zero")
}
