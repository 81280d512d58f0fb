// Result types shared by the CLI writers and the HTTP API
package sim

import "beesim/internal/model"

// SeriesPoint is one year of a scenario series as served to clients, the
// engine record plus the derived value multiplier.
type SeriesPoint struct {
	model.YearRecord
	ValueMultiplier float64 `json:"value_multiplier"`
}

// Series bundles the three aligned time series of one comparison.
type Series struct {
	Baseline []SeriesPoint      `json:"baseline"`
	Scenario []SeriesPoint      `json:"scenario"`
	Loss     []model.LossRecord `json:"loss"`
}

// Summary condenses the final year of a comparison.
type Summary struct {
	BaselineColonies        float64 `json:"baseline_colonies"`
	ScenarioColonies        float64 `json:"scenario_colonies"`
	ColoniesDelta           float64 `json:"colonies_delta"`
	CumulativeLossCHF       float64 `json:"cumulative_loss_chf"`
	CumulativeHoneyLossTons float64 `json:"cumulative_honey_loss_tons"`
	BaselineHoneyYield      float64 `json:"baseline_honey_yield"`
	ScenarioHoneyYield      float64 `json:"scenario_honey_yield"`
}

// Result is one finished baseline-vs-scenario comparison.
type Result struct {
	RunID    string             `json:"run_id"`
	Years    int                `json:"years"`
	Baseline map[string]float64 `json:"baseline"`
	Scenario map[string]float64 `json:"scenario"`
	Series   Series             `json:"series"`
	Summary  Summary            `json:"summary"`
}
