// Runner orchestrating engine runs and result assembly
package sim

import (
	"github.com/google/uuid"

	"beesim/internal/model"
)

// Runner executes baseline-vs-scenario comparisons against one fixed
// calibration. It holds no mutable state, so a single Runner may serve
// concurrent callers.
type Runner struct {
	calibration model.Calibration
	policy      model.LossPolicy
}

// NewRunner creates a Runner for the given calibration and loss policy.
func NewRunner(c model.Calibration, policy model.LossPolicy) *Runner {
	return &Runner{calibration: c, policy: policy}
}

// Calibration returns the constants table this runner simulates with.
func (r *Runner) Calibration() model.Calibration {
	return r.calibration
}

// Policy returns the loss policy applied to comparisons.
func (r *Runner) Policy() model.LossPolicy {
	return r.policy
}

// RunComparison simulates both parameter sets over the horizon and assembles
// the full client-facing result.
func (r *Runner) RunComparison(years int, baseline, scenario model.ScenarioParams) (*Result, error) {
	base, scen, losses, err := model.Compare(years, baseline, scenario, r.calibration, r.policy)
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID:    uuid.New().String(),
		Years:    years,
		Baseline: baseline.AsConstants(),
		Scenario: scenario.AsConstants(),
		Series: Series{
			Baseline: r.points(base),
			Scenario: r.points(scen),
			Loss:     losses,
		},
	}

	lastBase := base[len(base)-1]
	lastScen := scen[len(scen)-1]
	lastLoss := losses[len(losses)-1]
	res.Summary = Summary{
		BaselineColonies:        lastBase.BeeColonies,
		ScenarioColonies:        lastScen.BeeColonies,
		ColoniesDelta:           lastScen.BeeColonies - lastBase.BeeColonies,
		CumulativeLossCHF:       lastLoss.CumulativeEconomicLossCHF,
		CumulativeHoneyLossTons: lastLoss.CumulativeHoneyLossTons,
		BaselineHoneyYield:      lastBase.HoneyYieldPerColony,
		ScenarioHoneyYield:      lastScen.HoneyYieldPerColony,
	}
	return res, nil
}

// points decorates engine records with the value multiplier, guarding the
// zero denominator.
func (r *Runner) points(records []model.YearRecord) []SeriesPoint {
	points := make([]SeriesPoint, len(records))
	for i, rec := range records {
		mult := 0.0
		if denom := rec.BeeColonies * r.calibration.ValuePerColony; denom > 0 {
			mult = rec.EconomicValueCHF / denom
		}
		points[i] = SeriesPoint{YearRecord: rec, ValueMultiplier: mult}
	}
	return points
}
