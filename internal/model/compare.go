// Baseline-vs-scenario comparison and loss accounting
package model

import (
	"fmt"
	"math"
)

// LossPolicy selects how per-year losses are signed.
type LossPolicy string

const (
	// ClampLosses treats loss as "baseline is better" and floors every
	// per-year loss at zero. This is the default.
	ClampLosses LossPolicy = "clamp"
	// SignedLosses keeps the raw difference, so a scenario that beats the
	// baseline yields negative losses.
	SignedLosses LossPolicy = "signed"
)

// Compare runs the engine for both parameter sets over the same horizon and
// derives per-year and cumulative losses of the scenario against the
// baseline.
func Compare(years int, baseline, scenario ScenarioParams, c Calibration, policy LossPolicy) (base, scen []YearRecord, losses []LossRecord, err error) {
	base, err = Simulate(years, baseline, c)
	if err != nil {
		return nil, nil, nil, err
	}
	scen, err = Simulate(years, scenario, c)
	if err != nil {
		return nil, nil, nil, err
	}
	losses, err = Losses(base, scen, policy)
	if err != nil {
		return nil, nil, nil, err
	}
	return base, scen, losses, nil
}

// Losses joins two series on year and accumulates economic and honey losses
// in chronological order. Both series must cover the same horizon; a mismatch
// is an error rather than a silent truncation.
func Losses(baseline, scenario []YearRecord, policy LossPolicy) ([]LossRecord, error) {
	if len(baseline) != len(scenario) {
		return nil, fmt.Errorf("compare: horizon mismatch: baseline has %d records, scenario has %d", len(baseline), len(scenario))
	}

	byYear := make(map[int]YearRecord, len(scenario))
	for _, r := range scenario {
		byYear[r.Year] = r
	}

	losses := make([]LossRecord, 0, len(baseline))
	var cumEcon, cumHoney float64
	for _, b := range baseline {
		s, ok := byYear[b.Year]
		if !ok {
			return nil, fmt.Errorf("compare: scenario series has no record for year %d", b.Year)
		}
		econ := b.EconomicValueCHF - s.EconomicValueCHF
		honey := b.HoneyProductionTons - s.HoneyProductionTons
		if policy == ClampLosses {
			econ = math.Max(econ, 0)
			honey = math.Max(honey, 0)
		}
		cumEcon += econ
		cumHoney += honey
		losses = append(losses, LossRecord{
			Year:                      b.Year,
			EconomicLossCHF:           econ,
			CumulativeEconomicLossCHF: cumEcon,
			HoneyLossTons:             honey,
			CumulativeHoneyLossTons:   cumHoney,
		})
	}
	return losses, nil
}
