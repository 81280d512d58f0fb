// Stock-and-flow recurrence for the regional colony population
package model

import "fmt"

// MaxYears bounds the simulation horizon so untrusted input cannot request
// unbounded work.
const MaxYears = 500

// Simulate runs the colony recurrence over the given horizon and returns
// years+1 records. The first record is the initial condition at the
// calibration's start year; record i covers start year + i.
func Simulate(years int, p ScenarioParams, c Calibration) ([]YearRecord, error) {
	if years < 0 {
		return nil, fmt.Errorf("simulate: years must be non-negative, got %d", years)
	}
	if years > MaxYears {
		return nil, fmt.Errorf("simulate: years must be at most %d, got %d", MaxYears, years)
	}

	series := make([]YearRecord, 0, years+1)
	colonies := c.InitialColonies
	for i := 0; ; i++ {
		series = append(series, derive(c.StartYear+i, colonies, p, c))
		if i == years {
			return series, nil
		}
		colonies = step(colonies, p, c)
	}
}

// step advances the colony stock by one year.
func step(colonies float64, p ScenarioParams, c Calibration) float64 {
	growthRate := c.BaseGrowthRate *
		(1 + 0.5*(1-p.EnvironmentStress) + 0.5*p.DiseaseManagement) *
		(c.ClimateGrowthFloor + p.ClimateFactor)

	var density float64
	if c.CarryingCapacity > 0 {
		density = colonies / c.CarryingCapacity
	}

	lossRate := c.BaseLossRate *
		(1 + p.EnvironmentStress + 0.5*(1-p.DiseaseManagement) + c.WinterLossPenalty) *
		(1 + c.ClimateLossSensitivity*(1-p.ClimateFactor)) *
		(1 + c.DensityLossSensitivity*density)

	// Logistic limiting: the growth flow vanishes at carrying capacity and
	// turns negative past it. No floor on the resulting stock.
	growth := colonies * growthRate * (1 - density)
	losses := colonies * lossRate
	return colonies + growth - losses
}

// derive computes the honey and economic converters for one year.
func derive(year int, colonies float64, p ScenarioParams, c Calibration) YearRecord {
	yield := (c.HoneyMin + p.ClimateFactor*(c.HoneyMax-c.HoneyMin)) * (1 - 0.5*p.EnvironmentStress)
	return YearRecord{
		Year:                year,
		BeeColonies:         colonies,
		HoneyYieldPerColony: yield,
		HoneyProductionTons: colonies * yield / 1000,
		EconomicValueCHF:    colonies * c.ValuePerColony * c.EconomicValueScaler,
	}
}
