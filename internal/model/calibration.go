package model

// Calibration fixes the physical and economic constants of a run. It is
// passed by value into Simulate and Compare so concurrent runs with different
// calibrations never interfere.
type Calibration struct {
	StartYear       int
	InitialColonies float64

	// Annual base rates under neutral conditions.
	BaseGrowthRate float64
	BaseLossRate   float64

	// Economic value of one colony (products plus pollination), CHF per year.
	ValuePerColony float64

	// Historical honey yield range, kg per colony per year.
	HoneyMin float64
	HoneyMax float64

	// Logistic model: growth self-limits as the stock approaches this ceiling.
	CarryingCapacity float64

	// Additive overwintering penalty on the loss rate.
	WinterLossPenalty float64

	// Loss-rate sensitivity to unfavorable climate and to crowding.
	ClimateLossSensitivity float64
	DensityLossSensitivity float64

	// Lower bound of the climate growth adjustment, so growth never fully
	// vanishes from climate alone.
	ClimateGrowthFloor float64

	// Damping applied to the raw per-colony value when deriving economic
	// value, keeping swings at population extremes realistic.
	EconomicValueScaler float64
}

// DefaultCalibration returns the Swiss 2022 baseline figures (Agroscope) the
// model was built around.
func DefaultCalibration() Calibration {
	return Calibration{
		StartYear:              2022,
		InitialColonies:        182_300,
		BaseGrowthRate:         0.08,
		BaseLossRate:           0.06,
		ValuePerColony:         1_585, // ~600 CHF products + 985 CHF pollination
		HoneyMin:               7.2,   // bad year (2021)
		HoneyMax:               29.9,  // very good year (2020)
		CarryingCapacity:       250_000,
		WinterLossPenalty:      0.1,
		ClimateLossSensitivity: 0.5,
		DensityLossSensitivity: 0.5,
		ClimateGrowthFloor:     0.7,
		EconomicValueScaler:    1.0,
	}
}
