// Record types for simulated colony time series
package model

// YearRecord is one year of a scenario's time series. All derived quantities
// are computed from the colony count of the same year, before the stock is
// advanced.
type YearRecord struct {
	Year                int     `json:"t"`
	BeeColonies         float64 `json:"bee_colonies"`
	HoneyYieldPerColony float64 `json:"honey_yield_per_colony"`
	HoneyProductionTons float64 `json:"honey_production_tons"`
	EconomicValueCHF    float64 `json:"economic_value_chf"`
}

// LossRecord quantifies scenario losses against the baseline for one year.
type LossRecord struct {
	Year                      int     `json:"t"`
	EconomicLossCHF           float64 `json:"economic_loss_chf"`
	CumulativeEconomicLossCHF float64 `json:"cumulative_economic_loss_chf"`
	HoneyLossTons             float64 `json:"honey_loss_tons"`
	CumulativeHoneyLossTons   float64 `json:"cumulative_honey_loss_tons"`
}
