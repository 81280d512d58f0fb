package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SimulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "beesim_simulations_total",
			Help: "Total scenario comparisons requested via the API",
		},
		[]string{"status"},
	)

	SimulationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "beesim_simulation_duration_seconds",
			Help:    "Wall time of one baseline-vs-scenario comparison",
			Buckets: prometheus.DefBuckets,
		},
	)

	SimulationHorizonYears = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "beesim_simulation_horizon_years",
			Help:    "Requested simulation horizon in years",
			Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500},
		},
	)
)
