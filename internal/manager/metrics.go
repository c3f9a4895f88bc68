package manager

import "github.com/prometheus/client_golang/prometheus"

var (
	modelLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "llmgateway",
			Subsystem: "manager",
			Name:      "model_loads_total",
			Help:      "In-process model load attempts by outcome",
		},
		[]string{"model", "outcome"},
	)

	generationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "llmgateway",
			Subsystem: "manager",
			Name:      "generations_total",
			Help:      "Generations by model, backend and outcome (ok or error kind)",
		},
		[]string{"model", "backend", "outcome"},
	)

	generationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "llmgateway",
			Subsystem: "manager",
			Name:      "generation_duration_seconds",
			Help:      "Duration of generations in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"model", "backend"},
	)
)

func init() {
	prometheus.MustRegister(modelLoadsTotal, generationsTotal, generationDuration)
}
