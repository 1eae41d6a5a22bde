package handlers

import "github.com/prometheus/client_golang/prometheus"

var (
	predictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farecast_predictions_total",
			Help: "Price predictions served",
		},
		[]string{"mode"},
	)
	predictionErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "farecast_prediction_errors_total",
			Help: "Failed prediction requests",
		},
		[]string{"mode"},
	)
	trainingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "farecast_training_duration_seconds",
			Help:    "Model training latency",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
	)
)

// RegisterMetrics installs the service collectors on the default
// registry. Call once at startup.
func RegisterMetrics() {
	prometheus.MustRegister(predictionsTotal, predictionErrors, trainingDuration)
}
