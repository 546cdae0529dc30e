package tracker

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var regenerationCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "savings_regenerations_total",
		Help: "How many times savings goals were regenerated, partitioned by result.",
	},
	[]string{"result"},
)

var regenerationDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name: "savings_regeneration_duration_seconds",
		Help: "The time needed to regenerate the savings goals of a dataset in seconds.",
	},
)

var goalCount = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "savings_goals",
		Help: "Number of savings goals of a dataset after the last regeneration.",
	},
	[]string{"dataset"},
)

// Collectors returns the Prometheus metrics of the tracker.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		regenerationCount,
		regenerationDuration,
		goalCount,
	}
}

func observeRegeneration(dataset string, goals int, elapsed time.Duration, err error) {
	regenerationDuration.Observe(elapsed.Seconds())

	if err != nil {
		regenerationCount.WithLabelValues("error").Inc()
		return
	}

	regenerationCount.WithLabelValues("success").Inc()
	goalCount.WithLabelValues(dataset).Set(float64(goals))
}
