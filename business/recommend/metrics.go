package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phone_recommendations_total",
			Help: "Count of recommendation queries by strategy and outcome (matched, empty, rejected).",
		},
		[]string{"strategy", "outcome"},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsTotal)
}
