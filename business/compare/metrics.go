package compare

import "github.com/prometheus/client_golang/prometheus"

var ComparisonsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "phone_comparisons_total",
		Help: "Count of phone comparisons by outcome (winner, tie, rejected).",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(ComparisonsTotal)
}
