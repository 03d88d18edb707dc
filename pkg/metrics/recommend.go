package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RecommendDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "phone_recommend_latency_seconds",
		Help:    "Latency of the recommendation endpoint",
		Buckets: prometheus.DefBuckets,
	})

	CompareDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "phone_compare_latency_seconds",
		Help:    "Latency of the compare endpoint",
		Buckets: prometheus.DefBuckets,
	})

	RecommendResultSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "phone_recommend_result_size",
		Help:    "Number of phones returned per recommendation",
		Buckets: []float64{0, 1, 2, 3, 4, 5, 10},
	})

	CatalogEntries = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "phone_catalog_entries",
		Help: "Number of phones loaded into the catalog",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendDuration,
		CompareDuration,
		RecommendResultSize,
		CatalogEntries,
	)
}
