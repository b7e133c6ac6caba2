package impl

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	combinationsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wordperms_combinations_processed_total",
			Help: "Total number of word combinations expanded into permutations",
		},
	)

	candidatesGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wordperms_candidates_generated_total",
			Help: "Total number of permutation strings produced before deduplication",
		},
	)

	resultSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wordperms_result_size",
			Help: "Number of distinct strings in the last generated result set",
		},
	)

	generateDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wordperms_generate_duration_seconds",
			Help:    "Duration of result set generation in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
	)
)
