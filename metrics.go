package intercom

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "workbench",
			Subsystem: "intercom",
			Name:      "fetches_total",
			Help:      "Completed fetches, by outcome.",
		},
		[]string{"status"},
	)

	fetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "workbench",
			Subsystem: "intercom",
			Name:      "fetch_duration_seconds",
			Help:      "Wall-clock duration of a whole fetch.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
