package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "workbench",
			Subsystem: "intercom",
			Name:      "requests_total",
			Help:      "Requests sent to Intercom, by resource and HTTP status code.",
		},
		[]string{"resource", "code"},
	)

	requestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "workbench",
			Subsystem: "intercom",
			Name:      "request_errors_total",
			Help:      "Requests that failed before an HTTP status was received.",
		},
		[]string{"resource"},
	)

	recordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "workbench",
			Subsystem: "intercom",
			Name:      "records_total",
			Help:      "Records fetched from Intercom, by resource.",
		},
		[]string{"resource"},
	)
)
