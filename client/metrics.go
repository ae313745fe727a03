package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	attemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homepage_client",
			Name:      "attempts_total",
			Help:      "HTTP attempts sent, including retries.",
		},
		[]string{"method"},
	)

	retriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homepage_client",
			Name:      "retries_total",
			Help:      "Attempts that failed with a retryable error and were scheduled again.",
		},
		[]string{"method"},
	)

	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homepage_client",
			Name:      "requests_total",
			Help:      "Logical requests by final outcome.",
		},
		[]string{"method", "outcome"},
	)

	errorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "homepage_client",
			Name:      "errors_total",
			Help:      "Failed requests by error kind.",
		},
		[]string{"kind"},
	)
)
