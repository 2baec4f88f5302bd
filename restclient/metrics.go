// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import "github.com/prometheus/client_golang/prometheus"

var attemptsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "diffeo",
		Subsystem: "connect_client",
		Name:      "attempts_total",
		Help:      "Requests attempted against individual Connect endpoints",
	},
	[]string{
		"method",
		"outcome",
	},
)

var attemptSeconds = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "diffeo",
		Subsystem: "connect_client",
		Name:      "attempt_seconds",
		Help:      "Time spent on a single Connect endpoint attempt",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{
		"method",
	},
)

// RegisterMetrics registers the client's Prometheus collectors with
// r.  Metrics are collected whether or not they are registered.
func RegisterMetrics(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{attemptsTotal, attemptSeconds} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}
