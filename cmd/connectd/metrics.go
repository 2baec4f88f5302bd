// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"time"

	"github.com/diffeo/go-connect/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var connectorStates = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: "diffeo",
		Subsystem: "connectd",
		Name:      "connectors",
		Help:      "Number of connectors in each state",
	},
	[]string{
		"state",
	},
)

var allStates = []connect.State{
	connect.Running,
	connect.Paused,
	connect.Failed,
	connect.Unassigned,
}

func init() {
	prometheus.MustRegister(connectorStates)
}

// countStates tallies the connectors of a cluster by connector state.
func countStates(cluster connect.Cluster) (map[connect.State]int, error) {
	names, err := cluster.ConnectorNames()
	if err != nil {
		return nil, err
	}
	counts := make(map[connect.State]int)
	for _, state := range allStates {
		counts[state] = 0
	}
	for _, name := range names {
		status, err := cluster.ConnectorStatus(name)
		if _, missing := err.(connect.ErrNoSuchConnector); missing {
			continue
		}
		if err != nil {
			return nil, err
		}
		counts[status.Connector.State]++
	}
	return counts, nil
}

// observe refreshes the connector gauge every time tick fires.
func observe(cluster connect.Cluster, tick <-chan time.Time) {
	for range tick {
		counts, err := countStates(cluster)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"err": err,
			}).Warn("Could not count connectors")
			continue
		}
		for state, count := range counts {
			connectorStates.WithLabelValues(string(state)).Set(float64(count))
		}
	}
}
