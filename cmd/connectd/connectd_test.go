// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"
	"io/ioutil"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/diffeo/go-connect/connect"
	"github.com/diffeo/go-connect/memory"
	"github.com/diffeo/go-connect/restclient"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "connectd.yaml")
	require.NoError(t, ioutil.WriteFile(filename, []byte(`
worker_id: dev:8083
plugins:
  - class: org.example.MySinkConnector
    type: sink
    version: 1.0.0
`), 0644))
	config, err := loadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, "dev:8083", config.WorkerID)

	cluster := newCluster(config)
	plugins, err := cluster.Plugins()
	require.NoError(t, err)
	assert.Equal(t, []connect.Plugin{{
		Class:   "org.example.MySinkConnector",
		Type:    "sink",
		Version: "1.0.0",
	}}, plugins)
}

func TestNewClusterDefaults(t *testing.T) {
	cluster := newCluster(Config{})
	plugins, err := cluster.Plugins()
	require.NoError(t, err)
	assert.Equal(t, memory.DefaultPlugins, plugins)
}

func TestCountStates(t *testing.T) {
	cluster := memory.New()
	_, err := cluster.CreateConnector("a", connect.Config{})
	require.NoError(t, err)
	_, err = cluster.CreateConnector("b", connect.Config{})
	require.NoError(t, err)
	require.NoError(t, cluster.PauseConnector("b"))

	counts, err := countStates(cluster)
	require.NoError(t, err)
	assert.Equal(t, map[connect.State]int{
		connect.Running:    1,
		connect.Paused:     1,
		connect.Failed:     0,
		connect.Unassigned: 0,
	}, counts)
}

func TestHandler(t *testing.T) {
	cluster := memory.New()
	h := HTTP{cluster: cluster}
	server := httptest.NewServer(h.Handler())
	defer server.Close()

	client, err := restclient.New(server.URL, restclient.CallConfig{})
	require.NoError(t, err)
	ctx := context.Background()
	assert.True(t, client.Ping(ctx))

	_, err = client.AddConnector(ctx, connect.Connector{Name: "sink", Config: connect.Config{}})
	require.NoError(t, err)

	resp, err := server.Client().Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
}

func TestObserve(t *testing.T) {
	cluster := memory.New()
	_, err := cluster.CreateConnector("a", connect.Config{})
	require.NoError(t, err)

	tick := make(chan time.Time, 1)
	tick <- time.Now()
	close(tick)
	observe(cluster, tick)

	expected := `
# HELP diffeo_connectd_connectors Number of connectors in each state
# TYPE diffeo_connectd_connectors gauge
diffeo_connectd_connectors{state="FAILED"} 0
diffeo_connectd_connectors{state="PAUSED"} 0
diffeo_connectd_connectors{state="RUNNING"} 1
diffeo_connectd_connectors{state="UNASSIGNED"} 0
`
	assert.NoError(t, testutil.CollectAndCompare(connectorStates, strings.NewReader(expected)))
}
