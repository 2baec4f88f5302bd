// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory implementation of
// connect.Cluster.  There is no persistence and no actual data
// movement: connectors are just their configuration plus a run
// state.  The entire cluster is behind a single mutex.
//
// This is mostly intended as a simple reference implementation that
// can be served by the restserver package to test clients, including
// in-process testing of higher-level components.
package memory

import (
	"sort"
	"sync"

	"github.com/diffeo/go-connect/connect"
)

// DefaultWorkerID is the worker ID reported for every connector and
// task by a cluster created with New.
const DefaultWorkerID = "localhost:8083"

// DefaultPlugins are the connector plugins a cluster created with New
// reports as installed.
var DefaultPlugins = []connect.Plugin{
	{
		Class:   "org.apache.kafka.connect.file.FileStreamSinkConnector",
		Type:    "sink",
		Version: "2.0.0",
	},
	{
		Class:   "org.apache.kafka.connect.file.FileStreamSourceConnector",
		Type:    "source",
		Version: "2.0.0",
	},
}

// Cluster is an in-memory Connect cluster.
type Cluster struct {
	workerID   string
	plugins    []connect.Plugin
	connectors map[string]*connector
	sem        sync.Mutex
}

// New creates a new empty cluster with the default plugins.
func New() *Cluster {
	return NewWithPlugins(DefaultWorkerID, DefaultPlugins)
}

// NewWithPlugins creates a new empty cluster that reports workerID as
// the worker running everything and has the given plugins
// installed.
func NewWithPlugins(workerID string, plugins []connect.Plugin) *Cluster {
	c := &Cluster{
		workerID:   workerID,
		plugins:    make([]connect.Plugin, len(plugins)),
		connectors: make(map[string]*connector),
	}
	copy(c.plugins, plugins)
	return c
}

// get finds a connector by name.  The caller must hold the lock.
func (c *Cluster) get(name string) (*connector, error) {
	conn := c.connectors[name]
	if conn == nil {
		return nil, connect.ErrNoSuchConnector{Name: name}
	}
	return conn, nil
}

// ConnectorNames returns the names of all connectors, sorted.
func (c *Cluster) ConnectorNames() ([]string, error) {
	c.sem.Lock()
	defer c.sem.Unlock()
	names := make([]string, 0, len(c.connectors))
	for name := range c.connectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// CreateConnector creates a new, running connector.
func (c *Cluster) CreateConnector(name string, config connect.Config) (connect.Connector, error) {
	if err := checkConfig(name, config); err != nil {
		return connect.Connector{}, err
	}
	c.sem.Lock()
	defer c.sem.Unlock()
	if _, exists := c.connectors[name]; exists {
		return connect.Connector{}, connect.ErrConnectorExists{Name: name}
	}
	conn := newConnector(name, config)
	c.connectors[name] = conn
	return conn.Connector(), nil
}

// SetConnectorConfig replaces a connector's configuration, creating
// it if needed.  Existing tasks are reconfigured; the run state is
// kept.
func (c *Cluster) SetConnectorConfig(name string, config connect.Config) (connect.Connector, bool, error) {
	if err := checkConfig(name, config); err != nil {
		return connect.Connector{}, false, err
	}
	c.sem.Lock()
	defer c.sem.Unlock()
	conn, exists := c.connectors[name]
	if !exists {
		conn = newConnector(name, config)
		c.connectors[name] = conn
		return conn.Connector(), true, nil
	}
	conn.SetConfig(config)
	return conn.Connector(), false, nil
}

// Connector retrieves a connector by name.
func (c *Cluster) Connector(name string) (connect.Connector, error) {
	c.sem.Lock()
	defer c.sem.Unlock()
	conn, err := c.get(name)
	if err != nil {
		return connect.Connector{}, err
	}
	return conn.Connector(), nil
}

// ConnectorStatus retrieves the run status of a connector.
func (c *Cluster) ConnectorStatus(name string) (connect.ConnectorStatus, error) {
	c.sem.Lock()
	defer c.sem.Unlock()
	conn, err := c.get(name)
	if err != nil {
		return connect.ConnectorStatus{}, err
	}
	return conn.Status(c.workerID), nil
}

// PauseConnector pauses a connector.  Pausing a paused connector does
// nothing.
func (c *Cluster) PauseConnector(name string) error {
	c.sem.Lock()
	defer c.sem.Unlock()
	conn, err := c.get(name)
	if err == nil {
		conn.paused = true
	}
	return err
}

// ResumeConnector resumes a connector.  Resuming a running connector
// does nothing.
func (c *Cluster) ResumeConnector(name string) error {
	c.sem.Lock()
	defer c.sem.Unlock()
	conn, err := c.get(name)
	if err == nil {
		conn.paused = false
	}
	return err
}

// RestartConnector clears any failure on a connector and its tasks.
func (c *Cluster) RestartConnector(name string) error {
	c.sem.Lock()
	defer c.sem.Unlock()
	conn, err := c.get(name)
	if err == nil {
		conn.Restart()
	}
	return err
}

// DeleteConnector removes a connector.
func (c *Cluster) DeleteConnector(name string) error {
	c.sem.Lock()
	defer c.sem.Unlock()
	if _, err := c.get(name); err != nil {
		return err
	}
	delete(c.connectors, name)
	return nil
}

// FailTask marks one task of a connector as failed with a trace.  If
// task is negative the connector itself fails.  Real clusters fail
// on their own; this exists so tests can produce a failed status.
func (c *Cluster) FailTask(name string, task int, trace string) error {
	c.sem.Lock()
	defer c.sem.Unlock()
	conn, err := c.get(name)
	if err != nil {
		return err
	}
	return conn.Fail(task, trace)
}

// Plugins lists the installed plugins.
func (c *Cluster) Plugins() ([]connect.Plugin, error) {
	result := make([]connect.Plugin, len(c.plugins))
	copy(result, c.plugins)
	return result, nil
}

// checkConfig verifies that a connector configuration names the
// connector.
func checkConfig(name string, config connect.Config) error {
	if name == "" {
		return connect.ErrNoConnectorName
	}
	if configName, present := config["name"]; present && configName != name {
		return connect.ErrNameMismatch
	}
	return nil
}
