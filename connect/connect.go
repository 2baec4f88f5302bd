// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package connect defines the data model of a Kafka-Connect-style
// connector management service, and an abstract server-side API to
// it.
//
// Clients will generally use the restclient package, which talks to
// one or more members of a Connect cluster over HTTP and fails over
// between them.  The Cluster interface here is what a server
// implementation (for instance the in-memory one in the "memory"
// package) provides to the "restserver" package.
package connect

// State is the run state of a connector or one of its tasks.  This is
// an open set: the service may report states not listed here, and
// they are passed through verbatim.
type State string

const (
	// Running indicates the connector or task is running.
	Running State = "RUNNING"

	// Paused indicates the connector or task has been paused.
	Paused State = "PAUSED"

	// Failed indicates the connector or task has failed, usually
	// with a stack trace attached to the status.
	Failed State = "FAILED"

	// Unassigned indicates the connector or task has not yet been
	// assigned to a worker.
	Unassigned State = "UNASSIGNED"
)

// Config is a connector configuration.  Keys are configuration
// property names; the service requires a "name" key matching the
// connector name, and generally a "connector.class" key.
type Config map[string]interface{}

// Name returns the "name" property of the configuration, or an empty
// string if there is none or it is not a string.
func (c Config) Name() string {
	name, _ := c["name"].(string)
	return name
}

// TaskID identifies a single task of a connector.
type TaskID struct {
	Connector string
	Task      int
}

// Connector describes a single connector: its name, its current
// configuration, and the tasks it has been split into.
type Connector struct {
	Name   string
	Config Config
	Tasks  []TaskID
}

// WorkerState is the state of some unit of work along with the worker
// that is running it.
type WorkerState struct {
	State    State
	WorkerID string
}

// TaskState is the status of a single task.
type TaskState struct {
	ID       int
	State    State
	WorkerID string

	// Trace holds an error trace if State is Failed.
	Trace string
}

// ConnectorStatus is the run status of a connector and its tasks.
type ConnectorStatus struct {
	Name      string
	Connector WorkerState
	Tasks     []TaskState
}

// Plugin describes a connector plugin installed on the workers.
type Plugin struct {
	Class   string
	Type    string
	Version string
}

// ConfigValidation is the validation outcome for a single
// configuration key.  Both halves are passed through from the service
// as-is.
type ConfigValidation struct {
	Definition map[string]interface{}
	Value      map[string]interface{}
}

// ValidationResult is the result of validating a configuration
// against a connector plugin.
type ValidationResult struct {
	Name       string
	ErrorCount *int
	Groups     []string
	Configs    []ConfigValidation
}

// Cluster is the server-side interface to a Connect cluster.
// Implementations must be safe for concurrent use.
type Cluster interface {
	// ConnectorNames returns the names of all connectors, sorted.
	ConnectorNames() ([]string, error)

	// CreateConnector creates a new connector.  config must
	// contain a "name" key equal to name.  Returns
	// ErrConnectorExists if a connector already exists with that
	// name.
	CreateConnector(name string, config Config) (Connector, error)

	// SetConnectorConfig creates or updates a connector.  The
	// boolean return is true if the connector was newly created.
	SetConnectorConfig(name string, config Config) (Connector, bool, error)

	// Connector retrieves a connector by name, returning
	// ErrNoSuchConnector if it does not exist.
	Connector(name string) (Connector, error)

	// ConnectorStatus retrieves the run status of a connector.
	ConnectorStatus(name string) (ConnectorStatus, error)

	// PauseConnector pauses a connector and all of its tasks.
	PauseConnector(name string) error

	// ResumeConnector resumes a paused connector.
	ResumeConnector(name string) error

	// RestartConnector restarts a connector.  A failed connector
	// becomes running again; a paused one stays paused.
	RestartConnector(name string) error

	// DeleteConnector removes a connector and its tasks.
	DeleteConnector(name string) error

	// Plugins lists the installed connector plugins.
	Plugins() ([]Plugin, error)

	// ValidateConfig checks config against the plugin named
	// class, returning ErrNoSuchPlugin if it is not installed.
	ValidateConfig(class string, config Config) (ValidationResult, error)
}
