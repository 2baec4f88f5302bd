// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines the data structures passed across the wire
// between the restclient and restserver packages, and between
// restclient and a real Kafka Connect cluster.  These are JSON objects
// with the field names the Connect REST API uses; do not rename them.
//
// # API Usage
//
// The resources are rooted at each worker's base URL:
//
//	GET    /                                         server info (ping)
//	GET    /connectors                               list of names
//	POST   /connectors                               ConnectorRequest -> ConnectorInfo
//	GET    /connectors/{name}                        ConnectorInfo
//	DELETE /connectors/{name}
//	PUT    /connectors/{name}/config                 config object -> ConnectorInfo
//	GET    /connectors/{name}/status                 ConnectorStatus
//	PUT    /connectors/{name}/pause
//	PUT    /connectors/{name}/resume
//	POST   /connectors/{name}/restart
//	GET    /connector-plugins                        list of PluginInfo
//	PUT    /connector-plugins/{class}/config/validate config object -> ConfigInfos
//
// Paths are URI templates (RFC 6570) and are listed in url.go.
//
// # Errors
//
// Failing requests return a non-2xx status and, where possible, an
// ErrorResponse body, {"error_code": 404, "message": "..."}.
package restdata

import "github.com/diffeo/go-connect/connect"

// JSONMediaType is the MIME type of every request and response body.
const JSONMediaType = "application/json"

// ServerInfo is returned by the root path.
type ServerInfo struct {
	Version        string `json:"version"`
	Commit         string `json:"commit"`
	KafkaClusterID string `json:"kafka_cluster_id"`
}

// ConnectorRequest is the body of a request to create a connector.
type ConnectorRequest struct {
	Name   string                 `json:"name"`
	Config map[string]interface{} `json:"config"`
}

// TaskID identifies one task of a connector.
type TaskID struct {
	Connector string `json:"connector"`
	Task      int    `json:"task"`
}

// ConnectorInfo is the full representation of a connector.
type ConnectorInfo struct {
	Name   string                 `json:"name"`
	Config map[string]interface{} `json:"config"`
	Tasks  []TaskID               `json:"tasks"`
}

// WorkerState is a state plus the worker responsible for it.
type WorkerState struct {
	State    string `json:"state"`
	WorkerID string `json:"worker_id"`
}

// TaskState is the state of a single task.
type TaskState struct {
	ID       int    `json:"id"`
	State    string `json:"state"`
	WorkerID string `json:"worker_id"`
	Trace    string `json:"trace,omitempty"`
}

// ConnectorStatus is the run status of a connector.
type ConnectorStatus struct {
	Name      string      `json:"name"`
	Connector WorkerState `json:"connector"`
	Tasks     []TaskState `json:"tasks"`
}

// PluginInfo describes an installed connector plugin.
type PluginInfo struct {
	Class   string `json:"class"`
	Type    string `json:"type,omitempty"`
	Version string `json:"version,omitempty"`
}

// ConfigValidation is the outcome for a single configuration key.
type ConfigValidation struct {
	Definition map[string]interface{} `json:"definition"`
	Value      map[string]interface{} `json:"value"`
}

// ConfigInfos is the result of validating a configuration.
type ConfigInfos struct {
	Name       string             `json:"name"`
	ErrorCount *int               `json:"error_count"`
	Groups     []string           `json:"groups,omitempty"`
	Configs    []ConfigValidation `json:"configs"`
}

// ErrorResponse is returned as the body of failing requests.
type ErrorResponse struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
}

// FromConnector builds the wire form of a connector.
func FromConnector(c connect.Connector) ConnectorInfo {
	info := ConnectorInfo{
		Name:   c.Name,
		Config: map[string]interface{}(c.Config),
		Tasks:  make([]TaskID, len(c.Tasks)),
	}
	for i, task := range c.Tasks {
		info.Tasks[i] = TaskID{Connector: task.Connector, Task: task.Task}
	}
	return info
}

// ToConnector converts the wire form of a connector back.
func (info ConnectorInfo) ToConnector() connect.Connector {
	c := connect.Connector{
		Name:   info.Name,
		Config: connect.Config(info.Config),
		Tasks:  make([]connect.TaskID, len(info.Tasks)),
	}
	for i, task := range info.Tasks {
		c.Tasks[i] = connect.TaskID{Connector: task.Connector, Task: task.Task}
	}
	return c
}

// FromConnectorStatus builds the wire form of a connector status.
func FromConnectorStatus(s connect.ConnectorStatus) ConnectorStatus {
	status := ConnectorStatus{
		Name: s.Name,
		Connector: WorkerState{
			State:    string(s.Connector.State),
			WorkerID: s.Connector.WorkerID,
		},
		Tasks: make([]TaskState, len(s.Tasks)),
	}
	for i, task := range s.Tasks {
		status.Tasks[i] = TaskState{
			ID:       task.ID,
			State:    string(task.State),
			WorkerID: task.WorkerID,
			Trace:    task.Trace,
		}
	}
	return status
}

// ToConnectorStatus converts the wire form of a status back.  States
// are passed through without checking them against the known set.
func (status ConnectorStatus) ToConnectorStatus() connect.ConnectorStatus {
	s := connect.ConnectorStatus{
		Name: status.Name,
		Connector: connect.WorkerState{
			State:    connect.State(status.Connector.State),
			WorkerID: status.Connector.WorkerID,
		},
		Tasks: make([]connect.TaskState, len(status.Tasks)),
	}
	for i, task := range status.Tasks {
		s.Tasks[i] = connect.TaskState{
			ID:       task.ID,
			State:    connect.State(task.State),
			WorkerID: task.WorkerID,
			Trace:    task.Trace,
		}
	}
	return s
}

// FromPlugin builds the wire form of a plugin.
func FromPlugin(p connect.Plugin) PluginInfo {
	return PluginInfo{Class: p.Class, Type: p.Type, Version: p.Version}
}

// ToPlugin converts the wire form of a plugin back.
func (info PluginInfo) ToPlugin() connect.Plugin {
	return connect.Plugin{Class: info.Class, Type: info.Type, Version: info.Version}
}

// FromValidationResult builds the wire form of a validation result.
func FromValidationResult(r connect.ValidationResult) ConfigInfos {
	infos := ConfigInfos{
		Name:       r.Name,
		ErrorCount: r.ErrorCount,
		Groups:     r.Groups,
		Configs:    make([]ConfigValidation, len(r.Configs)),
	}
	for i, cv := range r.Configs {
		infos.Configs[i] = ConfigValidation{Definition: cv.Definition, Value: cv.Value}
	}
	return infos
}

// ToValidationResult converts the wire form of a validation result
// back.
func (infos ConfigInfos) ToValidationResult() connect.ValidationResult {
	r := connect.ValidationResult{
		Name:       infos.Name,
		ErrorCount: infos.ErrorCount,
		Groups:     infos.Groups,
		Configs:    make([]connect.ConfigValidation, len(infos.Configs)),
	}
	for i, cv := range infos.Configs {
		r.Configs[i] = connect.ConfigValidation{Definition: cv.Definition, Value: cv.Value}
	}
	return r
}
