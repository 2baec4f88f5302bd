// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"fmt"
	"strconv"

	"github.com/diffeo/go-connect/connect"
)

type connector struct {
	name   string
	config connect.Config
	paused bool

	// failure holds the connector-level trace if it has failed.
	failure string

	// taskFailures maps task ID to trace for failed tasks.
	taskFailures map[int]string
}

func newConnector(name string, config connect.Config) *connector {
	conn := &connector{name: name}
	conn.SetConfig(config)
	return conn
}

// SetConfig replaces the configuration, always setting "name".
// Failures of tasks that no longer exist are dropped.
func (conn *connector) SetConfig(config connect.Config) {
	conn.config = make(connect.Config, len(config)+1)
	for k, v := range config {
		conn.config[k] = v
	}
	conn.config["name"] = conn.name

	failures := make(map[int]string)
	for task, trace := range conn.taskFailures {
		if task < conn.numTasks() {
			failures[task] = trace
		}
	}
	conn.taskFailures = failures
}

// numTasks returns the number of tasks the connector runs, from its
// "tasks.max" setting.
func (conn *connector) numTasks() int {
	n := 1
	switch v := conn.config["tasks.max"].(type) {
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			n = i
		}
	case int:
		n = v
	case int64:
		n = int(v)
	case uint64:
		n = int(v)
	case float64:
		n = int(v)
	}
	if n < 1 {
		n = 1
	}
	return n
}

func (conn *connector) Connector() connect.Connector {
	result := connect.Connector{
		Name:   conn.name,
		Config: make(connect.Config, len(conn.config)),
		Tasks:  make([]connect.TaskID, conn.numTasks()),
	}
	for k, v := range conn.config {
		result.Config[k] = v
	}
	for i := range result.Tasks {
		result.Tasks[i] = connect.TaskID{Connector: conn.name, Task: i}
	}
	return result
}

func (conn *connector) Status(workerID string) connect.ConnectorStatus {
	status := connect.ConnectorStatus{
		Name: conn.name,
		Connector: connect.WorkerState{
			State:    conn.state(conn.failure != ""),
			WorkerID: workerID,
		},
		Tasks: make([]connect.TaskState, conn.numTasks()),
	}
	for i := range status.Tasks {
		trace, failed := conn.taskFailures[i]
		status.Tasks[i] = connect.TaskState{
			ID:       i,
			State:    conn.state(failed),
			WorkerID: workerID,
			Trace:    trace,
		}
	}
	return status
}

func (conn *connector) state(failed bool) connect.State {
	switch {
	case failed:
		return connect.Failed
	case conn.paused:
		return connect.Paused
	default:
		return connect.Running
	}
}

func (conn *connector) Restart() {
	conn.failure = ""
	conn.taskFailures = make(map[int]string)
}

func (conn *connector) Fail(task int, trace string) error {
	if task < 0 {
		conn.failure = trace
		return nil
	}
	if task >= conn.numTasks() {
		return fmt.Errorf("connector %v has no task %v", conn.name, task)
	}
	conn.taskFailures[task] = trace
	return nil
}
