// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package connect

import (
	"errors"
	"fmt"
)

// ErrNoEndpoints is returned when constructing a client with no base
// URLs to talk to.
var ErrNoEndpoints = errors.New("Empty urls")

// ErrNoConnectorName is returned when a connector is created or
// updated without a name.
var ErrNoConnectorName = errors.New("No connector name")

// ErrNameMismatch is returned when a connector configuration has a
// "name" key that does not match the connector name.
var ErrNameMismatch = errors.New("Connector name does not match 'name' in configuration")

// ErrNoSuchConnector is returned when looking up a connector that
// does not exist.
type ErrNoSuchConnector struct {
	Name string
}

func (err ErrNoSuchConnector) Error() string {
	return fmt.Sprintf("Connector %v not found", err.Name)
}

// ErrConnectorExists is returned when creating a connector whose name
// is already in use.
type ErrConnectorExists struct {
	Name string
}

func (err ErrConnectorExists) Error() string {
	return fmt.Sprintf("Connector %v already exists", err.Name)
}

// ErrNoSuchPlugin is returned when validating a configuration against
// a connector class that is not installed.
type ErrNoSuchPlugin struct {
	Class string
}

func (err ErrNoSuchPlugin) Error() string {
	return fmt.Sprintf("Failed to find any class that implements Connector and which name matches %v", err.Class)
}
