// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import "github.com/jtacoma/uritemplates"

// URI templates for the Connect REST resources, relative to a
// worker's base URL.  Template variables are "name" for a connector
// name and "class" for a connector plugin class.
const (
	ConnectorsPath       = "/connectors"
	ConnectorPath        = "/connectors/{name}"
	ConnectorConfigPath  = "/connectors/{name}/config"
	ConnectorStatusPath  = "/connectors/{name}/status"
	ConnectorPausePath   = "/connectors/{name}/pause"
	ConnectorResumePath  = "/connectors/{name}/resume"
	ConnectorRestartPath = "/connectors/{name}/restart"
	PluginsPath          = "/connector-plugins"
	ValidatePath         = "/connector-plugins/{class}/config/validate"
)

// Expand fills in a URI template.  Simple string expansion
// percent-encodes anything outside the RFC 3986 unreserved set, so
// names containing "/" or spaces stay within one path segment.
func Expand(template string, vars map[string]interface{}) (string, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return "", err
	}
	return tmpl.Expand(vars)
}
