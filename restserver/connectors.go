// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"

	"github.com/diffeo/go-connect/connect"
	"github.com/diffeo/go-connect/restdata"
)

// errUnmarshal is returned if the put/post contract is violated and
// a handler function is passed the wrong type.
var errUnmarshal = restdata.ErrBadRequest{
	Err: errors.New("Invalid input format"),
}

// ConnectorList returns the names of all connectors.
func (api *restAPI) ConnectorList(ctx *request) (interface{}, error) {
	names, err := api.Cluster.ConnectorNames()
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// ConnectorPost creates a new connector.  If the request has no
// top-level name, the configuration's "name" is used.
func (api *restAPI) ConnectorPost(ctx *request, in interface{}) (interface{}, error) {
	req, valid := in.(restdata.ConnectorRequest)
	if !valid {
		return nil, errUnmarshal
	}
	name := req.Name
	if name == "" {
		name = connect.Config(req.Config).Name()
	}
	connector, err := api.Cluster.CreateConnector(name, connect.Config(req.Config))
	if err != nil {
		return nil, err
	}
	return responseStatus{
		Status: http.StatusCreated,
		Body:   restdata.FromConnector(connector),
	}, nil
}

// ConnectorGet returns a single connector.
func (api *restAPI) ConnectorGet(ctx *request) (interface{}, error) {
	connector, err := api.Cluster.Connector(ctx.Name)
	if err != nil {
		return nil, err
	}
	return restdata.FromConnector(connector), nil
}

// ConnectorDelete deletes a connector.
func (api *restAPI) ConnectorDelete(ctx *request) (interface{}, error) {
	return nil, api.Cluster.DeleteConnector(ctx.Name)
}

// ConnectorConfigGet returns only a connector's configuration.
func (api *restAPI) ConnectorConfigGet(ctx *request) (interface{}, error) {
	connector, err := api.Cluster.Connector(ctx.Name)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}(connector.Config), nil
}

// ConnectorConfigPut creates or updates a connector from a bare
// configuration object.
func (api *restAPI) ConnectorConfigPut(ctx *request, in interface{}) (interface{}, error) {
	config, valid := in.(map[string]interface{})
	if !valid {
		return nil, errUnmarshal
	}
	connector, created, err := api.Cluster.SetConnectorConfig(ctx.Name, connect.Config(config))
	if err != nil {
		return nil, err
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return responseStatus{Status: status, Body: restdata.FromConnector(connector)}, nil
}

// ConnectorStatus returns the run status of a connector.
func (api *restAPI) ConnectorStatus(ctx *request) (interface{}, error) {
	status, err := api.Cluster.ConnectorStatus(ctx.Name)
	if err != nil {
		return nil, err
	}
	return restdata.FromConnectorStatus(status), nil
}

// accepted is the response to asynchronous connector actions.
var accepted = responseStatus{Status: http.StatusAccepted}

// ConnectorPause pauses a connector.
func (api *restAPI) ConnectorPause(ctx *request, in interface{}) (interface{}, error) {
	if err := api.Cluster.PauseConnector(ctx.Name); err != nil {
		return nil, err
	}
	return accepted, nil
}

// ConnectorResume resumes a connector.
func (api *restAPI) ConnectorResume(ctx *request, in interface{}) (interface{}, error) {
	if err := api.Cluster.ResumeConnector(ctx.Name); err != nil {
		return nil, err
	}
	return accepted, nil
}

// ConnectorRestart restarts a connector.
func (api *restAPI) ConnectorRestart(ctx *request, in interface{}) (interface{}, error) {
	return nil, api.Cluster.RestartConnector(ctx.Name)
}
