// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/diffeo/go-connect/connect"
	"github.com/diffeo/go-connect/restdata"
	"github.com/gorilla/mux"
)

// Version is reported as the server version by the root resource.
const Version = "2.0.0-go-connect"

// NewRouter creates a new HTTP handler that processes all Connect
// requests.  All resources are under the URL path root, e.g.
// /connectors/foo.  For more control over this setup, create a
// mux.Router and call PopulateRouter instead.
func NewRouter(c connect.Cluster) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, c)
	return r
}

// PopulateRouter adds Connect routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the Connect interface under a subpath:
//
//	r := mux.NewRouter()
//	s := r.PathPrefix("/connect").Subrouter()
//	PopulateRouter(s, memory.New())
//
// Connector names may contain escaped slashes, so the router must
// match on encoded paths; this calls UseEncodedPath on r.
func PopulateRouter(r *mux.Router, c connect.Cluster) {
	r.UseEncodedPath()
	api := &restAPI{Cluster: c}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the Connect REST API.
type restAPI struct {
	Cluster connect.Cluster
}

// PopulateRouter adds all Connect URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	r.Path("/").Name("root").Handler(&resourceHandler{
		Get: api.RootDocument,
	})
	r.Path(restdata.ConnectorsPath).Name("connectors").Handler(&resourceHandler{
		Representation: restdata.ConnectorRequest{},
		Get:            api.ConnectorList,
		Post:           api.ConnectorPost,
	})
	r.Path(restdata.ConnectorPath).Name("connector").Handler(&resourceHandler{
		Get:    api.ConnectorGet,
		Delete: api.ConnectorDelete,
	})
	r.Path(restdata.ConnectorConfigPath).Name("connectorConfig").Handler(&resourceHandler{
		Representation: map[string]interface{}{},
		Get:            api.ConnectorConfigGet,
		Put:            api.ConnectorConfigPut,
	})
	r.Path(restdata.ConnectorStatusPath).Name("connectorStatus").Handler(&resourceHandler{
		Get: api.ConnectorStatus,
	})
	r.Path(restdata.ConnectorPausePath).Name("connectorPause").Handler(&resourceHandler{
		Put: api.ConnectorPause,
	})
	r.Path(restdata.ConnectorResumePath).Name("connectorResume").Handler(&resourceHandler{
		Put: api.ConnectorResume,
	})
	r.Path(restdata.ConnectorRestartPath).Name("connectorRestart").Handler(&resourceHandler{
		Post: api.ConnectorRestart,
	})
	r.Path(restdata.PluginsPath).Name("plugins").Handler(&resourceHandler{
		Get: api.PluginList,
	})
	r.Path(restdata.ValidatePath).Name("validate").Handler(&resourceHandler{
		Representation: map[string]interface{}{},
		Put:            api.ValidateConfig,
	})
}

// RootDocument describes the server.  Clients use it as a health
// check.
func (api *restAPI) RootDocument(ctx *request) (interface{}, error) {
	return restdata.ServerInfo{Version: Version, KafkaClusterID: "memory"}, nil
}
